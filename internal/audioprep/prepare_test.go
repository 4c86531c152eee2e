package audioprep

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveCandidateFindsDirectPath(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "a.wav")
	require.NoError(t, os.WriteFile(f, []byte("x"), 0o644))

	got, err := resolveCandidate(f, nil)
	require.NoError(t, err)
	assert.Equal(t, f, got)
}

func TestResolveCandidateStripsFileURL(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "a.wav")
	require.NoError(t, os.WriteFile(f, []byte("x"), 0o644))

	got, err := resolveCandidate("file://"+f, nil)
	require.NoError(t, err)
	assert.Equal(t, f, got)
}

func TestResolveCandidateSearchesBaseDirs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rel.wav"), []byte("x"), 0o644))

	got, err := resolveCandidate("rel.wav", []string{t.TempDir(), dir})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "rel.wav"), got)
}

func TestResolveCandidateFailsWhenNothingExists(t *testing.T) {
	_, err := resolveCandidate("does-not-exist.wav", []string{t.TempDir()})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), ErrNoSourceAudioFound)
}

func TestIsCanonical(t *testing.T) {
	good := Metadata{SampleRate: CanonicalSampleRate, Channels: CanonicalChannels, BitDepth: 16}
	assert.True(t, good.IsCanonical())

	bad := Metadata{SampleRate: 44100, Channels: CanonicalChannels, BitDepth: 16}
	assert.False(t, bad.IsCanonical())
}

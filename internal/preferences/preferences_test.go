package preferences

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOnMissingFileReturnsZeroValue(t *testing.T) {
	s := NewStore(t.TempDir())
	p, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, Preferences{}, p)
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	s := NewStore(t.TempDir())
	want := Preferences{DefaultTranscriptionService: "whisper", DefaultSampleRate: 48000, DefaultBitDepth: 16, DefaultStorageFormat: "zip"}

	require.NoError(t, s.Save(want))
	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFileIsNotPlaintext(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir)
	require.NoError(t, s.Save(Preferences{DefaultTranscriptionService: "super-secret-marker"}))

	raw, err := os.ReadFile(s.prefsPath)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "super-secret-marker")
}

func TestReusesPersistedKeyAcrossInstances(t *testing.T) {
	dir := t.TempDir()
	want := Preferences{DefaultTranscriptionService: "whisper"}
	require.NoError(t, NewStore(dir).Save(want))

	got, err := NewStore(dir).Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

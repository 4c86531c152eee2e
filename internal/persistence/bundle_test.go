package persistence

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askidmobile/transcriptcore/internal/project"
	"github.com/askidmobile/transcriptcore/internal/segment"
)

func sampleProject() project.ProjectData {
	now := time.Now().Truncate(time.Second)
	seg := segment.MakeWord("hi", 0, 1, 1, 0, 1, true)
	clip := project.Clip{
		ID: "clip-1", Speaker: "A", Status: project.ClipActive, Order: 0,
		CreatedAt: now, ModifiedAt: now, Segments: []segment.Segment{seg}, StartTime: 0, EndTime: 1,
	}
	return project.ProjectData{
		SchemaVersion: project.Version,
		Project:       project.ProjectIdentity{ID: "proj-1", Name: "Sample", CreatedAt: now, ModifiedAt: now},
		Transcription: project.Transcription{Status: project.TranscriptionCompleted},
		Speakers:      project.Speakers{Names: map[string]string{"A": "A"}, DefaultSpeaker: "A"},
		Clips:         project.Clips{Items: []project.Clip{clip}, Version: "1"},
	}
}

func writeFakeWav(t *testing.T, dir string) string {
	t.Helper()
	p := filepath.Join(dir, "source.wav")
	require.NoError(t, os.WriteFile(p, []byte("RIFF....WAVEfmt fake-audio-bytes"), 0o644))
	return p
}

func TestSaveThenLoadRoundTripsProjectData(t *testing.T) {
	dir := t.TempDir()
	audioPath := writeFakeWav(t, dir)
	pd := sampleProject()

	pkgPath := filepath.Join(dir, "project.transcriptcore")
	require.NoError(t, Save(pkgPath, pd, audioPath))

	loaded, err := Load(pkgPath, t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, pd.Project.ID, loaded.Project.Project.ID)
	assert.Equal(t, pd.Project.Name, loaded.Project.Project.Name)
	assert.Equal(t, pd.Speakers, loaded.Project.Speakers)
	require.Len(t, loaded.Project.Clips.Items, 1)
	assert.Equal(t, pd.Clips.Items[0].ID, loaded.Project.Clips.Items[0].ID)
	assert.Equal(t, pd.Clips.Items[0].Segments[0].Text, loaded.Project.Clips.Items[0].Segments[0].Text)

	extractedBytes, err := os.ReadFile(loaded.ExtractedAudioPath)
	require.NoError(t, err)
	originalBytes, err := os.ReadFile(audioPath)
	require.NoError(t, err)
	assert.Equal(t, originalBytes, extractedBytes)
}

func TestSaveRejectsWrongSchemaVersion(t *testing.T) {
	dir := t.TempDir()
	audioPath := writeFakeWav(t, dir)
	pd := sampleProject()
	pd.SchemaVersion = "1.0"

	err := Save(filepath.Join(dir, "p.transcriptcore"), pd, audioPath)
	assert.Error(t, err)
}

func TestRenderTranscriptTXT(t *testing.T) {
	out, err := RenderTranscript(sampleProject(), FormatTXT)
	require.NoError(t, err)
	assert.Contains(t, out, "A: hi")
}

func TestRenderTranscriptSRT(t *testing.T) {
	out, err := RenderTranscript(sampleProject(), FormatSRT)
	require.NoError(t, err)
	assert.Contains(t, out, "00:00:00,000 --> 00:00:01,000")
	assert.Contains(t, out, "A: hi")
}

func TestExportBatchBundlesMultipleProjects(t *testing.T) {
	dir := t.TempDir()
	a := sampleProject()
	b := sampleProject()
	b.Project.ID = "proj-2"

	destPath := filepath.Join(dir, "batch.zip")
	require.NoError(t, ExportBatch(destPath, []project.ProjectData{a, b}, FormatTXT))

	info, err := os.Stat(destPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

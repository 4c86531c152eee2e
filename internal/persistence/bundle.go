// Package persistence implements the project package format (§4.5): a
// single zip file bundling project.json, transcription.json, speakers.json,
// clips.json, and an audio/ directory holding the canonical WAV.
package persistence

import (
	"archive/zip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/askidmobile/transcriptcore/internal/project"
)

const (
	entryProject       = "project.json"
	entryTranscription = "transcription.json"
	entrySpeakers      = "speakers.json"
	entryClips         = "clips.json"
	entryAudioDir      = "audio/"
	defaultAudioName   = "audio/original.wav"
)

// Save writes pd as a package at path. audioPath must point at the current
// canonical WAV (what the transport was asked for, per §4.5); it is copied
// into the bundle's audio/ directory.
func Save(path string, pd project.ProjectData, audioPath string) error {
	if pd.SchemaVersion != project.Version {
		return project.PersistenceError(
			fmt.Sprintf("refusing to save schema version %q, want %q", pd.SchemaVersion, project.Version), nil)
	}

	f, err := os.Create(path)
	if err != nil {
		return project.PersistenceError(fmt.Sprintf("create %s", path), err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)

	if err := writeJSON(zw, entryProject, pd.Project); err != nil {
		return err
	}
	if err := writeJSON(zw, entryTranscription, pd.Transcription); err != nil {
		return err
	}
	if err := writeJSON(zw, entrySpeakers, pd.Speakers); err != nil {
		return err
	}
	if err := writeJSON(zw, entryClips, pd.Clips); err != nil {
		return err
	}
	if err := writeAudio(zw, audioPath); err != nil {
		return err
	}

	if err := zw.Close(); err != nil {
		return project.PersistenceError("finalize zip", err)
	}
	return nil
}

func writeJSON(zw *zip.Writer, name string, v any) error {
	w, err := zw.Create(name)
	if err != nil {
		return project.PersistenceError(fmt.Sprintf("create entry %s", name), err)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return project.PersistenceError(fmt.Sprintf("encode %s", name), err)
	}
	return nil
}

func writeAudio(zw *zip.Writer, audioPath string) error {
	src, err := os.Open(audioPath)
	if err != nil {
		return project.PersistenceError(fmt.Sprintf("open canonical audio %s", audioPath), err)
	}
	defer src.Close()

	w, err := zw.Create(defaultAudioName)
	if err != nil {
		return project.PersistenceError("create audio entry", err)
	}
	if _, err := io.Copy(w, src); err != nil {
		return project.PersistenceError("write audio entry", err)
	}
	return nil
}

// Loaded is a successfully opened package: the project data plus the path
// the embedded audio was extracted to, ready to substitute into
// ProjectIdentity.Audio.Path before the Store sees it (§4.5).
type Loaded struct {
	Project           project.ProjectData
	ExtractedAudioPath string
}

// Load reads a package from path, extracting its embedded audio to a fresh
// directory under tempDir. The caller owns cleanup of that directory.
func Load(path, tempDir string) (Loaded, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return Loaded{}, project.PersistenceError(fmt.Sprintf("open %s", path), err)
	}
	defer zr.Close()

	files := make(map[string]*zip.File, len(zr.File))
	for _, f := range zr.File {
		files[f.Name] = f
	}

	var pd project.ProjectData
	if err := readJSON(files, entryProject, &pd.Project); err != nil {
		return Loaded{}, err
	}
	if err := readJSON(files, entryTranscription, &pd.Transcription); err != nil {
		return Loaded{}, err
	}
	if err := readJSON(files, entrySpeakers, &pd.Speakers); err != nil {
		return Loaded{}, err
	}
	if err := readJSON(files, entryClips, &pd.Clips); err != nil {
		return Loaded{}, err
	}
	pd.SchemaVersion = project.Version

	audioFile, ok := findAudioEntry(files)
	if !ok {
		return Loaded{}, project.PersistenceError(fmt.Sprintf("%s has no embedded audio", path), nil)
	}

	extractDir := filepath.Join(tempDir, fmt.Sprintf("transcriptcore-%d", time.Now().UnixNano()))
	if err := os.MkdirAll(extractDir, 0o755); err != nil {
		return Loaded{}, project.PersistenceError("create extract dir", err)
	}
	extractedPath := filepath.Join(extractDir, filepath.Base(audioFile.Name))
	if err := extractEntry(audioFile, extractedPath); err != nil {
		return Loaded{}, err
	}

	pd.Project.Audio.Path = extractedPath
	pd.Project.Audio.EmbeddedPath = audioFile.Name

	return Loaded{Project: pd, ExtractedAudioPath: extractedPath}, nil
}

func readJSON(files map[string]*zip.File, name string, v any) error {
	f, ok := files[name]
	if !ok {
		return project.PersistenceError(fmt.Sprintf("missing entry %s", name), nil)
	}
	rc, err := f.Open()
	if err != nil {
		return project.PersistenceError(fmt.Sprintf("open entry %s", name), err)
	}
	defer rc.Close()
	if err := json.NewDecoder(rc).Decode(v); err != nil {
		return project.PersistenceError(fmt.Sprintf("decode %s", name), err)
	}
	return nil
}

func findAudioEntry(files map[string]*zip.File) (*zip.File, bool) {
	if f, ok := files[defaultAudioName]; ok {
		return f, true
	}
	for name, f := range files {
		if len(name) > len(entryAudioDir) && name[:len(entryAudioDir)] == entryAudioDir {
			return f, true
		}
	}
	return nil, false
}

func extractEntry(f *zip.File, dstPath string) error {
	rc, err := f.Open()
	if err != nil {
		return project.PersistenceError("open audio entry", err)
	}
	defer rc.Close()

	dst, err := os.Create(dstPath)
	if err != nil {
		return project.PersistenceError(fmt.Sprintf("create %s", dstPath), err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, rc); err != nil {
		return project.PersistenceError("extract audio", err)
	}
	return nil
}

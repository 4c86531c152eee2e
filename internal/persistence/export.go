package persistence

import (
	"archive/zip"
	"fmt"
	"os"
	"strings"

	"github.com/askidmobile/transcriptcore/internal/project"
)

// ExportFormat names one of the flat text formats a project's transcript
// can be rendered to, independent of the project package format itself.
type ExportFormat string

const (
	FormatTXT ExportFormat = "txt"
	FormatSRT ExportFormat = "srt"
)

// RenderTranscript flattens pd's active clips, in order, into one of the
// supported flat export formats.
func RenderTranscript(pd project.ProjectData, format ExportFormat) (string, error) {
	switch format {
	case FormatTXT:
		return renderTXT(pd), nil
	case FormatSRT:
		return renderSRT(pd), nil
	default:
		return "", project.PersistenceError(fmt.Sprintf("unsupported export format %q", format), nil)
	}
}

func renderTXT(pd project.ProjectData) string {
	var sb strings.Builder
	title := pd.Project.Name
	if title == "" {
		title = "Transcript"
	}
	sb.WriteString(title + "\n")
	sb.WriteString(strings.Repeat("=", len(title)) + "\n\n")

	for _, c := range pd.ActiveClips() {
		text := clipText(c)
		if text == "" {
			continue
		}
		sb.WriteString(fmt.Sprintf("[%s] %s: %s\n", formatTimestamp(c.StartTime), c.Speaker, text))
	}
	return sb.String()
}

func renderSRT(pd project.ProjectData) string {
	var sb strings.Builder
	n := 1
	for _, c := range pd.ActiveClips() {
		text := clipText(c)
		if text == "" {
			continue
		}
		sb.WriteString(fmt.Sprintf("%d\n", n))
		sb.WriteString(fmt.Sprintf("%s --> %s\n", formatSRTTime(c.StartTime), formatSRTTime(c.EndTime)))
		sb.WriteString(fmt.Sprintf("%s: %s\n\n", c.Speaker, text))
		n++
	}
	return sb.String()
}

func clipText(c project.Clip) string {
	var words []string
	for _, s := range c.Segments {
		if s.IsWord() && s.Text != "" {
			words = append(words, s.Text)
		}
	}
	return strings.Join(words, " ")
}

func formatTimestamp(sec float64) string {
	totalSec := int(sec)
	return fmt.Sprintf("%02d:%02d", totalSec/60, totalSec%60)
}

func formatSRTTime(sec float64) string {
	ms := int(sec * 1000)
	h, m, s, msec := ms/3600000, (ms%3600000)/60000, (ms%60000)/1000, ms%1000
	return fmt.Sprintf("%02d:%02d:%02d,%03d", h, m, s, msec)
}

// ExportBatch renders every project in projects in format and bundles the
// results into a single zip at destPath, one file per project named by its
// project id (§4.5 supplement, grounded on the teacher's batch export).
func ExportBatch(destPath string, projects []project.ProjectData, format ExportFormat) error {
	f, err := os.Create(destPath)
	if err != nil {
		return project.PersistenceError(fmt.Sprintf("create %s", destPath), err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	for _, pd := range projects {
		content, err := RenderTranscript(pd, format)
		if err != nil {
			return err
		}
		name := pd.Project.ID
		if name == "" {
			name = "untitled"
		}
		w, err := zw.Create(fmt.Sprintf("%s.%s", name, format))
		if err != nil {
			return project.PersistenceError("create export entry", err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			return project.PersistenceError("write export entry", err)
		}
	}
	if err := zw.Close(); err != nil {
		return project.PersistenceError("finalize export zip", err)
	}
	return nil
}

// Package project defines the root ProjectData value and its constituent
// entities (clips, speakers, transcription provenance). It owns no mutation
// logic of its own — that belongs to the store package — only the shape of
// the data and the invariants it must satisfy.
package project

import (
	"sort"
	"time"

	"github.com/askidmobile/transcriptcore/internal/segment"
)

// Version is the persisted schema version this package produces and
// expects. Persistence refuses to save any other version; the package format
// stores no version of its own, so Load does not check one and stamps this
// value on whatever it reads.
const Version = "2.0"

// ClipStatus distinguishes a live clip from one that has been soft-deleted.
type ClipStatus string

const (
	ClipActive  ClipStatus = "active"
	ClipDeleted ClipStatus = "deleted"
)

// ClipType records where a clip boundary came from.
type ClipType string

const (
	ClipTranscribed   ClipType = "transcribed"
	ClipSpeakerChange ClipType = "speaker-change"
	ClipParagraphBreak ClipType = "paragraph-break"
	ClipUserCreated    ClipType = "user-created"
)

// SilenceSpeaker is the reserved speaker id used for spacer-only clips
// materialized between transcribed clips on a large inter-clip gap (§4.2).
const SilenceSpeaker = "Silence"

// Clip is a named timeline block with an ordered, gapless, non-overlapping
// sequence of segments.
type Clip struct {
	ID         string            `json:"id"`
	Speaker    string            `json:"speaker"`
	StartTime  float64           `json:"startTime"`
	EndTime    float64           `json:"endTime"`
	Order      int               `json:"order"`
	Status     ClipStatus        `json:"status"`
	Type       ClipType          `json:"type"`
	CreatedAt  time.Time         `json:"createdAt"`
	ModifiedAt time.Time         `json:"modifiedAt"`
	Style      map[string]string `json:"style,omitempty"`
	Segments   []segment.Segment `json:"segments"`
}

// Duration is EndTime-StartTime, the clip's length on the edited timeline.
func (c Clip) Duration() float64 { return c.EndTime - c.StartTime }

// AudioMetadata describes the canonical audio backing a project.
type AudioMetadata struct {
	OriginalName string `json:"originalName"`
	Path         string `json:"path"`
	EmbeddedPath string `json:"embeddedPath,omitempty"`
	SampleRate   int    `json:"sampleRate"`
	Channels     int    `json:"channels"`
	BitDepth     int    `json:"bitDepth"`
	DurationSec  float64 `json:"durationSec"`
	WasConverted bool    `json:"wasConverted,omitempty"`
	// Extra carries any audio-metadata keys beyond OriginalName the caller
	// supplied at import time, passed through verbatim (§6).
	Extra map[string]string `json:"extra,omitempty"`
}

// ProjectIdentity is the project-level metadata and provenance envelope.
type ProjectIdentity struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	CreatedAt    time.Time     `json:"createdAt"`
	ModifiedAt   time.Time     `json:"modifiedAt"`
	Audio        AudioMetadata `json:"audio"`
	ASRProvider  string        `json:"asrProvider,omitempty"`
	ASRModel     string        `json:"asrModel,omitempty"`
	Language     string        `json:"language,omitempty"`
}

// TranscriptionStatus records how far along the original ASR result is.
type TranscriptionStatus string

const (
	TranscriptionCompleted  TranscriptionStatus = "completed"
	TranscriptionInProgress TranscriptionStatus = "in-progress"
)

// RawSegment preserves one original ASR segment verbatim (§4.2 step 6).
type RawSegment struct {
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
	Text    string  `json:"text"`
	Speaker string  `json:"speaker,omitempty"`
}

// TranscriptionStats are aggregate figures computed once at import time.
type TranscriptionStats struct {
	WordCount    int     `json:"wordCount"`
	SpacerCount  int     `json:"spacerCount"`
	TotalSpeech  float64 `json:"totalSpeechSec"`
	TotalSilence float64 `json:"totalSilenceSec"`
}

// Transcription holds the original ASR result verbatim alongside derived
// stats, kept for provenance and re-import/diff tooling.
type Transcription struct {
	Status           TranscriptionStatus `json:"status"`
	Language         string              `json:"language"`
	OriginalSegments []RawSegment        `json:"originalSegments"`
	Stats            TranscriptionStats  `json:"stats"`
	// SpeakerSummaries carries the ASR provider's precomputed per-speaker
	// aggregates, when supplied, verbatim and unrecomputed (§4.2 input
	// contract).
	SpeakerSummaries []SpeakerSummary `json:"speakerSummaries,omitempty"`
}

// SpeakerSummary mirrors the importer's input DTO of the same name, kept
// here so ProjectData can carry it without the project package depending
// on importer.
type SpeakerSummary struct {
	SpeakerID string  `json:"speakerId"`
	TotalSec  float64 `json:"totalSec"`
	WordCount int     `json:"wordCount"`
}

// Speakers is the central speaker table: clips reference speakers by id
// only (segments carry no speaker). A renameSpeaker operation changes the id
// itself, so it rewrites the map key, DefaultSpeaker and every clip tagged
// with the old id.
type Speakers struct {
	Names         map[string]string `json:"names"`
	DefaultSpeaker string           `json:"defaultSpeaker"`
}

// GroupingConfig records the parameters the import scanner used, so a
// re-import or UI can reproduce or explain the clip boundaries it chose.
type GroupingConfig struct {
	SpacerThreshold float64 `json:"spacerThreshold"`
	MaxClipDuration float64 `json:"maxClipDuration"`
}

// Clips is the ordered clip list plus the config that produced its initial
// grouping. Order is the source of truth for clip sequencing, not slice
// position (though the store keeps them in sync).
type Clips struct {
	Items    []Clip         `json:"items"`
	Grouping GroupingConfig `json:"grouping"`
	Version  string         `json:"version"`
}

// ProjectData is the root, authoritative value owned by the Store.
type ProjectData struct {
	SchemaVersion string        `json:"version"`
	Project       ProjectIdentity `json:"project"`
	Transcription Transcription `json:"transcription"`
	Speakers      Speakers      `json:"speakers"`
	Clips         Clips         `json:"clips"`
}

// ActiveClips returns clips with Status==ClipActive, in Order.
func (p *ProjectData) ActiveClips() []Clip {
	out := make([]Clip, 0, len(p.Clips.Items))
	for _, c := range p.Clips.Items {
		if c.Status == ClipActive {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// ClipByID returns the clip with the given id and its index, or ok=false.
func (p *ProjectData) ClipByID(id string) (Clip, int, bool) {
	for i, c := range p.Clips.Items {
		if c.ID == id {
			return c, i, true
		}
	}
	return Clip{}, -1, false
}

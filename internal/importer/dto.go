// Package importer turns a raw ASR TranscriptionResult plus resolved audio
// metadata into an initial, fully valid project.ProjectData (§4.2).
package importer

import "github.com/askidmobile/transcriptcore/internal/segment"

// WordIn is one ASR word-level timestamp, in the provider's own unit
// (seconds or milliseconds — Import detects which).
type WordIn struct {
	Start      float64 `json:"start"`
	End        float64 `json:"end"`
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence,omitempty"`
	Speaker    string  `json:"speaker,omitempty"`
}

// SegmentIn is one ASR segment: a speaker turn with optional word-level
// detail. When Words is empty the segment itself is treated as a single
// word-equivalent span.
type SegmentIn struct {
	Start   float64  `json:"start"`
	End     float64  `json:"end"`
	Text    string   `json:"text"`
	Speaker string   `json:"speaker,omitempty"`
	Words   []WordIn `json:"words,omitempty"`
}

// SpeakerSummary is an optional, provider-precomputed aggregate the
// importer passes through without recomputation when present.
type SpeakerSummary struct {
	SpeakerID string  `json:"speakerId"`
	TotalSec  float64 `json:"totalSec"`
	WordCount int     `json:"wordCount"`
}

// TranscriptionResult is the full ASR input contract (§6).
type TranscriptionResult struct {
	Segments         []SegmentIn       `json:"segments"`
	Language         string            `json:"language"`
	Speakers         map[string]string `json:"speakers"`
	SpeakerSummaries []SpeakerSummary  `json:"speakerSummaries,omitempty"`
}

// AudioMeta is the free-form audio metadata bag accompanying an import; only
// OriginalName is required, every other key is passed through.
type AudioMeta struct {
	OriginalName string
	Extra        map[string]string
}

// Options tunes the import scanner (§4.2 step 3). Zero values take the
// segment package's documented defaults.
type Options struct {
	SpacerThreshold float64
	MaxClipDuration float64
}

func (o Options) resolved() Options {
	if o.SpacerThreshold <= 0 {
		o.SpacerThreshold = segment.DefaultSpacerThreshold
	}
	if o.MaxClipDuration <= 0 {
		o.MaxClipDuration = segment.DefaultMaxClipDuration
	}
	return o
}

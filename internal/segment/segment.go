// Package segment implements the segment algebra: construction, validation
// and normalization of the ordered Word/Spacer sequences that make up a
// clip, plus the small set of timing utilities the rest of the core is
// built on.
package segment

import (
	"math"

	"github.com/google/uuid"
)

// Kind discriminates the two segment variants. A Segment is a sum type in
// spirit; Go encodes it as a single tagged struct so the ordered sequence
// stays a plain, JSON-friendly slice.
type Kind string

const (
	KindWord   Kind = "word"
	KindSpacer Kind = "spacer"
)

// Segment is either a Word or a Spacer, discriminated by Kind. Start/End are
// clip-relative seconds. Word carries Text, Confidence and the preserved
// OriginalStart/OriginalEnd (absolute audio seconds); Spacer carries an
// optional Label and has no original-audio timing.
type Segment struct {
	ID    string `json:"id"`
	Kind  Kind   `json:"kind"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`

	// Word-only.
	Text          string  `json:"text,omitempty"`
	Confidence    float64 `json:"confidence,omitempty"`
	OriginalStart float64 `json:"originalStart,omitempty"`
	OriginalEnd   float64 `json:"originalEnd,omitempty"`

	// Spacer-only.
	Label string `json:"label,omitempty"`
}

// RoundDigits is the precision timings are snapped to at construction time,
// so later equality checks never compare raw float jitter.
const RoundDigits = 6

// Round6 rounds t to RoundDigits decimal places.
func Round6(t float64) float64 {
	scale := math.Pow(10, RoundDigits)
	return math.Round(t*scale) / scale
}

// IsWord reports whether the segment is a Word.
func (s Segment) IsWord() bool { return s.Kind == KindWord }

// IsSpacer reports whether the segment is a Spacer.
func (s Segment) IsSpacer() bool { return s.Kind == KindSpacer }

// Duration is End-Start. For a Spacer this is its silence duration; for a
// Word it is its spoken duration on the edited timeline.
func (s Segment) Duration() float64 { return s.End - s.Start }

// Shift returns a copy of s with Start/End moved by delta. A Word's
// OriginalStart/OriginalEnd are untouched: shifting a segment along the
// edited timeline never rewrites where its audio lives (invariant I7).
func (s Segment) Shift(delta float64) Segment {
	out := s
	out.Start = Round6(s.Start + delta)
	out.End = Round6(s.End + delta)
	return out
}

// MakeWord constructs a Word segment. origStart/origEnd default to start/end
// when not supplied (hasOriginal=false), matching the import path where a word's
// original audio position is, absent better information, its edited one.
func MakeWord(text string, start, end, confidence float64, origStart, origEnd float64, hasOriginal bool) Segment {
	start = Round6(math.Max(0, start))
	end = Round6(math.Max(start, end))
	if !hasOriginal {
		origStart, origEnd = start, end
	}
	return Segment{
		ID:            uuid.New().String(),
		Kind:          KindWord,
		Start:         start,
		End:           end,
		Text:          text,
		Confidence:    confidence,
		OriginalStart: Round6(origStart),
		OriginalEnd:   Round6(origEnd),
	}
}

// MakeSpacer constructs a Spacer segment, sanitizing start/end: start is
// clamped to >=0, end to >=start, both rounded to RoundDigits places.
func MakeSpacer(start, end float64, label string) Segment {
	start = Round6(math.Max(0, start))
	end = Round6(math.Max(start, end))
	return Segment{
		ID:    uuid.New().String(),
		Kind:  KindSpacer,
		Start: start,
		End:   end,
		Label: label,
	}
}

// ClipToAbs maps a clip-relative time to absolute audio time given the
// clip's start offset on the edited timeline.
func ClipToAbs(clipStart, t float64) float64 { return clipStart + t }

// AbsToClip maps an absolute audio time to clip-relative time.
func AbsToClip(clipStart, t float64) float64 { return t - clipStart }

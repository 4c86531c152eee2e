package importer

import "sort"

// flatWord is a word after flattening and unit normalization, still in the
// provider's speaker-inherited form, sorted by Start.
type flatWord struct {
	Start, End float64
	Text       string
	Confidence float64
	Speaker    string
}

// flatten collects every word across every segment, inheriting the
// segment's speaker where a word has none, and sorts the result by Start.
// A segment with no word-level detail is treated as a single word spanning
// the whole segment.
func flatten(result TranscriptionResult) []flatWord {
	var out []flatWord
	for _, seg := range result.Segments {
		if len(seg.Words) == 0 {
			out = append(out, flatWord{
				Start: seg.Start, End: seg.End, Text: seg.Text,
				Confidence: 1, Speaker: seg.Speaker,
			})
			continue
		}
		for _, w := range seg.Words {
			speaker := w.Speaker
			if speaker == "" {
				speaker = seg.Speaker
			}
			conf := w.Confidence
			if conf == 0 {
				conf = 1
			}
			out = append(out, flatWord{Start: w.Start, End: w.End, Text: w.Text, Confidence: conf, Speaker: speaker})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	return out
}

// unitDetectionThreshold: a median positive word duration above this many
// units means the units must be milliseconds, not seconds (no real spoken
// word lasts 10 seconds).
const unitDetectionThreshold = 10.0

// UnitDecision records what normalizeUnits decided and why, so the import
// pipeline can log it rather than silently assume a unit.
type UnitDecision struct {
	ConvertedMsToSec bool
	MedianDuration   float64
}

// normalizeUnits detects whether timestamps are in seconds or milliseconds
// by the median of positive word durations, and rescales in place if needed.
func normalizeUnits(words []flatWord) UnitDecision {
	durations := make([]float64, 0, len(words))
	for _, w := range words {
		if d := w.End - w.Start; d > 0 {
			durations = append(durations, d)
		}
	}
	median := medianOf(durations)
	decision := UnitDecision{MedianDuration: median}
	if median > unitDetectionThreshold {
		decision.ConvertedMsToSec = true
		for i := range words {
			words[i].Start /= 1000
			words[i].End /= 1000
		}
	}
	return decision
}

func medianOf(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

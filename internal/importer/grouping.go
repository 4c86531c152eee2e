package importer

import (
	"fmt"

	"github.com/askidmobile/transcriptcore/internal/segment"
)

// group is one draft clip produced by the stream scanner: either a run of
// words sharing a speaker, or a dedicated inter-clip silence marker.
type group struct {
	isSilence       bool
	silenceDuration float64
	speaker         string
	words           []flatWord
}

// groupWords implements the §4.2 step-3 stream scanner: a new clip starts
// on a speaker change, on exceeding MaxClipDuration, or on a gap at/above
// SpacerThreshold — the last of which also emits a dedicated spacer-only
// group for the silence itself.
func groupWords(words []flatWord, opts Options) []group {
	var groups []group
	var cur []flatWord
	var curSpeaker string

	flush := func() {
		if len(cur) > 0 {
			groups = append(groups, group{speaker: curSpeaker, words: cur})
			cur = nil
		}
	}

	for _, w := range words {
		if len(cur) == 0 {
			cur = []flatWord{w}
			curSpeaker = w.Speaker
			continue
		}
		last := cur[len(cur)-1]
		gap := w.Start - last.End

		if gap >= opts.SpacerThreshold {
			flush()
			groups = append(groups, group{isSilence: true, silenceDuration: gap})
			cur = []flatWord{w}
			curSpeaker = w.Speaker
			continue
		}

		speakerChanged := w.Speaker != curSpeaker
		wouldExceedMax := (w.End - cur[0].Start) > opts.MaxClipDuration
		if speakerChanged || wouldExceedMax {
			flush()
			cur = []flatWord{w}
			curSpeaker = w.Speaker
			continue
		}

		cur = append(cur, w)
	}
	flush()
	return groups
}

// buildClipSegments walks one group's words, emitting a Word per word and
// resolving the gap to the next word per §4.1: a large gap materializes a
// Spacer, a small one extends the current Word and rescales its
// OriginalEnd proportionally.
func buildClipSegments(words []flatWord, spacerThreshold float64) []segment.Segment {
	clipStartAbs := words[0].Start
	segs := make([]segment.Segment, 0, len(words))

	for i, w := range words {
		relStart := w.Start - clipStartAbs
		relEnd := w.End - clipStartAbs
		seg := segment.MakeWord(w.Text, relStart, relEnd, w.Confidence, w.Start, w.End, true)
		segs = append(segs, seg)

		if i+1 >= len(words) {
			continue
		}
		next := words[i+1]
		gap := next.Start - w.End

		switch {
		case gap >= spacerThreshold:
			last := segs[len(segs)-1]
			segs = append(segs, segment.MakeSpacer(last.End, last.End+gap, fmt.Sprintf("%.1fs", gap)))
		case gap > 0:
			extendLastWord(&segs[len(segs)-1], gap)
		}
		// gap <= 0 (touching or overlapping words): left to NormalizeForImport.
	}
	return segs
}

// extendLastWord absorbs a sub-threshold gap into a Word's End, scaling its
// OriginalEnd so (OriginalEnd-OriginalStart)/(End-Start) is preserved. This
// is the only mutation of a Word's original timing outside editWord.
func extendLastWord(w *segment.Segment, gap float64) {
	oldDur := w.End - w.Start
	newEnd := w.End + gap
	w.End = segment.Round6(newEnd)
	if oldDur <= 0 {
		return
	}
	origDur := w.OriginalEnd - w.OriginalStart
	newDur := w.End - w.Start
	w.OriginalEnd = segment.Round6(w.OriginalStart + origDur*(newDur/oldDur))
}

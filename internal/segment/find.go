package segment

import "sort"

// FindAtTime returns the segment covering clip-relative time t, or false if
// t falls outside every segment's [Start, End) span (or the list is empty).
// The one exception is t exactly at the last segment's End, which returns
// the last segment.
// Segments must already be sorted by Start, which every Store-owned clip
// guarantees as an invariant.
func FindAtTime(segments []Segment, t float64) (Segment, bool) {
	if len(segments) == 0 {
		return Segment{}, false
	}
	// First segment whose Start is > t; the one before it is the candidate.
	i := sort.Search(len(segments), func(i int) bool {
		return segments[i].Start > t
	})
	if i == 0 {
		return Segment{}, false
	}
	cand := segments[i-1]
	if t >= cand.Start && t < cand.End {
		return cand, true
	}
	// t lands exactly on the final segment's End boundary.
	if i == len(segments) && t == cand.End {
		return cand, true
	}
	return Segment{}, false
}

package project

import (
	"sort"

	"github.com/askidmobile/transcriptcore/internal/segment"
)

// CheckInvariants validates I1-I6 across the whole project (§3), using
// steady-state tolerance for every clip. I7 (word originality) is enforced
// structurally by the store's operation implementations rather than
// checked here, since it is a property of how state transitions are
// computed, not of a single snapshot.
func CheckInvariants(pd ProjectData) segment.ValidationResult {
	return CheckInvariantsTolerant(pd, segment.ValidateOptions{})
}

// CheckInvariantsTolerant is CheckInvariants with the per-clip tolerance
// Load needs: import-mode tolerance for freshly-imported projects,
// steady-state otherwise (§4.3).
func CheckInvariantsTolerant(pd ProjectData, clipOpts segment.ValidateOptions) segment.ValidationResult {
	result := segment.ValidationResult{Ok: true}

	for _, c := range pd.Clips.Items {
		cr := segment.Validate(c.Segments, c.Duration(), clipOpts)
		if !cr.Ok {
			result.Ok = false
		}
		result.Errors = append(result.Errors, cr.Errors...)
		result.Warnings = append(result.Warnings, cr.Warnings...)
	}

	active := pd.ActiveClips()
	sort.Slice(active, func(i, j int) bool { return active[i].Order < active[j].Order })
	for i := 1; i < len(active); i++ {
		if active[i].StartTime < active[i-1].EndTime-segment.EpsSteady {
			result.Ok = false
			result.Errors = append(result.Errors, segment.Issue{
				Severity: "error", Code: "timeline_overlap", Index: active[i].Order,
				Message: "active clip starts before the previous one ends",
			})
		}
	}

	orders := make([]int, len(pd.Clips.Items))
	for i, c := range pd.Clips.Items {
		orders[i] = c.Order
	}
	sort.Ints(orders)
	for i, o := range orders {
		if o != i {
			result.Ok = false
			result.Errors = append(result.Errors, segment.Issue{
				Severity: "error", Code: "non_dense_order", Index: o,
				Message: "clip order values are not a dense 0..N-1 permutation",
			})
			break
		}
	}

	return result
}

// Renumber assigns dense Order values 0..N-1 to clips in their current
// Order-sorted sequence, then repacks active clips contiguously on the
// edited timeline so StartTime/EndTime stay consistent with I5.
func Renumber(clips []Clip) []Clip {
	out := append([]Clip(nil), clips...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	for i := range out {
		out[i].Order = i
	}
	return RepackTimeline(out)
}

// RepackTimeline recomputes StartTime/EndTime for every active clip, in
// Order, so they are packed back-to-back with no gap — the edited timeline
// is the concatenation of active clips in order, by definition (§4.4 rule 2
// mirrored here so the store's own state satisfies I5 without waiting for
// an EDL projection).
func RepackTimeline(clips []Clip) []Clip {
	out := append([]Clip(nil), clips...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	cursor := 0.0
	for i := range out {
		if out[i].Status != ClipActive {
			continue
		}
		d := out[i].Duration()
		out[i].StartTime = segment.Round6(cursor)
		out[i].EndTime = segment.Round6(cursor + d)
		cursor += d
	}
	return out
}

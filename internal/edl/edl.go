// Package edl projects a project.ProjectData snapshot into a playable edit
// decision list for a transport backend (§4.4). Projection is pure: no I/O,
// no mutation, a snapshot in and a value out.
package edl

import (
	"sort"

	"github.com/askidmobile/transcriptcore/internal/project"
	"github.com/askidmobile/transcriptcore/internal/segment"
)

// SegmentKind mirrors segment.Kind on the wire.
type SegmentKind string

const (
	KindWord   SegmentKind = "word"
	KindSpacer SegmentKind = "spacer"
)

// SegmentEntry is one clip-relative playable region within a Clip entry.
type SegmentEntry struct {
	Kind             SegmentKind `json:"kind"`
	StartSec         float64     `json:"startSec"`
	EndSec           float64     `json:"endSec"`
	Text             string      `json:"text,omitempty"`
	OriginalStartSec *float64    `json:"originalStartSec,omitempty"`
	OriginalEndSec   *float64    `json:"originalEndSec,omitempty"`
}

// Clip is one entry in the edit decision list: a playable window on the
// edited timeline, with an optional mapping back to the original recording.
type Clip struct {
	ID               string         `json:"id"`
	Order            int            `json:"order"`
	StartSec         float64        `json:"startSec"`
	EndSec           float64        `json:"endSec"`
	OriginalStartSec *float64       `json:"originalStartSec,omitempty"`
	OriginalEndSec   *float64       `json:"originalEndSec,omitempty"`
	Segments         []SegmentEntry `json:"segments,omitempty"`
}

// List is a complete, versioned edit decision list (§4.4 rule 5).
type List struct {
	Revision int    `json:"revision"`
	Clips    []Clip `json:"clips"`
}

// Project derives an EDL from pd's active clips at the given revision. The
// revision is stamped as given: the caller owns revision bookkeeping and
// keeps it monotone (P6); store.Store keeps no revision of its own.
func Project(pd project.ProjectData, revision int) List {
	active := pd.ActiveClips()
	sort.Slice(active, func(i, j int) bool { return active[i].Order < active[j].Order })

	list := List{Revision: revision, Clips: make([]Clip, 0, len(active))}
	cursor := 0.0
	for _, c := range active {
		d := c.Duration()
		entry := Clip{
			ID:       c.ID,
			Order:    c.Order,
			StartSec: segment.Round6(cursor),
			EndSec:   segment.Round6(cursor + d),
		}
		var firstWordOrig, lastWordOrig *float64
		entry.Segments, firstWordOrig, lastWordOrig = projectSegments(c)
		// Rule 4: only surface the top-level original-position mapping when
		// the clip's edited window has actually moved relative to where its
		// audio originally sat — a clip untouched by reorder/merge/spacer
		// insertion plays back in place and needs no mapping.
		if firstWordOrig != nil && (!segment.Approx(*firstWordOrig, entry.StartSec) || !segment.Approx(*lastWordOrig, entry.EndSec)) {
			entry.OriginalStartSec = firstWordOrig
			entry.OriginalEndSec = lastWordOrig
		}
		list.Clips = append(list.Clips, entry)
		cursor += d
	}
	return list
}

// projectSegments builds the per-segment detail for one clip and returns its
// first and last Word original positions (nil, nil if the clip is spacer-only).
func projectSegments(c project.Clip) ([]SegmentEntry, *float64, *float64) {
	entries := make([]SegmentEntry, 0, len(c.Segments))
	var firstWordOrig, lastWordOrig *float64

	for _, s := range c.Segments {
		e := SegmentEntry{StartSec: s.Start, EndSec: s.End}
		if s.IsWord() {
			e.Kind = KindWord
			e.Text = s.Text
			start, end := s.OriginalStart, s.OriginalEnd
			e.OriginalStartSec = &start
			e.OriginalEndSec = &end
			if firstWordOrig == nil {
				v := s.OriginalStart
				firstWordOrig = &v
			}
			v := s.OriginalEnd
			lastWordOrig = &v
		} else {
			e.Kind = KindSpacer
		}
		entries = append(entries, e)
	}

	return entries, firstWordOrig, lastWordOrig
}

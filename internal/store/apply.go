package store

import (
	"fmt"
	"sort"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/askidmobile/transcriptcore/internal/project"
	"github.com/askidmobile/transcriptcore/internal/segment"
)

var versionCounter atomic.Int64

// applyOperation computes the candidate ProjectData that would result from
// applying op to pd. It never mutates pd; Store.Apply validates the
// candidate and only then promotes it to the live state.
func applyOperation(pd project.ProjectData, op EditOperation) (project.ProjectData, error) {
	candidate := pd.Clone()

	switch op.Type {
	case OpSplitClip:
		return candidate, applySplitClip(&candidate, op.SplitClip)
	case OpMergeClips:
		return candidate, applyMergeClips(&candidate, op.MergeClips)
	case OpDeleteClip:
		return candidate, applyDeleteClip(&candidate, op.DeleteClip)
	case OpReorderClips:
		return candidate, applyReorderClips(&candidate, op.ReorderClips)
	case OpInsertSpacer:
		return candidate, applyInsertSpacer(&candidate, op.InsertSpacer)
	case OpEditWord:
		return candidate, applyEditWord(&candidate, op.EditWord)
	case OpChangeSpeaker:
		return candidate, applyChangeSpeaker(&candidate, op.ChangeSpeaker)
	case OpRenameSpeaker:
		return candidate, applyRenameSpeaker(&candidate, op.RenameSpeaker)
	default:
		return pd, fmt.Errorf("unknown operation type %q", op.Type)
	}
}

func findClip(pd *project.ProjectData, id string) (int, error) {
	for i, c := range pd.Clips.Items {
		if c.ID == id {
			return i, nil
		}
	}
	return -1, fmt.Errorf("clip %q not found", id)
}

func spliceClip(items []project.Clip, idx int, replacement ...project.Clip) []project.Clip {
	out := make([]project.Clip, 0, len(items)-1+len(replacement))
	out = append(out, items[:idx]...)
	out = append(out, replacement...)
	out = append(out, items[idx+1:]...)
	return out
}

func applySplitClip(pd *project.ProjectData, p *SplitClipPayload) error {
	if p == nil {
		return fmt.Errorf("splitClip: missing payload")
	}
	idx, err := findClip(pd, p.ClipID)
	if err != nil {
		return err
	}
	orig := pd.Clips.Items[idx]
	if p.SegmentIndex <= 0 || p.SegmentIndex >= len(orig.Segments) {
		return fmt.Errorf("splitClip: index %d is not strictly interior (len=%d)", p.SegmentIndex, len(orig.Segments))
	}

	leftSegs := append([]segment.Segment(nil), orig.Segments[:p.SegmentIndex]...)
	rightSegsRaw := orig.Segments[p.SegmentIndex:]
	shift := rightSegsRaw[0].Start
	rightSegs := make([]segment.Segment, len(rightSegsRaw))
	for i, s := range rightSegsRaw {
		rightSegs[i] = s.Shift(-shift)
	}

	now := time.Now()
	leftDuration := leftSegs[len(leftSegs)-1].End
	rightDuration := rightSegs[len(rightSegs)-1].End

	left := orig
	left.Segments = leftSegs
	left.EndTime = orig.StartTime + leftDuration
	left.ModifiedAt = now

	right := orig
	right.ID = uuid.New().String()
	right.Segments = rightSegs
	right.StartTime = left.EndTime
	right.EndTime = left.EndTime + rightDuration
	right.CreatedAt = now
	right.ModifiedAt = now

	pd.Clips.Items = spliceClip(pd.Clips.Items, idx, left, right)
	pd.Clips.Items = project.Renumber(pd.Clips.Items)
	bumpVersion(pd)
	return nil
}

func applyMergeClips(pd *project.ProjectData, p *MergeClipsPayload) error {
	if p == nil || len(p.ClipIDs) < 2 {
		return fmt.Errorf("mergeClips: at least two clip ids are required")
	}

	type found struct {
		idx  int
		clip project.Clip
	}
	members := make([]found, 0, len(p.ClipIDs))
	for _, id := range p.ClipIDs {
		idx, err := findClip(pd, id)
		if err != nil {
			return err
		}
		members = append(members, found{idx: idx, clip: pd.Clips.Items[idx]})
	}
	sort.Slice(members, func(i, j int) bool { return members[i].clip.Order < members[j].clip.Order })

	for i := 1; i < len(members); i++ {
		if members[i].clip.Order != members[i-1].clip.Order+1 {
			return fmt.Errorf("mergeClips: clips are not contiguous by order")
		}
	}

	first := members[0].clip
	merged := first
	merged.ID = uuid.New().String()
	merged.ModifiedAt = time.Now()
	merged.Segments = nil

	cumulative := 0.0
	for _, m := range members {
		for _, s := range m.clip.Segments {
			merged.Segments = append(merged.Segments, s.Shift(cumulative))
		}
		cumulative += m.clip.Duration()
	}
	merged.EndTime = members[len(members)-1].clip.EndTime

	lowestIdx := members[0].idx
	// Remove all contributing clips from the slice (in descending index
	// order so earlier removals don't shift later indices), then splice
	// the merged clip in at the position of the first one.
	items := append([]project.Clip(nil), pd.Clips.Items...)
	idxSet := make(map[int]bool, len(members))
	for _, m := range members {
		idxSet[m.idx] = true
	}
	filtered := make([]project.Clip, 0, len(items)-len(members)+1)
	inserted := false
	for i, c := range items {
		if idxSet[i] {
			if i == lowestIdx {
				filtered = append(filtered, merged)
				inserted = true
			}
			continue
		}
		filtered = append(filtered, c)
	}
	if !inserted {
		filtered = append(filtered, merged)
	}

	pd.Clips.Items = project.Renumber(filtered)
	bumpVersion(pd)
	return nil
}

func applyDeleteClip(pd *project.ProjectData, p *DeleteClipPayload) error {
	if p == nil {
		return fmt.Errorf("deleteClip: missing payload")
	}
	idx, err := findClip(pd, p.ClipID)
	if err != nil {
		return err
	}
	pd.Clips.Items[idx].Status = project.ClipDeleted
	pd.Clips.Items[idx].ModifiedAt = time.Now()
	pd.Clips.Items = project.RepackTimeline(pd.Clips.Items)
	bumpVersion(pd)
	return nil
}

func applyReorderClips(pd *project.ProjectData, p *ReorderClipsPayload) error {
	if p == nil {
		return fmt.Errorf("reorderClips: missing payload")
	}
	idx, err := findClip(pd, p.ClipID)
	if err != nil {
		return err
	}

	items := append([]project.Clip(nil), pd.Clips.Items...)
	sort.SliceStable(items, func(i, j int) bool { return items[i].Order < items[j].Order })

	var cur int
	for i, c := range items {
		if c.ID == p.ClipID {
			cur = i
			break
		}
	}
	moving := items[cur]
	items = append(items[:cur], items[cur+1:]...)

	dest := p.NewOrder
	if dest < 0 {
		dest = 0
	}
	if dest > len(items) {
		dest = len(items)
	}
	items = append(items[:dest], append([]project.Clip{moving}, items[dest:]...)...)

	_ = idx
	pd.Clips.Items = project.Renumber(items)
	bumpVersion(pd)
	return nil
}

func applyInsertSpacer(pd *project.ProjectData, p *InsertSpacerPayload) error {
	if p == nil {
		return fmt.Errorf("insertSpacer: missing payload")
	}
	if p.Duration <= 0 {
		return fmt.Errorf("insertSpacer: duration must be positive")
	}
	idx, err := findClip(pd, p.ClipID)
	if err != nil {
		return err
	}
	clip := &pd.Clips.Items[idx]
	if p.SegmentIndex < 0 || p.SegmentIndex > len(clip.Segments) {
		return fmt.Errorf("insertSpacer: index %d out of range (len=%d)", p.SegmentIndex, len(clip.Segments))
	}

	var insertAt float64
	if p.SegmentIndex == len(clip.Segments) {
		insertAt = clip.Duration()
	} else {
		insertAt = clip.Segments[p.SegmentIndex].Start
	}
	spacer := segment.MakeSpacer(insertAt, insertAt+p.Duration, "")

	shifted := make([]segment.Segment, 0, len(clip.Segments)+1)
	shifted = append(shifted, clip.Segments[:p.SegmentIndex]...)
	shifted = append(shifted, spacer)
	for _, s := range clip.Segments[p.SegmentIndex:] {
		shifted = append(shifted, s.Shift(p.Duration))
	}
	clip.Segments = shifted
	clip.EndTime += p.Duration
	clip.ModifiedAt = time.Now()

	pd.Clips.Items = project.RepackTimeline(pd.Clips.Items)
	bumpVersion(pd)
	return nil
}

func applyEditWord(pd *project.ProjectData, p *EditWordPayload) error {
	if p == nil {
		return fmt.Errorf("editWord: missing payload")
	}
	idx, err := findClip(pd, p.ClipID)
	if err != nil {
		return err
	}
	clip := &pd.Clips.Items[idx]
	if p.SegmentIndex < 0 || p.SegmentIndex >= len(clip.Segments) {
		return fmt.Errorf("editWord: index %d out of range (len=%d)", p.SegmentIndex, len(clip.Segments))
	}
	seg := &clip.Segments[p.SegmentIndex]
	if !seg.IsWord() {
		return fmt.Errorf("editWord: segment at index %d is not a word", p.SegmentIndex)
	}
	seg.Text = p.NewText
	clip.ModifiedAt = time.Now()
	bumpVersion(pd)
	return nil
}

func applyChangeSpeaker(pd *project.ProjectData, p *ChangeSpeakerPayload) error {
	if p == nil {
		return fmt.Errorf("changeSpeaker: missing payload")
	}
	idx, err := findClip(pd, p.ClipID)
	if err != nil {
		return err
	}
	pd.Clips.Items[idx].Speaker = p.NewSpeaker
	pd.Clips.Items[idx].ModifiedAt = time.Now()
	bumpVersion(pd)
	return nil
}

func applyRenameSpeaker(pd *project.ProjectData, p *RenameSpeakerPayload) error {
	if p == nil {
		return fmt.Errorf("renameSpeaker: missing payload")
	}
	if p.OldName == "" || p.NewName == "" {
		return fmt.Errorf("renameSpeaker: oldName and newName are required")
	}
	display, ok := pd.Speakers.Names[p.OldName]
	if !ok {
		return fmt.Errorf("renameSpeaker: unknown speaker %q", p.OldName)
	}
	delete(pd.Speakers.Names, p.OldName)
	pd.Speakers.Names[p.NewName] = display

	if pd.Speakers.DefaultSpeaker == p.OldName {
		pd.Speakers.DefaultSpeaker = p.NewName
	}
	for i, c := range pd.Clips.Items {
		if c.Speaker == p.OldName {
			pd.Clips.Items[i].Speaker = p.NewName
			pd.Clips.Items[i].ModifiedAt = time.Now()
		}
	}
	bumpVersion(pd)
	return nil
}

// bumpVersion stamps Clips.Version with a monotonically-increasing token so
// external observers can detect a state change cheaply (§4.3).
func bumpVersion(pd *project.ProjectData) {
	pd.Clips.Version = fmt.Sprintf("%d-%d", time.Now().UnixNano(), versionCounter.Add(1))
	pd.Project.ModifiedAt = time.Now()
}

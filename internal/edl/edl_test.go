package edl

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askidmobile/transcriptcore/internal/project"
	"github.com/askidmobile/transcriptcore/internal/segment"
)

func clipOfDuration(order int, status project.ClipStatus, d float64) project.Clip {
	now := time.Now()
	segs := []segment.Segment{segment.MakeWord("w", 0, d, 1, 0, d, true)}
	return project.Clip{
		ID: uuid.New().String(), Order: order, Status: status, CreatedAt: now, ModifiedAt: now,
		Segments: segs, EndTime: d,
	}
}

// TestSoftDeletePacksEdl mirrors spec §8 scenario 6: three clips of
// durations 2, 3, 5; the middle one deleted; the EDL packs the remaining two
// back-to-back with windows [0,2] and [2,7].
func TestSoftDeletePacksEdl(t *testing.T) {
	a := clipOfDuration(0, project.ClipActive, 2)
	b := clipOfDuration(1, project.ClipDeleted, 3)
	c := clipOfDuration(2, project.ClipActive, 5)
	pd := project.ProjectData{Clips: project.Clips{Items: []project.Clip{a, b, c}}}

	list := Project(pd, 1)
	require.Len(t, list.Clips, 2)
	assert.Equal(t, 1, list.Revision)
	assert.Equal(t, 0.0, list.Clips[0].StartSec)
	assert.InDelta(t, 2.0, list.Clips[0].EndSec, 1e-6)
	assert.InDelta(t, 2.0, list.Clips[1].StartSec, 1e-6)
	assert.InDelta(t, 7.0, list.Clips[1].EndSec, 1e-6)
}

func TestUnmovedClipOmitsOriginalMapping(t *testing.T) {
	c := clipOfDuration(0, project.ClipActive, 2)
	pd := project.ProjectData{Clips: project.Clips{Items: []project.Clip{c}}}

	list := Project(pd, 0)
	require.Len(t, list.Clips, 1)
	assert.Nil(t, list.Clips[0].OriginalStartSec)
	assert.Nil(t, list.Clips[0].OriginalEndSec)
}

func TestMovedClipEmitsOriginalMapping(t *testing.T) {
	now := time.Now()
	// A clip whose word's original audio position (10-12) no longer matches
	// its edited-timeline position (0-2), as happens after a reorder/merge.
	segs := []segment.Segment{segment.MakeWord("w", 0, 2, 1, 10, 12, true)}
	c := project.Clip{ID: uuid.New().String(), Order: 0, Status: project.ClipActive, CreatedAt: now, ModifiedAt: now, Segments: segs, EndTime: 2}
	pd := project.ProjectData{Clips: project.Clips{Items: []project.Clip{c}}}

	list := Project(pd, 3)
	require.Len(t, list.Clips, 1)
	require.NotNil(t, list.Clips[0].OriginalStartSec)
	require.NotNil(t, list.Clips[0].OriginalEndSec)
	assert.InDelta(t, 10.0, *list.Clips[0].OriginalStartSec, 1e-6)
	assert.InDelta(t, 12.0, *list.Clips[0].OriginalEndSec, 1e-6)
}

func TestSpacerOnlyClipOmitsOriginalMapping(t *testing.T) {
	now := time.Now()
	segs := []segment.Segment{segment.MakeSpacer(0, 3, "")}
	c := project.Clip{
		ID: uuid.New().String(), Speaker: project.SilenceSpeaker, Order: 0, Status: project.ClipActive,
		CreatedAt: now, ModifiedAt: now, Segments: segs, EndTime: 3,
	}
	pd := project.ProjectData{Clips: project.Clips{Items: []project.Clip{c}}}

	list := Project(pd, 0)
	require.Len(t, list.Clips, 1)
	assert.Nil(t, list.Clips[0].OriginalStartSec)
	assert.Nil(t, list.Clips[0].OriginalEndSec)
	require.Len(t, list.Clips[0].Segments, 1)
	assert.Equal(t, KindSpacer, list.Clips[0].Segments[0].Kind)
}

func TestRevisionIsMonotoneAcrossPublications(t *testing.T) {
	c := clipOfDuration(0, project.ClipActive, 1)
	pd := project.ProjectData{Clips: project.Clips{Items: []project.Clip{c}}}

	first := Project(pd, 1)
	second := Project(pd, 2)
	assert.Less(t, first.Revision, second.Revision)
}

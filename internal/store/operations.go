// Package store implements the Project Store: the single authoritative
// owner of a project.ProjectData, which applies atomic, validated edit
// operations to it and publishes change events (§4.3).
package store

import (
	"time"

	"github.com/google/uuid"
)

// OperationType names one of the eight edit operations the store supports.
type OperationType string

const (
	OpSplitClip     OperationType = "splitClip"
	OpMergeClips    OperationType = "mergeClips"
	OpDeleteClip    OperationType = "deleteClip"
	OpReorderClips  OperationType = "reorderClips"
	OpInsertSpacer  OperationType = "insertSpacer"
	OpEditWord      OperationType = "editWord"
	OpChangeSpeaker OperationType = "changeSpeaker"
	OpRenameSpeaker OperationType = "renameSpeaker"
)

// SplitClipPayload partitions a clip's segments at a strictly interior
// index (0 < SegmentIndex < len(segments)).
type SplitClipPayload struct {
	ClipID       string `json:"clipId"`
	SegmentIndex int    `json:"segmentIndex"`
}

// MergeClipsPayload concatenates two or more clips, which must be
// contiguous by Order.
type MergeClipsPayload struct {
	ClipIDs []string `json:"clipIds"`
}

// DeleteClipPayload soft-deletes a clip.
type DeleteClipPayload struct {
	ClipID string `json:"clipId"`
}

// ReorderClipsPayload splices a clip to a new position.
type ReorderClipsPayload struct {
	ClipID   string `json:"clipId"`
	NewOrder int    `json:"newOrder"`
}

// InsertSpacerPayload inserts a Spacer of Duration seconds at SegmentIndex.
type InsertSpacerPayload struct {
	ClipID       string  `json:"clipId"`
	SegmentIndex int     `json:"segmentIndex"`
	Duration     float64 `json:"duration"`
}

// EditWordPayload replaces a Word's text only.
type EditWordPayload struct {
	ClipID       string `json:"clipId"`
	SegmentIndex int    `json:"segmentIndex"`
	NewText      string `json:"newText"`
}

// ChangeSpeakerPayload updates a single clip's speaker tag.
type ChangeSpeakerPayload struct {
	ClipID     string `json:"clipId"`
	NewSpeaker string `json:"newSpeaker"`
}

// RenameSpeakerPayload renames a speaker identifier everywhere it is
// referenced: the speaker map key, the default speaker, and every clip
// tagged with it.
type RenameSpeakerPayload struct {
	OldName string `json:"oldName"`
	NewName string `json:"newName"`
}

// EditOperation is a single, atomic edit request: a stable id, a
// timestamp, a type tag, and exactly one populated typed payload.
type EditOperation struct {
	ID        string        `json:"id"`
	Timestamp time.Time     `json:"timestamp"`
	Type      OperationType `json:"type"`

	SplitClip     *SplitClipPayload     `json:"splitClip,omitempty"`
	MergeClips    *MergeClipsPayload    `json:"mergeClips,omitempty"`
	DeleteClip    *DeleteClipPayload    `json:"deleteClip,omitempty"`
	ReorderClips  *ReorderClipsPayload  `json:"reorderClips,omitempty"`
	InsertSpacer  *InsertSpacerPayload  `json:"insertSpacer,omitempty"`
	EditWord      *EditWordPayload      `json:"editWord,omitempty"`
	ChangeSpeaker *ChangeSpeakerPayload `json:"changeSpeaker,omitempty"`
	RenameSpeaker *RenameSpeakerPayload `json:"renameSpeaker,omitempty"`
}

func newOp(t OperationType) EditOperation {
	return EditOperation{ID: uuid.New().String(), Timestamp: time.Now(), Type: t}
}

func NewSplitClip(clipID string, segmentIndex int) EditOperation {
	op := newOp(OpSplitClip)
	op.SplitClip = &SplitClipPayload{ClipID: clipID, SegmentIndex: segmentIndex}
	return op
}

func NewMergeClips(clipIDs []string) EditOperation {
	op := newOp(OpMergeClips)
	op.MergeClips = &MergeClipsPayload{ClipIDs: clipIDs}
	return op
}

func NewDeleteClip(clipID string) EditOperation {
	op := newOp(OpDeleteClip)
	op.DeleteClip = &DeleteClipPayload{ClipID: clipID}
	return op
}

func NewReorderClips(clipID string, newOrder int) EditOperation {
	op := newOp(OpReorderClips)
	op.ReorderClips = &ReorderClipsPayload{ClipID: clipID, NewOrder: newOrder}
	return op
}

func NewInsertSpacer(clipID string, segmentIndex int, duration float64) EditOperation {
	op := newOp(OpInsertSpacer)
	op.InsertSpacer = &InsertSpacerPayload{ClipID: clipID, SegmentIndex: segmentIndex, Duration: duration}
	return op
}

func NewEditWord(clipID string, segmentIndex int, newText string) EditOperation {
	op := newOp(OpEditWord)
	op.EditWord = &EditWordPayload{ClipID: clipID, SegmentIndex: segmentIndex, NewText: newText}
	return op
}

func NewChangeSpeaker(clipID, newSpeaker string) EditOperation {
	op := newOp(OpChangeSpeaker)
	op.ChangeSpeaker = &ChangeSpeakerPayload{ClipID: clipID, NewSpeaker: newSpeaker}
	return op
}

func NewRenameSpeaker(oldName, newName string) EditOperation {
	op := newOp(OpRenameSpeaker)
	op.RenameSpeaker = &RenameSpeakerPayload{OldName: oldName, NewName: newName}
	return op
}

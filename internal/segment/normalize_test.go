package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSmallOverlapTrimsPrevious(t *testing.T) {
	segs := []Segment{
		MakeWord("a", 0, 1.0, 1, 0, 0, false),
		MakeWord("b", 0.998, 2.0, 1, 0, 0, false), // -0.002s overlap
	}
	res := NormalizeForImport(segs)
	require.Len(t, res.Segments, 2)
	assert.Equal(t, 1, res.TrimmedCount)
	assert.Equal(t, 0.998, res.Segments[0].End)
	assert.Equal(t, 0.998, res.Segments[1].Start)
}

func TestNormalizeLargeOverlapShiftsCurrent(t *testing.T) {
	segs := []Segment{
		MakeWord("a", 0, 1.0, 1, 0, 0, false),
		MakeWord("b", 0.5, 2.0, 1, 0, 0, false), // -0.5s overlap
	}
	res := NormalizeForImport(segs)
	require.Len(t, res.Segments, 2)
	assert.Equal(t, 1, res.ShiftedCount)
	assert.Equal(t, 1.0, res.Segments[1].Start)
	assert.Equal(t, 2.0, res.Segments[1].End)
}

func TestNormalizeLargeOverlapClampsInvertedEnd(t *testing.T) {
	segs := []Segment{
		MakeWord("a", 0, 2.0, 1, 0, 0, false),
		MakeWord("b", 0.5, 1.5, 1, 0, 0, false), // -1.5s overlap, end would invert
	}
	res := NormalizeForImport(segs)
	assert.Equal(t, 1, res.ShiftedCount)
	// b's start is pinned to a's end (2.0s) and its end would invert below
	// that, so it clamps to zero duration and is then dropped as too short.
	assert.Equal(t, 1, res.RemovedCount)
	require.Len(t, res.Segments, 1)
}

func TestNormalizeDropsNearZeroSegments(t *testing.T) {
	segs := []Segment{
		MakeWord("a", 0, 1.0, 1, 0, 0, false),
		MakeWord("b", 1.0, 1.0000001, 1, 0, 0, false),
		MakeWord("c", 1.0000001, 2.0, 1, 0, 0, false),
	}
	res := NormalizeForImport(segs)
	assert.Equal(t, 1, res.RemovedCount)
	assert.Len(t, res.Segments, 2)
}

func TestNormalizeIsIdempotent(t *testing.T) {
	segs := []Segment{
		MakeWord("a", 0, 1.0, 1, 0, 0, false),
		MakeWord("b", 0.998, 2.0, 1, 0, 0, false),
		MakeWord("c", 1.4, 3.0, 1, 0, 0, false),
	}
	once := NormalizeForImport(segs)
	twice := NormalizeForImport(once.Segments)
	assert.Equal(t, once.Segments, twice.Segments)
	assert.Equal(t, 0, twice.TrimmedCount)
	assert.Equal(t, 0, twice.ShiftedCount)
	assert.Equal(t, 0, twice.RemovedCount)
}

func TestValidateNormalizedCatchesNonMonotone(t *testing.T) {
	segs := []Segment{
		MakeWord("a", 0, 2.0, 1, 0, 0, false),
		MakeWord("b", 1.0, 3.0, 1, 0, 0, false),
	}
	// Force a non-monotone input without running it through normalization.
	res := ValidateNormalized(segs, 3.0)
	assert.False(t, res.Ok)
}

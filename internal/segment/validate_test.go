package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCompleteCoverage(t *testing.T) {
	segs := []Segment{
		MakeWord("a", 0, 1, 1, 0, 0, false),
		MakeSpacer(1, 2, ""),
		MakeWord("b", 2, 3, 1, 0, 0, false),
	}
	res := Validate(segs, 3, ValidateOptions{})
	assert.True(t, res.Ok)
	assert.Empty(t, res.Errors)
}

func TestValidateRejectsGapInSteadyState(t *testing.T) {
	segs := []Segment{
		MakeWord("a", 0, 1, 1, 0, 0, false),
		MakeWord("b", 1.5, 2, 1, 0, 0, false),
	}
	res := Validate(segs, 2, ValidateOptions{})
	assert.False(t, res.Ok)
}

func TestValidateDowngradesSmallGapToWarningInImportMode(t *testing.T) {
	segs := []Segment{
		MakeWord("a", 0, 1, 1, 0, 0, false),
		MakeWord("b", 1.05, 2, 1, 0, 0, false),
	}
	res := Validate(segs, 2, ValidateOptions{IsImport: true, SpacerThreshold: 1.0})
	assert.True(t, res.Ok)
	assert.NotEmpty(t, res.Warnings)
}

func TestValidateRejectsLargeGapEvenInImportMode(t *testing.T) {
	segs := []Segment{
		MakeWord("a", 0, 1, 1, 0, 0, false),
		MakeWord("b", 3.0, 4, 1, 0, 0, false),
	}
	res := Validate(segs, 4, ValidateOptions{IsImport: true, SpacerThreshold: 1.0})
	assert.False(t, res.Ok)
}

func TestValidateRejectsOverlap(t *testing.T) {
	segs := []Segment{
		MakeWord("a", 0, 1.5, 1, 0, 0, false),
		MakeWord("b", 1.0, 2, 1, 0, 0, false),
	}
	res := Validate(segs, 2, ValidateOptions{})
	assert.False(t, res.Ok)
}

func TestValidateRejectsMissingLeadOrTrailCoverage(t *testing.T) {
	segs := []Segment{MakeWord("a", 0.5, 1.5, 1, 0, 0, false)}
	res := Validate(segs, 2, ValidateOptions{})
	assert.False(t, res.Ok)
	assert.Len(t, res.Errors, 2)
}

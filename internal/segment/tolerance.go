package segment

import "math"

// Tolerances and default tunables for timing comparisons (§4.1, §8 of the
// spec). Floating point times are never compared with raw equality.
const (
	// EpsSteady is the equality tolerance once a project is no longer being
	// imported: invariant checks after Store operations use this.
	EpsSteady = 1e-3

	// DefaultSpacerThreshold is the gap size at/above which silence
	// materializes as an explicit Spacer rather than a Word extension.
	DefaultSpacerThreshold = 1.0

	// DefaultMaxClipDuration bounds how long a single transcribed clip may
	// run before the import scanner starts a new one.
	DefaultMaxClipDuration = 30.0

	// MinSegmentDuration is the shortest a segment may be after
	// normalization; anything smaller is dropped as noise.
	MinSegmentDuration = 1e-6

	// SmallOverlapThreshold is the largest negative gap normalization will
	// repair by trimming the previous segment rather than shifting the
	// current one forward.
	SmallOverlapThreshold = -0.005
)

// ImportEpsilon is the coverage tolerance used while importing, which is
// looser than steady-state equality but never looser than the spacer
// threshold itself.
func ImportEpsilon(spacerThreshold float64) float64 {
	if spacerThreshold < 0.1 {
		return spacerThreshold
	}
	return 0.1
}

// Approx reports whether a and b are equal within steady-state tolerance.
func Approx(a, b float64) bool {
	return math.Abs(a-b) <= EpsSteady
}

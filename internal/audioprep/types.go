// Package audioprep implements the audio preparation contract consumed by
// the import pipeline (§4.2, §6): resolving a source file, inspecting its
// WAV header, and re-encoding to the canonical format when necessary.
package audioprep

// Canonical WAV parameters: the only format the transport backend consumes.
const (
	CanonicalSampleRate = 48000
	CanonicalChannels   = 2
)

// CanonicalBitDepths is the allowed bit-depth set for a canonical WAV.
var CanonicalBitDepths = map[int]bool{16: true, 24: true, 32: true}

// Metadata is the resolved audio's technical description.
type Metadata struct {
	SampleRate  int     `json:"sampleRate"`
	Channels    int     `json:"channels"`
	BitDepth    int     `json:"bitDepth"`
	DurationSec float64 `json:"durationSec"`
}

// IsCanonical reports whether m satisfies the canonical WAV contract.
func (m Metadata) IsCanonical() bool {
	return m.SampleRate == CanonicalSampleRate && m.Channels == CanonicalChannels && CanonicalBitDepths[m.BitDepth]
}

// Prepared is the result of Prepare: the audio is guaranteed readable and
// canonical, or Prepare returned an error.
type Prepared struct {
	OriginalPath string
	ResolvedPath string
	Metadata     Metadata
	WasConverted bool
}

// Failure codes (§6).
const (
	ErrNoSourceAudioFound    = "NO_SOURCE_AUDIO_FOUND"
	ErrAudioValidationFailed = "AUDIO_VALIDATION_FAILED"
	ErrConverterUnavailable  = "CONVERTER_UNAVAILABLE"
)

package audioprep

import (
	"fmt"
	"os"

	"github.com/go-audio/wav"

	"github.com/askidmobile/transcriptcore/internal/project"
)

// Inspect opens path and reads its WAV header, returning the technical
// metadata needed to decide whether the file is already canonical. It does
// not decode sample data.
func Inspect(path string) (Metadata, error) {
	f, err := os.Open(path)
	if err != nil {
		return Metadata{}, project.ResourceError(ErrNoSourceAudioFound, fmt.Errorf("open %s: %w", path, err))
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	dec.ReadInfo()
	if !dec.IsValidFile() {
		return Metadata{}, project.ResourceError(ErrAudioValidationFailed, fmt.Errorf("%s is not a valid WAV file", path))
	}

	duration, err := dec.Duration()
	if err != nil {
		return Metadata{}, project.ResourceError(ErrAudioValidationFailed, fmt.Errorf("%s: reading duration: %w", path, err))
	}

	return Metadata{
		SampleRate:  int(dec.SampleRate),
		Channels:    int(dec.NumChans),
		BitDepth:    int(dec.BitDepth),
		DurationSec: duration.Seconds(),
	}, nil
}

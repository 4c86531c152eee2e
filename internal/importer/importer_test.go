package importer

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askidmobile/transcriptcore/internal/audioprep"
	"github.com/askidmobile/transcriptcore/internal/project"
	"github.com/askidmobile/transcriptcore/internal/segment"
)

func fixtureAudio() audioprep.Prepared {
	return audioprep.Prepared{
		ResolvedPath: "/tmp/audio.wav",
		Metadata:     audioprep.Metadata{SampleRate: 48000, Channels: 2, BitDepth: 16, DurationSec: 10},
	}
}

func TestImportDetectsMillisecondUnits(t *testing.T) {
	result := TranscriptionResult{
		Segments: []SegmentIn{{
			Start: 1.0, End: 1.5, Text: "hi", Speaker: "A",
			Words: []WordIn{{Start: 1000, End: 1500, Text: "hi", Confidence: 0.9, Speaker: "A"}},
		}},
	}
	pd, err := Import(result, AudioMeta{OriginalName: "a.wav"}, fixtureAudio(), Options{}, zerolog.Nop())
	require.NoError(t, err)
	require.Len(t, pd.Clips.Items, 1)
	w := pd.Clips.Items[0].Segments[0]
	assert.InDelta(t, 1.000, w.OriginalStart, 1e-6)
	assert.InDelta(t, 1.500, w.OriginalEnd, 1e-6)
}

func TestImportLargeGapBecomesSpacerClip(t *testing.T) {
	result := TranscriptionResult{
		Segments: []SegmentIn{{
			Start: 0, End: 4, Text: "x", Speaker: "A",
			Words: []WordIn{
				{Start: 0.0, End: 1.0, Text: "one", Confidence: 1, Speaker: "A"},
				{Start: 3.5, End: 4.0, Text: "two", Confidence: 1, Speaker: "A"},
			},
		}},
	}
	pd, err := Import(result, AudioMeta{OriginalName: "a.wav"}, fixtureAudio(), Options{SpacerThreshold: 1.0}, zerolog.Nop())
	require.NoError(t, err)
	require.Len(t, pd.Clips.Items, 3)

	assert.Equal(t, "A", pd.Clips.Items[0].Speaker)
	assert.Equal(t, project.SilenceSpeaker, pd.Clips.Items[1].Speaker)
	require.Len(t, pd.Clips.Items[1].Segments, 1)
	assert.True(t, pd.Clips.Items[1].Segments[0].IsSpacer())
	assert.InDelta(t, 2.5, pd.Clips.Items[1].Segments[0].Duration(), 1e-6)
	assert.Equal(t, "A", pd.Clips.Items[2].Speaker)
}

func TestImportSmallGapExtendsWordProportionally(t *testing.T) {
	result := TranscriptionResult{
		Segments: []SegmentIn{{
			Start: 0, End: 1, Text: "x", Speaker: "A",
			Words: []WordIn{
				{Start: 0.000, End: 0.500, Text: "one", Confidence: 1, Speaker: "A"},
				{Start: 0.600, End: 1.000, Text: "two", Confidence: 1, Speaker: "A"},
			},
		}},
	}
	pd, err := Import(result, AudioMeta{OriginalName: "a.wav"}, fixtureAudio(), Options{SpacerThreshold: 1.0}, zerolog.Nop())
	require.NoError(t, err)
	require.Len(t, pd.Clips.Items, 1)
	segs := pd.Clips.Items[0].Segments
	require.Len(t, segs, 2)
	assert.InDelta(t, 0.600, segs[0].End, 1e-6)
	assert.InDelta(t, 0.600, segs[0].OriginalEnd, 1e-6)
	assert.Equal(t, "two", segs[1].Text)
}

func TestImportRejectsEmptyResult(t *testing.T) {
	_, err := Import(TranscriptionResult{}, AudioMeta{OriginalName: "a.wav"}, fixtureAudio(), Options{}, zerolog.Nop())
	assert.Error(t, err)
}

func TestImportPassesThroughAudioExtraAndSpeakerSummaries(t *testing.T) {
	result := TranscriptionResult{
		Segments: []SegmentIn{{
			Start: 0, End: 1, Text: "x", Speaker: "A",
			Words: []WordIn{{Start: 0.0, End: 1.0, Text: "one", Confidence: 1, Speaker: "A"}},
		}},
		SpeakerSummaries: []SpeakerSummary{{SpeakerID: "A", TotalSec: 1.0, WordCount: 1}},
	}
	audioMeta := AudioMeta{OriginalName: "a.wav", Extra: map[string]string{"deviceId": "mic-1"}}
	pd, err := Import(result, audioMeta, fixtureAudio(), Options{}, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, "mic-1", pd.Project.Audio.Extra["deviceId"])
	require.Len(t, pd.Transcription.SpeakerSummaries, 1)
	assert.Equal(t, "A", pd.Transcription.SpeakerSummaries[0].SpeakerID)
	assert.Equal(t, 1, pd.Transcription.SpeakerSummaries[0].WordCount)
}

func TestImportCoverageIsComplete(t *testing.T) {
	result := TranscriptionResult{
		Segments: []SegmentIn{{
			Start: 0, End: 2, Text: "x", Speaker: "A",
			Words: []WordIn{
				{Start: 0.0, End: 1.0, Text: "one", Confidence: 1, Speaker: "A"},
				{Start: 1.0, End: 2.0, Text: "two", Confidence: 1, Speaker: "A"},
			},
		}},
	}
	pd, err := Import(result, AudioMeta{OriginalName: "a.wav"}, fixtureAudio(), Options{}, zerolog.Nop())
	require.NoError(t, err)
	for _, c := range pd.Clips.Items {
		vr := segment.Validate(c.Segments, c.Duration(), segment.ValidateOptions{})
		assert.True(t, vr.Ok, "%v", vr.Errors)
	}
}

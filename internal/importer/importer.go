package importer

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/askidmobile/transcriptcore/internal/audioprep"
	"github.com/askidmobile/transcriptcore/internal/project"
	"github.com/askidmobile/transcriptcore/internal/segment"
)

// Import converts an ASR TranscriptionResult plus already-prepared audio
// into a fully valid project.ProjectData at project.Version. No partial
// result is ever returned alongside an error (§4.2, §7).
func Import(result TranscriptionResult, audioMeta AudioMeta, audio audioprep.Prepared, opts Options, log zerolog.Logger) (project.ProjectData, error) {
	opts = opts.resolved()

	words := flatten(result)
	if len(words) == 0 {
		return project.ProjectData{}, project.ImportError("transcription result has no words", nil)
	}

	decision := normalizeUnits(words)
	log.Info().
		Bool("convertedMsToSec", decision.ConvertedMsToSec).
		Float64("medianWordDurationSec", decision.MedianDuration).
		Msg("import: detected timestamp unit")

	groups := groupWords(words, opts)

	clips := make([]project.Clip, 0, len(groups))
	now := time.Now()
	cumulative := 0.0
	order := 0
	var allWarnings []segment.Issue

	for _, g := range groups {
		var clip project.Clip
		if g.isSilence {
			clip = project.Clip{
				ID:        uuid.New().String(),
				Speaker:   project.SilenceSpeaker,
				Type:      project.ClipTranscribed,
				Status:    project.ClipActive,
				StartTime: cumulative,
				EndTime:   cumulative + g.silenceDuration,
				Order:     order,
				CreatedAt: now,
				ModifiedAt: now,
				Segments:  []segment.Segment{segment.MakeSpacer(0, g.silenceDuration, fmt.Sprintf("%.1fs", g.silenceDuration))},
			}
		} else {
			raw := buildClipSegments(g.words, opts.SpacerThreshold)
			norm := segment.NormalizeForImport(raw)
			if len(norm.Segments) == 0 {
				return project.ProjectData{}, project.ImportError("clip normalization removed every segment", map[string]any{"speaker": g.speaker})
			}
			duration := norm.Segments[len(norm.Segments)-1].End

			strict := segment.ValidateNormalized(norm.Segments, duration)
			if !strict.Ok {
				return project.ProjectData{}, project.ImportError("normalized clip failed strict validation", map[string]any{
					"speaker": g.speaker, "issues": strict.Errors,
				})
			}
			tolerant := segment.Validate(norm.Segments, duration, segment.ValidateOptions{IsImport: true, SpacerThreshold: opts.SpacerThreshold})
			if !tolerant.Ok {
				return project.ProjectData{}, project.ImportError("clip failed import validation", map[string]any{
					"speaker": g.speaker, "issues": tolerant.Errors,
				})
			}
			allWarnings = append(allWarnings, tolerant.Warnings...)

			clip = project.Clip{
				ID:         uuid.New().String(),
				Speaker:    g.speaker,
				Type:       project.ClipTranscribed,
				Status:     project.ClipActive,
				StartTime:  cumulative,
				EndTime:    cumulative + duration,
				Order:      order,
				CreatedAt:  now,
				ModifiedAt: now,
				Segments:   norm.Segments,
			}
		}

		clips = append(clips, clip)
		cumulative = clip.EndTime
		order++
	}

	for _, w := range allWarnings {
		log.Warn().Str("code", w.Code).Int("index", w.Index).Msg(w.Message)
	}

	speakerNames := map[string]string{}
	for id, name := range result.Speakers {
		speakerNames[id] = name
	}
	hasSilence := false
	for _, c := range clips {
		if c.Speaker == project.SilenceSpeaker {
			hasSilence = true
		}
	}
	if hasSilence {
		if _, ok := speakerNames[project.SilenceSpeaker]; !ok {
			speakerNames[project.SilenceSpeaker] = "Silence"
		}
	}
	defaultSpeaker := ""
	for _, c := range clips {
		if c.Speaker != project.SilenceSpeaker {
			defaultSpeaker = c.Speaker
			break
		}
	}

	rawSegments := make([]project.RawSegment, 0, len(result.Segments))
	for _, s := range result.Segments {
		rawSegments = append(rawSegments, project.RawSegment{Start: s.Start, End: s.End, Text: s.Text, Speaker: s.Speaker})
	}

	stats := computeStats(clips)

	pd := project.ProjectData{
		SchemaVersion: project.Version,
		Project: project.ProjectIdentity{
			ID:         uuid.New().String(),
			Name:       audioMeta.OriginalName,
			CreatedAt:  now,
			ModifiedAt: now,
			Language:   result.Language,
			Audio: project.AudioMetadata{
				OriginalName: audioMeta.OriginalName,
				Path:         audio.ResolvedPath,
				SampleRate:   audio.Metadata.SampleRate,
				Channels:     audio.Metadata.Channels,
				BitDepth:     audio.Metadata.BitDepth,
				DurationSec:  audio.Metadata.DurationSec,
				WasConverted: audio.WasConverted,
				Extra:        audioMeta.Extra,
			},
		},
		Transcription: project.Transcription{
			Status:           project.TranscriptionCompleted,
			Language:         result.Language,
			OriginalSegments: rawSegments,
			Stats:            stats,
			SpeakerSummaries: convertSpeakerSummaries(result.SpeakerSummaries),
		},
		Speakers: project.Speakers{
			Names:          speakerNames,
			DefaultSpeaker: defaultSpeaker,
		},
		Clips: project.Clips{
			Items: clips,
			Grouping: project.GroupingConfig{
				SpacerThreshold: opts.SpacerThreshold,
				MaxClipDuration: opts.MaxClipDuration,
			},
			Version: fmt.Sprintf("%d", now.UnixNano()),
		},
	}

	return pd, nil
}

func convertSpeakerSummaries(in []SpeakerSummary) []project.SpeakerSummary {
	if in == nil {
		return nil
	}
	out := make([]project.SpeakerSummary, len(in))
	for i, s := range in {
		out[i] = project.SpeakerSummary{SpeakerID: s.SpeakerID, TotalSec: s.TotalSec, WordCount: s.WordCount}
	}
	return out
}

func computeStats(clips []project.Clip) project.TranscriptionStats {
	var stats project.TranscriptionStats
	for _, c := range clips {
		for _, s := range c.Segments {
			switch s.Kind {
			case segment.KindWord:
				stats.WordCount++
				stats.TotalSpeech += s.Duration()
			case segment.KindSpacer:
				stats.SpacerCount++
				stats.TotalSilence += s.Duration()
			}
		}
	}
	return stats
}

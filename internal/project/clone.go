package project

import "github.com/askidmobile/transcriptcore/internal/segment"

// Clone returns a deep copy of c; Segments and Style are independent slices
// and maps from the original.
func (c Clip) Clone() Clip {
	out := c
	out.Segments = append([]segment.Segment(nil), c.Segments...)
	if c.Style != nil {
		out.Style = make(map[string]string, len(c.Style))
		for k, v := range c.Style {
			out.Style[k] = v
		}
	}
	return out
}

// Clone returns a deep copy of the project, suitable for a candidate
// mutation or an immutable snapshot handed to a reader (§4.3 snapshot()).
func (p ProjectData) Clone() ProjectData {
	out := p

	out.Clips.Items = make([]Clip, len(p.Clips.Items))
	for i, c := range p.Clips.Items {
		out.Clips.Items[i] = c.Clone()
	}

	out.Transcription.OriginalSegments = append([]RawSegment(nil), p.Transcription.OriginalSegments...)
	out.Transcription.SpeakerSummaries = append([]SpeakerSummary(nil), p.Transcription.SpeakerSummaries...)

	if p.Project.Audio.Extra != nil {
		out.Project.Audio.Extra = make(map[string]string, len(p.Project.Audio.Extra))
		for k, v := range p.Project.Audio.Extra {
			out.Project.Audio.Extra[k] = v
		}
	}

	out.Speakers.Names = make(map[string]string, len(p.Speakers.Names))
	for k, v := range p.Speakers.Names {
		out.Speakers.Names[k] = v
	}

	return out
}

package transport

import (
	"encoding/json"
	"fmt"

	"github.com/askidmobile/transcriptcore/internal/project"
)

// EventType names one of the events the transport may send back.
type EventType string

const (
	EvtLoaded     EventType = "loaded"
	EvtState      EventType = "state"
	EvtPosition   EventType = "position"
	EvtEdlApplied EventType = "edlApplied"
	EvtEnded      EventType = "ended"
	EvtError      EventType = "error"
)

// Event is a single inbound message from the transport.
type Event struct {
	Type EventType `json:"type"`
	ID   string    `json:"id,omitempty"`

	DurationSec float64 `json:"durationSec,omitempty"`
	SampleRate  int     `json:"sampleRate,omitempty"`
	Channels    int     `json:"channels,omitempty"`

	Playing bool `json:"playing,omitempty"`

	EditedSec   float64 `json:"editedSec,omitempty"`
	OriginalSec float64 `json:"originalSec,omitempty"`
	Revision    *int    `json:"revision,omitempty"`

	WordCount     *int `json:"wordCount,omitempty"`
	SpacerCount   *int `json:"spacerCount,omitempty"`
	TotalSegments *int `json:"totalSegments,omitempty"`

	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

// validate applies the wire protocol's type guards (§6): an event must name
// a recognized Type and, unless it is ended or error, carry an id. No other
// field is required; fields that are present are type-checked only by JSON
// decoding.
func (e Event) validate() error {
	switch e.Type {
	case EvtLoaded, EvtState, EvtPosition, EvtEdlApplied, EvtEnded, EvtError:
		// recognized
	default:
		return project.ProtocolError(fmt.Sprintf("unknown event type %q", e.Type))
	}
	if e.Type != EvtError && e.Type != EvtEnded && e.ID == "" {
		return project.ProtocolError("missing id")
	}
	return nil
}

// UnmarshalEvent decodes and validates a single wire line. Callers that get
// an error should log and drop the line rather than propagate it (§7
// Protocol errors) — the core never mutates state on a malformed event.
func UnmarshalEvent(line []byte) (Event, error) {
	var e Event
	if err := json.Unmarshal(line, &e); err != nil {
		return Event{}, project.ProtocolError(fmt.Sprintf("invalid json: %v", err))
	}
	if err := e.validate(); err != nil {
		return Event{}, err
	}
	return e, nil
}

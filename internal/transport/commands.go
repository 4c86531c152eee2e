// Package transport implements the core's client side of the EDL wire
// protocol (§6): line-delimited JSON commands sent to a playback transport
// backend, and events received back from it, carried over a gorilla
// websocket connection.
package transport

import "github.com/askidmobile/transcriptcore/internal/edl"

// CommandType names one of the commands the core may send to the transport.
type CommandType string

const (
	CmdLoad              CommandType = "load"
	CmdUpdateEdl         CommandType = "updateEdl"
	CmdUpdateEdlFromFile CommandType = "updateEdlFromFile"
	CmdPlay              CommandType = "play"
	CmdPause             CommandType = "pause"
	CmdStop              CommandType = "stop"
	CmdQueryState        CommandType = "queryState"
	CmdSeek              CommandType = "seek"
	CmdSetRate           CommandType = "setRate"
	CmdSetTimeStretch    CommandType = "setTimeStretch"
	CmdSetVolume         CommandType = "setVolume"
)

// Command is a single outbound message. Exactly the fields relevant to Type
// are populated; json:",omitempty" keeps the wire payload minimal.
type Command struct {
	Type     CommandType `json:"type"`
	ID       string      `json:"id"`
	Path     string      `json:"path,omitempty"`
	Revision int         `json:"revision,omitempty"`
	Clips    []edl.Clip  `json:"clips,omitempty"`
	TimeSec  float64     `json:"timeSec,omitempty"`
	Rate     float64     `json:"rate,omitempty"`
	Ratio    float64     `json:"ratio,omitempty"`
	Value    float64     `json:"value,omitempty"`
}

// Load asks the transport to open the canonical audio at path.
func Load(id, path string) Command {
	return Command{Type: CmdLoad, ID: id, Path: path}
}

// UpdateEdl publishes a freshly projected EDL inline.
func UpdateEdl(id string, revision int, clips []edl.Clip) Command {
	return Command{Type: CmdUpdateEdl, ID: id, Revision: revision, Clips: clips}
}

// UpdateEdlFromFile publishes an EDL too large to inline, by path.
func UpdateEdlFromFile(id string, revision int, path string) Command {
	return Command{Type: CmdUpdateEdlFromFile, ID: id, Revision: revision, Path: path}
}

func Play(id string) Command       { return Command{Type: CmdPlay, ID: id} }
func Pause(id string) Command      { return Command{Type: CmdPause, ID: id} }
func Stop(id string) Command       { return Command{Type: CmdStop, ID: id} }
func QueryState(id string) Command { return Command{Type: CmdQueryState, ID: id} }

// Seek moves playback to timeSec on the edited timeline.
func Seek(id string, timeSec float64) Command {
	return Command{Type: CmdSeek, ID: id, TimeSec: timeSec}
}

// SetRate adjusts pitch and speed together.
func SetRate(id string, rate float64) Command {
	return Command{Type: CmdSetRate, ID: id, Rate: rate}
}

// SetTimeStretch adjusts speed only, pitch held constant.
func SetTimeStretch(id string, ratio float64) Command {
	return Command{Type: CmdSetTimeStretch, ID: id, Ratio: ratio}
}

// SetVolume sets output volume in [0,1].
func SetVolume(id string, value float64) Command {
	return Command{Type: CmdSetVolume, ID: id, Value: value}
}

package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/askidmobile/transcriptcore/internal/project"
	"github.com/askidmobile/transcriptcore/internal/segment"
)

// DefaultHistoryCapacity is the bounded history log size (§3 Lifecycle).
const DefaultHistoryCapacity = 100

// Store is the single authoritative owner of a project.ProjectData. All
// mutation flows through Apply; callers observe state via Subscribe and
// take reads via Snapshot. The store is single-threaded and cooperative
// (§5): mu serializes Apply/Load against concurrent Snapshot/History reads.
type Store struct {
	mu sync.Mutex

	state   project.ProjectData
	loaded  bool
	path    string
	hasPath bool

	history  []EditOperation
	histCap  int

	bus *bus
	log zerolog.Logger
}

// New constructs an empty Store. Call Load before Apply.
func New(historyCapacity int, log zerolog.Logger) *Store {
	if historyCapacity <= 0 {
		historyCapacity = DefaultHistoryCapacity
	}
	return &Store{histCap: historyCapacity, bus: newBus(), log: log}
}

// Subscribe registers for future events; see bus.Subscribe.
func (s *Store) Subscribe() (int, <-chan Event) { return s.bus.Subscribe() }

// Unsubscribe stops delivery to a previously subscribed id.
func (s *Store) Unsubscribe(id int) { s.bus.Unsubscribe(id) }

// Load validates pd and, on success, replaces the store's state atomically.
// Import-tolerant validation is used when the project looks like the
// output of a recent import — transcription status "completed" or schema
// version "2.0" — otherwise steady-state tolerance applies (§4.3).
func (s *Store) Load(pd project.ProjectData) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	lenient := pd.Transcription.Status == project.TranscriptionCompleted || pd.SchemaVersion == project.Version
	clipOpts := segment.ValidateOptions{}
	if lenient {
		clipOpts = segment.ValidateOptions{IsImport: true, SpacerThreshold: pd.Clips.Grouping.SpacerThreshold}
	}
	result := project.CheckInvariantsTolerant(pd, clipOpts)
	if !result.Ok {
		err := project.ValidationError(result, "load")
		s.bus.publish(Event{Type: EventProjectError, Timestamp: time.Now(), Err: err})
		return err
	}

	s.state = pd.Clone()
	s.loaded = true
	s.history = nil
	s.bus.publish(Event{Type: EventProjectUpdated, Timestamp: time.Now(), Project: s.state.Clone()})
	s.log.Info().Str("projectId", pd.Project.ID).Int("clips", len(pd.Clips.Items)).Msg("store: project loaded")
	return nil
}

// Snapshot returns a deep, immutable copy of the current state.
func (s *Store) Snapshot() (project.ProjectData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return project.ProjectData{}, fmt.Errorf("store: no project loaded")
	}
	return s.state.Clone(), nil
}

// Apply executes op against the current state on a candidate copy,
// validates all invariants, and only on success promotes the candidate to
// live state (§4.3, P1). On failure the prior state is untouched and
// operation:failed is published with the reason.
func (s *Store) Apply(op EditOperation) (project.ProjectData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		err := fmt.Errorf("store: no project loaded")
		s.bus.publish(Event{Type: EventOperationFailed, Timestamp: time.Now(), Operation: op, Err: err})
		return project.ProjectData{}, err
	}

	candidate, err := applyOperation(s.state, op)
	if err == nil {
		if vr := project.CheckInvariants(candidate); !vr.Ok {
			err = project.ValidationError(vr, string(op.Type))
		}
	}
	if err != nil {
		opErr := &project.OperationError{OperationID: op.ID, Err: err}
		s.bus.publish(Event{Type: EventOperationFailed, Timestamp: time.Now(), Operation: op, Err: opErr})
		s.log.Warn().Str("op", string(op.Type)).Err(err).Msg("store: operation rejected")
		return project.ProjectData{}, opErr
	}

	s.state = candidate
	s.recordHistory(op)

	s.bus.publish(Event{Type: EventOperationOK, Timestamp: time.Now(), Operation: op})
	snap := s.state.Clone()
	s.bus.publish(Event{Type: EventProjectUpdated, Timestamp: time.Now(), Project: snap})
	s.log.Debug().Str("op", string(op.Type)).Str("opId", op.ID).Msg("store: operation applied")
	return snap, nil
}

func (s *Store) recordHistory(op EditOperation) {
	s.history = append(s.history, op)
	if over := len(s.history) - s.histCap; over > 0 {
		s.history = s.history[over:]
	}
}

// History returns the bounded, FIFO-evicted operation log.
func (s *Store) History() []EditOperation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]EditOperation(nil), s.history...)
}

// SetProjectPath records where the current project was loaded from / should
// be saved to. An empty path clears it (in-memory/unsaved project).
func (s *Store) SetProjectPath(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.path = path
	s.hasPath = path != ""
}

// CurrentProjectPath returns the current path and whether one is set.
func (s *Store) CurrentProjectPath() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.path, s.hasPath
}

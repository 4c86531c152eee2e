package store

import (
	"sync"
	"time"

	"github.com/askidmobile/transcriptcore/internal/project"
)

// EventType names one of the four events the store publishes (§4.3).
type EventType string

const (
	EventProjectUpdated  EventType = "project:updated"
	EventProjectError    EventType = "project:error"
	EventOperationOK     EventType = "operation:applied"
	EventOperationFailed EventType = "operation:failed"
)

// Event is published to every subscriber in the order operations are
// successfully applied (§5). Only the fields relevant to Type are set.
type Event struct {
	Type      EventType
	Timestamp time.Time
	Project   project.ProjectData
	Operation EditOperation
	Err       error
}

// bus is a minimal channel-based publish/subscribe surface: no process-wide
// statics, just a value a Store owns and hands subscribers a handle to.
type bus struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]chan Event
}

func newBus() *bus {
	return &bus{subs: make(map[int]chan Event)}
}

// Subscribe returns a buffered channel of future events and an id to later
// Unsubscribe with. The channel is closed on Unsubscribe.
func (b *bus) Subscribe() (int, <-chan Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.nextID
	b.nextID++
	ch := make(chan Event, 32)
	b.subs[id] = ch
	return id, ch
}

func (b *bus) Unsubscribe(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if ch, ok := b.subs[id]; ok {
		close(ch)
		delete(b.subs, id)
	}
}

// publish is non-blocking per subscriber: a slow or abandoned subscriber
// drops events rather than stalling the store's single-threaded apply loop.
func (b *bus) publish(ev Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

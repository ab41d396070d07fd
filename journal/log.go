package journal

import (
	"slices"
	"sync"

	"github.com/google/uuid"
)

// Log holds an ordered sequence of recorded entries. Implementations must be
// safe for concurrent use.
type Log interface {
	// ID returns the unique log identifier.
	ID() string
	// Append adds an entry to the end of the log.
	Append(entry Entry)
	// Entries returns a defensive copy of the recorded sequence.
	Entries() []Entry
	// Clear resets the log.
	Clear()
}

type memoryLog struct {
	id      string
	entries []Entry
	mu      sync.RWMutex
}

// NewMemoryLog creates a Log backed by an in-memory slice, assigned a unique
// UUIDv7 identifier.
func NewMemoryLog() Log {
	return &memoryLog{
		id: uuid.Must(uuid.NewV7()).String(),
	}
}

func (l *memoryLog) ID() string {
	return l.id
}

func (l *memoryLog) Append(entry Entry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, entry)
}

func (l *memoryLog) Entries() []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	copied := make([]Entry, len(l.entries))
	for i, e := range l.entries {
		copied[i] = e
		copied[i].Payload = slices.Clone(e.Payload)
	}
	return copied
}

func (l *memoryLog) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = nil
}

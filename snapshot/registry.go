package snapshot

import (
	"fmt"
	"sync"
)

// Opener constructs a Store for a configured location. Backends ignoring the
// location (e.g. memory) may discard it.
type Opener func(path string) Store

var (
	openers = map[string]Opener{
		"file":   NewFileStore,
		"memory": func(string) Store { return NewMemoryStore() },
	}
	mutex sync.RWMutex
)

// GetOpener returns a registered backend by name. "file" and "memory" are
// registered out of the box.
func GetOpener(name string) (Opener, error) {
	mutex.RLock()
	defer mutex.RUnlock()

	opener, exists := openers[name]
	if !exists {
		return nil, fmt.Errorf("unknown snapshot backend: %s", name)
	}
	return opener, nil
}

// RegisterOpener adds a named backend. Call before configuration resolves
// backend names.
func RegisterOpener(name string, opener Opener) {
	mutex.Lock()
	defer mutex.Unlock()

	openers[name] = opener
}

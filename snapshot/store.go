// Package snapshot persists container state from outside the container: a
// Persistor observes the store after each notification and saves an encoded
// snapshot, and Preload reads one back to seed construction. The container
// itself performs no I/O.
package snapshot

import "context"

// Store reads and writes one opaque snapshot. Implementations are stateless
// between calls and must be safe for concurrent use.
type Store interface {
	// Load returns the stored snapshot, or ErrNotFound when none exists.
	Load(ctx context.Context) ([]byte, error)
	// Save persists the snapshot, replacing any previous one.
	Save(ctx context.Context, data []byte) error
	// Delete removes the snapshot. Deleting a missing snapshot is not an error.
	Delete(ctx context.Context) error
}

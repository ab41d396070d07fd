package journal

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/statekeep/statekeep/store"
)

// Decoder turns a recorded payload back into the application's concrete
// action value for that kind.
type Decoder func(payload json.RawMessage) (store.Action, error)

type codec struct {
	decoders map[store.Kind]Decoder
	mu       sync.RWMutex
}

var registry = &codec{
	decoders: make(map[store.Kind]Decoder),
}

// RegisterKind adds a decoder for one action kind to the global codec.
// Returns ErrAlreadyRegistered if the kind already has a decoder; use
// ReplaceKind to swap one out. Thread-safe.
func RegisterKind(kind store.Kind, decode Decoder) error {
	if kind == "" {
		return ErrEmptyKind
	}

	registry.mu.Lock()
	defer registry.mu.Unlock()

	if _, exists := registry.decoders[kind]; exists {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, kind)
	}

	registry.decoders[kind] = decode
	return nil
}

// ReplaceKind swaps the decoder for an already-registered kind. Returns
// ErrUnknownKind when nothing is registered under it.
func ReplaceKind(kind store.Kind, decode Decoder) error {
	if kind == "" {
		return ErrEmptyKind
	}

	registry.mu.Lock()
	defer registry.mu.Unlock()

	if _, exists := registry.decoders[kind]; !exists {
		return fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}

	registry.decoders[kind] = decode
	return nil
}

// RegisterKindOf registers a decoder that unmarshals the payload into A.
// The usual way to wire a kind:
//
//	journal.RegisterKindOf[Incremented]("incremented")
func RegisterKindOf[A store.Action](kind store.Kind) error {
	return RegisterKind(kind, func(payload json.RawMessage) (store.Action, error) {
		var a A
		if len(payload) > 0 {
			if err := json.Unmarshal(payload, &a); err != nil {
				return nil, err
			}
		}
		return a, nil
	})
}

// Decode turns a recorded entry back into a typed action.
func Decode(entry Entry) (store.Action, error) {
	registry.mu.RLock()
	decode, exists := registry.decoders[entry.Kind]
	registry.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, entry.Kind)
	}
	return decode(entry.Payload)
}

package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/statekeep/statekeep/observability"
	"github.com/statekeep/statekeep/store"
)

const (
	EventSave      observability.EventType = "snapshot.save"
	EventSaveError observability.EventType = "snapshot.save.error"
	EventLoad      observability.EventType = "snapshot.load"
)

// Persistor saves container state through a Store after every notification.
// It is an external observer per the container's contract: it subscribes
// like any listener and pulls state through GetState.
type Persistor[S any] struct {
	backend  Store
	marshal  func(S) ([]byte, error)
	observer observability.Observer
}

// PersistorOption configures a Persistor.
type PersistorOption[S any] func(*Persistor[S])

// WithMarshal overrides the default JSON encoding of state snapshots.
func WithMarshal[S any](marshal func(S) ([]byte, error)) PersistorOption[S] {
	return func(p *Persistor[S]) { p.marshal = marshal }
}

// WithObserver overrides the default NoopObserver.
func WithObserver[S any](observer observability.Observer) PersistorOption[S] {
	return func(p *Persistor[S]) { p.observer = observer }
}

// NewPersistor creates a Persistor writing through backend.
func NewPersistor[S any](backend Store, opts ...PersistorOption[S]) *Persistor[S] {
	p := &Persistor[S]{
		backend:  backend,
		marshal:  func(s S) ([]byte, error) { return json.Marshal(s) },
		observer: observability.NoopObserver{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Attach subscribes the persistor to st. Every notification marshals the
// current state and saves it. Save failures cannot surface through the
// listener signature, so they are reported as error events.
func (p *Persistor[S]) Attach(ctx context.Context, st *store.Store[S]) store.Unsubscribe {
	return st.Subscribe(func() {
		data, err := p.marshal(st.GetState())
		if err == nil {
			err = p.backend.Save(ctx, data)
		}

		if err != nil {
			p.observer.OnEvent(ctx, observability.Event{
				Type:      EventSaveError,
				Level:     observability.LevelError,
				Timestamp: time.Now(),
				Source:    "snapshot.persistor",
				Data:      map[string]any{"store_id": st.ID(), "error": err.Error()},
			})
			return
		}

		p.observer.OnEvent(ctx, observability.Event{
			Type:      EventSave,
			Level:     observability.LevelVerbose,
			Timestamp: time.Now(),
			Source:    "snapshot.persistor",
			Data:      map[string]any{"store_id": st.ID(), "bytes": len(data)},
		})
	})
}

// Preload reads a snapshot back into a state value for construction via
// store.WithPreloadedState. Returns found=false when no snapshot exists.
func Preload[S any](ctx context.Context, backend Store, unmarshal func([]byte) (S, error)) (state S, found bool, err error) {
	var zero S

	data, err := backend.Load(ctx)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return zero, false, nil
		}
		return zero, false, err
	}

	state, err = unmarshal(data)
	if err != nil {
		return zero, false, fmt.Errorf("%w: %v", ErrLoadFailed, err)
	}
	return state, true, nil
}

// PreloadJSON is Preload with JSON decoding into S.
func PreloadJSON[S any](ctx context.Context, backend Store) (S, bool, error) {
	return Preload(ctx, backend, func(data []byte) (S, error) {
		var s S
		err := json.Unmarshal(data, &s)
		return s, err
	})
}

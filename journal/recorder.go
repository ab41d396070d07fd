package journal

import (
	"context"
	"encoding/json"
	"time"

	"github.com/statekeep/statekeep/observability"
	"github.com/statekeep/statekeep/store"
)

const (
	EventRecord observability.EventType = "journal.record"
	EventSkip   observability.EventType = "journal.skip"
)

type recorder[S any] struct {
	log      Log
	observer observability.Observer
}

// RecorderOption configures a recorder.
type RecorderOption[S any] func(*recorder[S])

// WithObserver overrides the default NoopObserver.
func WithObserver[S any](observer observability.Observer) RecorderOption[S] {
	return func(r *recorder[S]) { r.observer = observer }
}

// NewRecorder creates an interceptor that appends every action reaching it
// to log. Place it last in the chain so it records exactly what the reducer
// saw: actions consumed or transformed upstream never appear, transformed
// ones appear in final form. Reserved lifecycle kinds and actions that fail
// to marshal are skipped, not errors.
func NewRecorder[S any](log Log, opts ...RecorderOption[S]) store.Interceptor[S] {
	r := &recorder[S]{
		log:      log,
		observer: observability.NoopObserver{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *recorder[S]) Intercept(c *store.Chain[S], action store.Action) (store.Action, error) {
	result, err := c.Proceed(action)
	if err != nil {
		return result, err
	}

	kind := action.Kind()
	if kind == store.KindInit || kind == store.KindReplace {
		return result, nil
	}

	payload, merr := json.Marshal(action)
	if merr != nil {
		r.observer.OnEvent(context.Background(), observability.Event{
			Type:      EventSkip,
			Level:     observability.LevelWarning,
			Timestamp: time.Now(),
			Source:    "journal.recorder",
			Data:      map[string]any{"kind": string(kind), "error": merr.Error()},
		})
		return result, nil
	}

	r.log.Append(Entry{Kind: kind, Payload: payload, At: time.Now()})

	r.observer.OnEvent(context.Background(), observability.Event{
		Type:      EventRecord,
		Level:     observability.LevelVerbose,
		Timestamp: time.Now(),
		Source:    "journal.recorder",
		Data:      map[string]any{"log_id": r.log.ID(), "kind": string(kind)},
	})

	return result, nil
}

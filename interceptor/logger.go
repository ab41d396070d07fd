package interceptor

import (
	"context"
	"time"

	"github.com/statekeep/statekeep/observability"
	"github.com/statekeep/statekeep/store"
)

const (
	EventDispatchStart    observability.EventType = "dispatch.start"
	EventDispatchComplete observability.EventType = "dispatch.complete"
	EventDispatchError    observability.EventType = "dispatch.error"
)

type logger[S any] struct {
	observer observability.Observer
	source   string
}

// NewLogger creates an interceptor that emits an event before and after each
// dispatch passing through it, with the action kind and elapsed time. The
// source string distinguishes multiple loggers in one chain.
func NewLogger[S any](observer observability.Observer, source string) store.Interceptor[S] {
	if observer == nil {
		observer = observability.NoopObserver{}
	}
	if source == "" {
		source = "interceptor.logger"
	}
	return &logger[S]{observer: observer, source: source}
}

func (l *logger[S]) Intercept(c *store.Chain[S], action store.Action) (store.Action, error) {
	ctx := context.Background()

	l.observer.OnEvent(ctx, observability.Event{
		Type:      EventDispatchStart,
		Level:     observability.LevelVerbose,
		Timestamp: time.Now(),
		Source:    l.source,
		Data:      map[string]any{"kind": string(action.Kind())},
	})

	start := time.Now()
	result, err := c.Proceed(action)
	elapsed := time.Since(start)

	if err != nil {
		l.observer.OnEvent(ctx, observability.Event{
			Type:      EventDispatchError,
			Level:     observability.LevelError,
			Timestamp: time.Now(),
			Source:    l.source,
			Data: map[string]any{
				"kind":  string(action.Kind()),
				"error": err.Error(),
			},
		})
		return result, err
	}

	l.observer.OnEvent(ctx, observability.Event{
		Type:      EventDispatchComplete,
		Level:     observability.LevelVerbose,
		Timestamp: time.Now(),
		Source:    l.source,
		Data: map[string]any{
			"kind":        string(action.Kind()),
			"duration_ms": elapsed.Milliseconds(),
		},
	})

	return result, nil
}

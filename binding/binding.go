// Package binding connects a container to the layer consuming it: a single
// scope exposing the store downward (context.Context), a read primitive that
// re-fires only when a derived value actually changes, and write primitives
// exposing dispatch directly.
package binding

import (
	"context"

	"github.com/statekeep/statekeep/core/identity"
	"github.com/statekeep/statekeep/selector"
	"github.com/statekeep/statekeep/store"
)

type ctxKey[S any] struct{}

// NewContext returns a context carrying st, scoping the container to
// everything derived from ctx. One store per state type per context.
func NewContext[S any](ctx context.Context, st *store.Store[S]) context.Context {
	return context.WithValue(ctx, ctxKey[S]{}, st)
}

// FromContext retrieves the store placed by NewContext.
func FromContext[S any](ctx context.Context) (*store.Store[S], bool) {
	st, ok := ctx.Value(ctxKey[S]{}).(*store.Store[S])
	return st, ok
}

// Observe subscribes to st and invokes onChange with the new derived value
// whenever sel's result differs by identity from the previous notification.
// The value at subscription time is the baseline; onChange does not fire for
// it. Returns the unsubscribe handle.
func Observe[S, R any](st *store.Store[S], sel selector.Selector[S, R], onChange func(value R)) store.Unsubscribe {
	return ObserveEqual(st, sel, func(a, b R) bool {
		return identity.Same(a, b)
	}, onChange)
}

// ObserveEqual is Observe with a caller-supplied equality on the derived
// value.
func ObserveEqual[S, R any](st *store.Store[S], sel selector.Selector[S, R], equals func(a, b R) bool, onChange func(value R)) store.Unsubscribe {
	last := sel(st.GetState())
	return st.Subscribe(func() {
		next := sel(st.GetState())
		if equals(last, next) {
			return
		}
		last = next
		onChange(next)
	})
}

// Dispatcher exposes the store's dispatch operation as a plain function.
func Dispatcher[S any](st *store.Store[S]) func(action store.Action) (store.Action, error) {
	return st.Dispatch
}

// Bind wraps a no-payload action constructor so calling the result
// dispatches.
func Bind[S any](st *store.Store[S], creator func() store.Action) func() (store.Action, error) {
	return func() (store.Action, error) {
		return st.Dispatch(creator())
	}
}

// BindCreator wraps a payload-taking action constructor so calling the
// result dispatches.
func BindCreator[S, T any](st *store.Store[S], creator func(payload T) store.Action) func(payload T) (store.Action, error) {
	return func(payload T) (store.Action, error) {
		return st.Dispatch(creator(payload))
	}
}

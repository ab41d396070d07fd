// Package interceptor provides ready-made dispatch interceptors: deferred
// computations (thunks) and observer-backed dispatch logging. Application
// interceptors implement store.Interceptor the same way these do.
package interceptor

import "github.com/statekeep/statekeep/store"

// KindThunk marks a deferred computation on the dispatch path. Thunks never
// reach a reducer; the thunk interceptor consumes them.
const KindThunk store.Kind = "@statekeep/thunk"

// Env is the container access handed to a running thunk. Dispatch re-enters
// the pipeline from the outermost interceptor; State reads current state.
type Env[S any] struct {
	Dispatch func(action store.Action) (store.Action, error)
	State    func() S
}

// Thunk is a deferred computation dispatched in place of a plain action. The
// by-convention escape hatch for side effects and asynchrony: a thunk may
// dispatch zero or more real actions, immediately or later, and its return
// value becomes the Dispatch return value.
type Thunk[S any] func(env Env[S]) (store.Action, error)

// Kind implements store.Action so thunks can travel the dispatch path.
func (Thunk[S]) Kind() store.Kind { return KindThunk }

type thunkInterceptor[S any] struct{}

// NewThunk creates the interceptor that runs Thunk values. Place it early in
// the chain so thunks are consumed before interceptors that assume plain
// serializable actions.
func NewThunk[S any]() store.Interceptor[S] {
	return thunkInterceptor[S]{}
}

func (thunkInterceptor[S]) Intercept(c *store.Chain[S], action store.Action) (store.Action, error) {
	if t, ok := action.(Thunk[S]); ok {
		return t(Env[S]{Dispatch: c.Dispatch, State: c.State})
	}
	return c.Proceed(action)
}

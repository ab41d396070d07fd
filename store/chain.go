package store

// Interceptor sits on the dispatch path between the public Dispatch call and
// the reducer. An interceptor may forward the action unchanged via
// c.Proceed, transform it first, hold it and proceed later, restart the
// whole pipeline with c.Dispatch, or swallow it by never proceeding.
//
// Interceptors form an ordered list walked by index, each receiving the
// continuation positioned at its successor. The chain terminates in the
// reducer-applying dispatch.
type Interceptor[S any] interface {
	Intercept(c *Chain[S], action Action) (Action, error)
}

// InterceptorFunc adapts a plain function to the Interceptor interface.
type InterceptorFunc[S any] func(c *Chain[S], action Action) (Action, error)

func (f InterceptorFunc[S]) Intercept(c *Chain[S], action Action) (Action, error) {
	return f(c, action)
}

// Chain is the continuation handed to each interceptor. It tracks the
// position in the store's interceptor list; Proceed advances from there.
type Chain[S any] struct {
	store *Store[S]
	index int
}

// Proceed passes the action to the next interceptor in the chain, or to the
// reducer-applying dispatch once the chain is exhausted.
func (c *Chain[S]) Proceed(action Action) (Action, error) {
	if action == nil {
		return nil, ErrNilAction
	}
	if c.index < len(c.store.interceptors) {
		interceptor := c.store.interceptors[c.index]
		next := &Chain[S]{store: c.store, index: c.index + 1}
		return interceptor.Intercept(next, action)
	}
	return c.store.apply(action)
}

// Dispatch restarts the pipeline from the outermost interceptor. Deferred
// work scheduled by an interceptor re-enters here so later-arriving actions
// still see the full chain.
func (c *Chain[S]) Dispatch(action Action) (Action, error) {
	return c.store.Dispatch(action)
}

// State reads the store's current state, exactly as GetState does.
func (c *Chain[S]) State() S {
	return c.store.GetState()
}

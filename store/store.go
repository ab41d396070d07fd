// Package store implements a single-source-of-truth state container: one
// immutable application-defined state value, transitioned exclusively by
// dispatching actions through a pure reducer, with synchronous listener
// notification after each transition.
//
// A Store is an explicit handle, constructed with New and passed to whatever
// needs it. There is no package-level instance.
//
//	st, err := store.New(counterReducer)
//	st.Dispatch(Incremented{})
//	current := st.GetState()
//
// Dispatch, reducer invocation, and notification all complete on the
// caller's goroutine before Dispatch returns. The container assumes a single
// logical event loop submitting actions one at a time; concurrent dispatch
// is not supported. Subscription bookkeeping alone is guarded so handles can
// be created and released from other goroutines.
package store

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/statekeep/statekeep/observability"
)

// Store holds the current state and mediates all reads, transitions, and
// notifications. The type parameter S is the application state; the
// container never copies it and never inspects it.
type Store[S any] struct {
	id           string
	reducer      Reducer[S]
	state        S
	interceptors []Interceptor[S]
	observer     observability.Observer

	dispatching bool

	// Listener bookkeeping uses copy-on-write: the slice captured at the
	// start of a notification pass is never mutated, so listeners may
	// subscribe or unsubscribe mid-pass without affecting that pass.
	mu     sync.Mutex
	next   []listenerEntry
	shared bool
	nextID uint64
}

type listenerEntry struct {
	id uint64
	fn Listener
}

// Option configures a Store during construction.
type Option[S any] func(*options[S])

type options[S any] struct {
	preloaded    S
	hasPreloaded bool
	interceptors []Interceptor[S]
	enhancer     Enhancer[S]
	observer     observability.Observer
	id           string
}

// WithPreloadedState seeds the store with an initial state value, e.g. a
// snapshot read back by a persistence collaborator. Branches the preloaded
// value does not cover are filled in by the reducer's default handling of
// the implicit init action.
func WithPreloadedState[S any](state S) Option[S] {
	return func(o *options[S]) {
		o.preloaded = state
		o.hasPreloaded = true
	}
}

// WithInterceptors installs the dispatch interceptor chain. Interceptors run
// in slice order; the first is outermost, closest to the public Dispatch
// call, and the last hands off to the reducer.
func WithInterceptors[S any](interceptors ...Interceptor[S]) Option[S] {
	return func(o *options[S]) {
		o.interceptors = append(o.interceptors, interceptors...)
	}
}

// WithEnhancer installs the single native enhancer slot. Fold several
// enhancers into one with Compose before passing them here.
func WithEnhancer[S any](enhancer Enhancer[S]) Option[S] {
	return func(o *options[S]) {
		o.enhancer = enhancer
	}
}

// WithObserver overrides the default NoopObserver.
func WithObserver[S any](observer observability.Observer) Option[S] {
	return func(o *options[S]) {
		o.observer = observer
	}
}

// WithID overrides the generated store identifier.
func WithID[S any](id string) Option[S] {
	return func(o *options[S]) {
		o.id = id
	}
}

// New creates a Store from a reducer and options. On construction the store
// performs one implicit dispatch of a reserved init action, bypassing the
// interceptor chain, so the reducer populates defaults for any branch not
// covered by a preloaded value.
//
// When an enhancer is configured, New re-enters through the enhanced
// factory; the enhancer sees the same reducer and the remaining options.
func New[S any](reducer Reducer[S], opts ...Option[S]) (*Store[S], error) {
	if reducer == nil {
		return nil, ErrNilReducer
	}

	var o options[S]
	for _, opt := range opts {
		opt(&o)
	}

	if o.enhancer != nil {
		enhancer := o.enhancer
		base := Factory[S](func(r Reducer[S], inner ...Option[S]) (*Store[S], error) {
			return New(r, inner...)
		})
		return enhancer(base)(reducer, o.withoutEnhancer()...)
	}

	id := o.id
	if id == "" {
		id = uuid.Must(uuid.NewV7()).String()
	}

	observer := o.observer
	if observer == nil {
		observer = observability.NoopObserver{}
	}

	st := &Store[S]{
		id:           id,
		reducer:      reducer,
		interceptors: o.interceptors,
		observer:     observer,
	}
	if o.hasPreloaded {
		st.state = o.preloaded
	}

	observer.OnEvent(context.Background(), observability.Event{
		Type:      EventStoreCreate,
		Level:     observability.LevelVerbose,
		Timestamp: time.Now(),
		Source:    "store",
		Data: map[string]any{
			"store_id":     id,
			"preloaded":    o.hasPreloaded,
			"interceptors": len(o.interceptors),
		},
	})

	if _, err := st.apply(initAction{}); err != nil {
		return nil, err
	}

	return st, nil
}

// withoutEnhancer rebuilds the option list minus the enhancer slot, so an
// enhanced factory re-entering New does not recurse.
func (o *options[S]) withoutEnhancer() []Option[S] {
	var opts []Option[S]
	if o.hasPreloaded {
		opts = append(opts, WithPreloadedState(o.preloaded))
	}
	if len(o.interceptors) > 0 {
		opts = append(opts, WithInterceptors(o.interceptors...))
	}
	if o.observer != nil {
		opts = append(opts, WithObserver[S](o.observer))
	}
	if o.id != "" {
		opts = append(opts, WithID[S](o.id))
	}
	return opts
}

// ID returns the store's unique identifier.
func (s *Store[S]) ID() string {
	return s.id
}

// GetState returns the current state with no copying. Callers must treat the
// value as read-only; the container performs no defensive copy and does not
// detect external mutation.
func (s *Store[S]) GetState() S {
	return s.state
}

// Dispatch submits an action. The interceptor chain runs first, outermost to
// innermost; whatever reaches the end of the chain is applied by the reducer
// and the resulting state replaces the current one, after which every
// listener registered when the transition began is notified in registration
// order. Returns the action as seen by the outermost interceptor.
//
// Dispatching from inside a reducer returns ErrDispatchInReducer. A reducer
// panic propagates to the caller uncaught.
func (s *Store[S]) Dispatch(action Action) (Action, error) {
	if action == nil {
		return nil, ErrNilAction
	}
	if s.dispatching {
		return nil, ErrDispatchInReducer
	}
	chain := &Chain[S]{store: s}
	return chain.Proceed(action)
}

// apply is the chain-terminal dispatch: reducer transition plus listener
// notification. The implicit init and replace actions come straight here.
func (s *Store[S]) apply(action Action) (Action, error) {
	if action == nil {
		return nil, ErrNilAction
	}
	if s.dispatching {
		return nil, ErrDispatchInReducer
	}

	s.dispatching = true
	func() {
		defer func() { s.dispatching = false }()
		s.state = s.reducer(s.state, action)
	}()

	current := s.snapshotListeners()
	for _, entry := range current {
		entry.fn()
	}

	s.observer.OnEvent(context.Background(), observability.Event{
		Type:      EventActionDispatch,
		Level:     observability.LevelVerbose,
		Timestamp: time.Now(),
		Source:    "store",
		Data: map[string]any{
			"store_id":  s.id,
			"kind":      string(action.Kind()),
			"listeners": len(current),
		},
	})

	return action, nil
}

// Subscribe registers a listener and returns its removal handle. The same
// listener may be subscribed multiple times; each call is an independent
// entry. Panics on a nil listener.
func (s *Store[S]) Subscribe(listener Listener) Unsubscribe {
	if listener == nil {
		panic("store: Subscribe called with nil listener")
	}

	s.mu.Lock()
	s.ensureCanMutateNext()
	id := s.nextID
	s.nextID++
	s.next = append(s.next, listenerEntry{id: id, fn: listener})
	s.mu.Unlock()

	s.observer.OnEvent(context.Background(), observability.Event{
		Type:      EventSubscribe,
		Level:     observability.LevelVerbose,
		Timestamp: time.Now(),
		Source:    "store",
		Data:      map[string]any{"store_id": s.id, "listener_id": id},
	})

	subscribed := true
	return func() {
		s.mu.Lock()
		if !subscribed {
			s.mu.Unlock()
			return
		}
		subscribed = false
		s.ensureCanMutateNext()
		s.next = slices.DeleteFunc(s.next, func(e listenerEntry) bool {
			return e.id == id
		})
		s.mu.Unlock()

		s.observer.OnEvent(context.Background(), observability.Event{
			Type:      EventUnsubscribe,
			Level:     observability.LevelVerbose,
			Timestamp: time.Now(),
			Source:    "store",
			Data:      map[string]any{"store_id": s.id, "listener_id": id},
		})
	}
}

// ReplaceReducer swaps the transition function and dispatches the reserved
// replace action so the new reducer can fill in state for branches the old
// one never produced.
func (s *Store[S]) ReplaceReducer(next Reducer[S]) error {
	if next == nil {
		return ErrNilReducer
	}
	s.reducer = next

	s.observer.OnEvent(context.Background(), observability.Event{
		Type:      EventReducerReplace,
		Level:     observability.LevelInfo,
		Timestamp: time.Now(),
		Source:    "store",
		Data:      map[string]any{"store_id": s.id},
	})

	_, err := s.apply(replaceAction{})
	return err
}

// snapshotListeners freezes the listener list for one notification pass.
// Subsequent Subscribe/Unsubscribe calls clone before mutating.
func (s *Store[S]) snapshotListeners() []listenerEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shared = true
	return s.next
}

// ensureCanMutateNext clones the listener slice if a notification pass holds
// the current one. Callers must hold s.mu.
func (s *Store[S]) ensureCanMutateNext() {
	if s.shared {
		s.next = slices.Clone(s.next)
		s.shared = false
	}
}

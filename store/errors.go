package store

import "errors"

// Sentinel errors for container operations.
var (
	// ErrNilReducer is returned when a store is created or re-pointed at a
	// nil reducer.
	ErrNilReducer = errors.New("nil reducer")

	// ErrNilAction is returned when nil reaches the dispatch path, either
	// directly or from an interceptor that forwarded nothing.
	ErrNilAction = errors.New("nil action")

	// ErrDispatchInReducer is returned when a reducer dispatches. Reducers
	// are pure transitions; re-entering the container from one is a bug in
	// application code, not a condition the container recovers from.
	ErrDispatchInReducer = errors.New("dispatch called from inside a reducer")
)

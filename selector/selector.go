// Package selector provides pure derivations over container state, with
// memoization keyed on value identity: because reducers never mutate state
// in place, an unchanged state reference implies an unchanged derivation.
//
// Memoized selectors carry per-instance caches and assume the container's
// single-event-loop model; they are not safe for concurrent use.
package selector

import "github.com/statekeep/statekeep/core/identity"

// Selector extracts a derived value from state. Must be pure.
type Selector[S, R any] func(state S) R

// Memo wraps a selector with a last-call cache: the selector reruns only
// when the state differs by identity from the previous call's state.
func Memo[S, R any](sel Selector[S, R]) Selector[S, R] {
	return MemoEqual(sel, func(a, b S) bool {
		return identity.Same(a, b)
	})
}

// MemoEqual is Memo with a caller-supplied state equality.
func MemoEqual[S, R any](sel Selector[S, R], equals func(a, b S) bool) Selector[S, R] {
	var (
		primed    bool
		lastState S
		lastValue R
	)
	return func(state S) R {
		if primed && equals(lastState, state) {
			return lastValue
		}
		lastState = state
		lastValue = sel(state)
		primed = true
		return lastValue
	}
}

// Compose2 derives a value from two input selectors. The combiner runs only
// when an input's result changed by identity since the previous call, so an
// expensive derivation is skipped whenever cheap inputs are stable.
func Compose2[S, A, B, R any](
	selA Selector[S, A],
	selB Selector[S, B],
	combine func(a A, b B) R,
) Selector[S, R] {
	var (
		primed bool
		lastA  A
		lastB  B
		lastR  R
	)
	return func(state S) R {
		a := selA(state)
		b := selB(state)
		if primed && identity.Same(lastA, a) && identity.Same(lastB, b) {
			return lastR
		}
		lastA, lastB = a, b
		lastR = combine(a, b)
		primed = true
		return lastR
	}
}

// Compose3 is Compose2 over three inputs.
func Compose3[S, A, B, C, R any](
	selA Selector[S, A],
	selB Selector[S, B],
	selC Selector[S, C],
	combine func(a A, b B, c C) R,
) Selector[S, R] {
	var (
		primed bool
		lastA  A
		lastB  B
		lastC  C
		lastR  R
	)
	return func(state S) R {
		a := selA(state)
		b := selB(state)
		c := selC(state)
		if primed && identity.Same(lastA, a) && identity.Same(lastB, b) && identity.Same(lastC, c) {
			return lastR
		}
		lastA, lastB, lastC = a, b, c
		lastR = combine(a, b, c)
		primed = true
		return lastR
	}
}

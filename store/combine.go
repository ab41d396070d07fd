package store

import (
	"sort"

	"github.com/statekeep/statekeep/core/identity"
)

// Combine builds a reducer over a key-sliced state map from one child
// reducer per key. Each child owns its slice: it receives only its own
// previous value and decides its own default when that value is nil.
//
// When no child produces a new value (by identity) and the incoming map has
// exactly the managed keys, the incoming map is returned unchanged, so an
// unrecognized action stays an identity passthrough at the combined level
// too.
func Combine(reducers map[string]Reducer[any]) Reducer[map[string]any] {
	keys := make([]string, 0, len(reducers))
	for k := range reducers {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return func(state map[string]any, action Action) map[string]any {
		changed := len(state) != len(reducers)

		next := make(map[string]any, len(reducers))
		for _, k := range keys {
			prev := state[k]
			slice := reducers[k](prev, action)
			next[k] = slice
			if !identity.Same(prev, slice) {
				changed = true
			}
		}

		if !changed {
			return state
		}
		return next
	}
}

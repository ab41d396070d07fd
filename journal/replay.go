package journal

import (
	"fmt"

	"github.com/statekeep/statekeep/store"
)

// Replay left-folds reducer over the recorded entries from initial, decoding
// each entry through the registered codec. The result equals what a live
// container would hold after dispatching the same sequence.
func Replay[S any](reducer store.Reducer[S], initial S, entries []Entry) (S, error) {
	state := initial
	for i, entry := range entries {
		action, err := Decode(entry)
		if err != nil {
			return state, fmt.Errorf("replay entry %d: %w", i, err)
		}
		state = reducer(state, action)
	}
	return state, nil
}

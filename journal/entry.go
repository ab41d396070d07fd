// Package journal records the actions dispatched through a container and
// folds them back. Actions are serializable by contract, so a journal plus
// the reducer and initial state fully determines the final state: replay is
// a left-fold of the reducer over the recorded sequence.
package journal

import (
	"encoding/json"
	"time"

	"github.com/statekeep/statekeep/store"
)

// Entry is one recorded action: its kind plus the JSON encoding of the
// concrete action value.
type Entry struct {
	Kind    store.Kind      `json:"kind"`
	Payload json.RawMessage `json:"payload,omitempty"`
	At      time.Time       `json:"at"`
}

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/statekeep/statekeep/journal"
	"github.com/statekeep/statekeep/store"
)

// Counter is the demo application state.
type Counter struct {
	Value int `json:"value"`
}

// Action kinds of the counter domain.
const (
	KindIncremented store.Kind = "incremented"
	KindDecremented store.Kind = "decremented"
	KindAddedBy     store.Kind = "added_by"
)

type Incremented struct{}

func (Incremented) Kind() store.Kind { return KindIncremented }

type Decremented struct{}

func (Decremented) Kind() store.Kind { return KindDecremented }

type AddedBy struct {
	Amount int `json:"amount"`
}

func (AddedBy) Kind() store.Kind { return KindAddedBy }

func counterReducer(state Counter, action store.Action) Counter {
	switch a := action.(type) {
	case Incremented:
		return Counter{Value: state.Value + 1}
	case Decremented:
		return Counter{Value: state.Value - 1}
	case AddedBy:
		return Counter{Value: state.Value + a.Amount}
	default:
		return state
	}
}

func registerCounterKinds() error {
	if err := journal.RegisterKindOf[Incremented](KindIncremented); err != nil {
		return err
	}
	if err := journal.RegisterKindOf[Decremented](KindDecremented); err != nil {
		return err
	}
	return journal.RegisterKindOf[AddedBy](KindAddedBy)
}

// parseAction turns a command-line token into a counter action:
// "inc", "dec", or "add:<n>".
func parseAction(token string) (store.Action, error) {
	switch {
	case token == "inc":
		return Incremented{}, nil
	case token == "dec":
		return Decremented{}, nil
	case strings.HasPrefix(token, "add:"):
		n, err := strconv.Atoi(strings.TrimPrefix(token, "add:"))
		if err != nil {
			return nil, fmt.Errorf("invalid amount in %q: %w", token, err)
		}
		return AddedBy{Amount: n}, nil
	default:
		return nil, fmt.Errorf("unknown action %q (want inc, dec, or add:<n>)", token)
	}
}

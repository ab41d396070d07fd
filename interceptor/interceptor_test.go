package interceptor_test

import (
	"context"
	"errors"
	"testing"

	"github.com/statekeep/statekeep/interceptor"
	"github.com/statekeep/statekeep/observability"
	"github.com/statekeep/statekeep/store"
)

type counter struct {
	Value int
}

type incremented struct{}

func (incremented) Kind() store.Kind { return "incremented" }

type addedBy struct {
	Amount int
}

func (addedBy) Kind() store.Kind { return "added_by" }

func counterReducer(state counter, action store.Action) counter {
	switch a := action.(type) {
	case incremented:
		return counter{Value: state.Value + 1}
	case addedBy:
		return counter{Value: state.Value + a.Amount}
	default:
		return state
	}
}

type captureObserver struct {
	events []observability.Event
}

func (o *captureObserver) OnEvent(_ context.Context, event observability.Event) {
	o.events = append(o.events, event)
}

// --- Thunk ---

func TestThunk_RunsInsteadOfReachingReducer(t *testing.T) {
	st, err := store.New(counterReducer,
		store.WithInterceptors(interceptor.NewThunk[counter]()))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	doubleIncrement := interceptor.Thunk[counter](func(env interceptor.Env[counter]) (store.Action, error) {
		if _, err := env.Dispatch(incremented{}); err != nil {
			return nil, err
		}
		return env.Dispatch(incremented{})
	})

	returned, err := st.Dispatch(doubleIncrement)
	if err != nil {
		t.Fatalf("Dispatch(thunk) error = %v", err)
	}
	if _, ok := returned.(incremented); !ok {
		t.Fatalf("Dispatch(thunk) returned %T, want the thunk's result", returned)
	}
	if got := st.GetState().Value; got != 2 {
		t.Fatalf("GetState().Value = %d, want 2", got)
	}
}

func TestThunk_ReadsStateBetweenDispatches(t *testing.T) {
	st, err := store.New(counterReducer,
		store.WithInterceptors(interceptor.NewThunk[counter]()))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	st.Dispatch(addedBy{Amount: 5})

	// Conditional dispatch based on current state, the canonical thunk use.
	capAtTen := interceptor.Thunk[counter](func(env interceptor.Env[counter]) (store.Action, error) {
		if env.State().Value >= 10 {
			return nil, errors.New("cap reached")
		}
		return env.Dispatch(addedBy{Amount: 10 - env.State().Value})
	})

	if _, err := st.Dispatch(capAtTen); err != nil {
		t.Fatalf("Dispatch(thunk) error = %v", err)
	}
	if got := st.GetState().Value; got != 10 {
		t.Fatalf("GetState().Value = %d, want 10", got)
	}

	if _, err := st.Dispatch(capAtTen); err == nil {
		t.Fatal("Dispatch(thunk) at cap: expected error")
	}
}

func TestThunk_PlainActionsPassThrough(t *testing.T) {
	st, err := store.New(counterReducer,
		store.WithInterceptors(interceptor.NewThunk[counter]()))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	st.Dispatch(incremented{})
	if got := st.GetState().Value; got != 1 {
		t.Fatalf("GetState().Value = %d, want 1", got)
	}
}

// --- Logger ---

func TestLogger_EmitsStartAndComplete(t *testing.T) {
	obs := &captureObserver{}
	st, err := store.New(counterReducer,
		store.WithInterceptors(interceptor.NewLogger[counter](obs, "test.logger")))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	st.Dispatch(incremented{})

	if len(obs.events) != 2 {
		t.Fatalf("events = %d, want 2 (start, complete)", len(obs.events))
	}
	if obs.events[0].Type != interceptor.EventDispatchStart {
		t.Errorf("first event = %q, want %q", obs.events[0].Type, interceptor.EventDispatchStart)
	}
	if obs.events[1].Type != interceptor.EventDispatchComplete {
		t.Errorf("second event = %q, want %q", obs.events[1].Type, interceptor.EventDispatchComplete)
	}
	if kind := obs.events[0].Data["kind"]; kind != "incremented" {
		t.Errorf("start event kind = %v, want incremented", kind)
	}
	if src := obs.events[0].Source; src != "test.logger" {
		t.Errorf("event source = %q, want test.logger", src)
	}
}

func TestLogger_EmitsErrorEvent(t *testing.T) {
	obs := &captureObserver{}
	reject := store.InterceptorFunc[counter](func(c *store.Chain[counter], action store.Action) (store.Action, error) {
		return nil, errors.New("downstream failure")
	})

	st, err := store.New(counterReducer,
		store.WithInterceptors(interceptor.NewLogger[counter](obs, ""), reject))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if _, err := st.Dispatch(incremented{}); err == nil {
		t.Fatal("expected downstream error")
	}

	if len(obs.events) != 2 {
		t.Fatalf("events = %d, want 2 (start, error)", len(obs.events))
	}
	if obs.events[1].Type != interceptor.EventDispatchError {
		t.Errorf("second event = %q, want %q", obs.events[1].Type, interceptor.EventDispatchError)
	}
}

// Two loggers in one chain log outer before inner, both directions ordered.
func TestLogger_OrderingOuterFirst(t *testing.T) {
	obs := &captureObserver{}
	st, err := store.New(counterReducer,
		store.WithInterceptors(
			interceptor.NewLogger[counter](obs, "A"),
			interceptor.NewLogger[counter](obs, "B"),
		))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	st.Dispatch(incremented{})

	var order []string
	for _, e := range obs.events {
		if e.Type == interceptor.EventDispatchStart {
			order = append(order, e.Source)
		}
	}
	if len(order) != 2 || order[0] != "A" || order[1] != "B" {
		t.Fatalf("start event order = %v, want [A B]", order)
	}
}

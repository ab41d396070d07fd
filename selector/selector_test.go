package selector_test

import (
	"strings"
	"testing"

	"github.com/statekeep/statekeep/selector"
)

type appState struct {
	Todos []string
	User  string
}

func TestMemo_SkipsRecomputeOnSameState(t *testing.T) {
	calls := 0
	todoCount := selector.Memo(func(s *appState) int {
		calls++
		return len(s.Todos)
	})

	state := &appState{Todos: []string{"a", "b"}}

	if got := todoCount(state); got != 2 {
		t.Fatalf("todoCount = %d, want 2", got)
	}
	if got := todoCount(state); got != 2 {
		t.Fatalf("todoCount = %d, want 2", got)
	}
	if calls != 1 {
		t.Fatalf("selector ran %d times for identical state, want 1", calls)
	}

	// A new state value recomputes.
	if got := todoCount(&appState{Todos: []string{"a"}}); got != 1 {
		t.Fatalf("todoCount = %d, want 1", got)
	}
	if calls != 2 {
		t.Fatalf("selector ran %d times, want 2", calls)
	}
}

func TestMemoEqual_CustomEquality(t *testing.T) {
	calls := 0
	sel := selector.MemoEqual(
		func(s appState) string {
			calls++
			return strings.ToUpper(s.User)
		},
		func(a, b appState) bool { return a.User == b.User },
	)

	sel(appState{User: "ada", Todos: []string{"x"}})
	sel(appState{User: "ada", Todos: []string{"y"}}) // equal per User
	if calls != 1 {
		t.Fatalf("selector ran %d times, want 1", calls)
	}

	if got := sel(appState{User: "grace"}); got != "GRACE" {
		t.Fatalf("sel = %q, want GRACE", got)
	}
	if calls != 2 {
		t.Fatalf("selector ran %d times, want 2", calls)
	}
}

func TestCompose2_CombinerRunsOnlyOnInputChange(t *testing.T) {
	combines := 0

	todos := func(s *appState) []string { return s.Todos }
	user := func(s *appState) string { return s.User }
	summary := selector.Compose2(todos, user, func(ts []string, u string) string {
		combines++
		return u + ": " + strings.Join(ts, ",")
	})

	shared := []string{"a", "b"}
	s1 := &appState{Todos: shared, User: "ada"}

	if got := summary(s1); got != "ada: a,b" {
		t.Fatalf("summary = %q", got)
	}

	// New state value, but both inputs identical: combiner must not rerun.
	s2 := &appState{Todos: shared, User: "ada"}
	summary(s2)
	if combines != 1 {
		t.Fatalf("combiner ran %d times, want 1", combines)
	}

	// Changing one input reruns the combiner.
	s3 := &appState{Todos: append([]string{}, shared...), User: "ada"}
	summary(s3)
	if combines != 2 {
		t.Fatalf("combiner ran %d times, want 2", combines)
	}
}

func TestCompose3(t *testing.T) {
	combines := 0
	sel := selector.Compose3(
		func(s appState) int { return len(s.Todos) },
		func(s appState) string { return s.User },
		func(s appState) bool { return s.User != "" },
		func(n int, u string, known bool) string {
			combines++
			if !known {
				return "anonymous"
			}
			return u
		},
	)

	if got := sel(appState{User: "ada", Todos: []string{"x"}}); got != "ada" {
		t.Fatalf("sel = %q, want ada", got)
	}
	sel(appState{User: "ada", Todos: []string{"y"}}) // same count, same user
	if combines != 1 {
		t.Fatalf("combiner ran %d times, want 1", combines)
	}

	if got := sel(appState{}); got != "anonymous" {
		t.Fatalf("sel = %q, want anonymous", got)
	}
	if combines != 2 {
		t.Fatalf("combiner ran %d times, want 2", combines)
	}
}

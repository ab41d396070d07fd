package store

// Kind is the discriminant identifying what an action describes. Applications
// define one Kind per event and a concrete Action struct carrying that
// event's payload, forming a closed sum over their known action kinds.
type Kind string

// Kinds reserved for the container's own lifecycle actions. Reducers must
// not match them explicitly; the default branch returns state unchanged,
// which is exactly what these actions rely on to surface reducer defaults.
const (
	KindInit    Kind = "@statekeep/init"
	KindReplace Kind = "@statekeep/replace"
)

// Action describes an event. Implementations must be plain serializable
// values: no functions, channels, or non-deterministic content. Anything
// else on the dispatch path (deferred computations, for example) is an
// interceptor concern and never reaches the reducer.
type Action interface {
	Kind() Kind
}

// Reducer computes the next state from the current state and an action.
// Reducers must be pure: no side effects, no dispatching, and identical
// output for identical input. Unrecognized kinds return state unchanged.
type Reducer[S any] func(state S, action Action) S

// Listener is notified after every completed state transition. It receives
// no arguments; the new state is pulled through GetState.
type Listener func()

// Unsubscribe releases a subscription. Calling it more than once is a no-op.
type Unsubscribe func()

type initAction struct{}

func (initAction) Kind() Kind { return KindInit }

type replaceAction struct{}

func (replaceAction) Kind() Kind { return KindReplace }

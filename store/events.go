package store

import "github.com/statekeep/statekeep/observability"

const (
	// Container lifecycle
	EventStoreCreate    observability.EventType = "store.create"
	EventReducerReplace observability.EventType = "reducer.replace"

	// Dispatch path
	EventActionDispatch observability.EventType = "action.dispatch"

	// Subscriptions
	EventSubscribe   observability.EventType = "listener.subscribe"
	EventUnsubscribe observability.EventType = "listener.unsubscribe"
)

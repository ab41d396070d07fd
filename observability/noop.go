package observability

import "context"

// NoopObserver drops every event. The zero value is ready to use.
type NoopObserver struct{}

func (NoopObserver) OnEvent(ctx context.Context, event Event) {}

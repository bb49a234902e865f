package matchevent

import "context"

// Publisher delivers events on a best-effort basis. Callers log failures and
// never roll back the mutation that produced the event.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

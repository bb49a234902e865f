package eventbus

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/matchevent"
)

// Fanout publishes every event to all targets and joins their failures.
type Fanout []matchevent.Publisher

func (f Fanout) Publish(ctx context.Context, event matchevent.Event) error {
	var combined error
	for _, target := range f {
		if target == nil {
			continue
		}
		combined = errors.CombineErrors(combined, target.Publish(ctx, event))
	}
	return combined
}

package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/matchevent"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/platform/keylock"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/platform/logging"
)

// Locker is the per-key mutual exclusion used to serialize writes to one
// innings or one match.
type Locker interface {
	Lock(ctx context.Context, key string) (func(), error)
}

func inningsLockKey(inningsID string) string { return "innings:" + inningsID }
func matchLockKey(matchID string) string     { return "match:" + matchID }

// acquire maps lock failures onto the error taxonomy: a timed-out wait is
// retryable contention, a cancelled request is passed through.
func acquire(ctx context.Context, locker Locker, key string) (func(), error) {
	unlock, err := locker.Lock(ctx, key)
	if err == nil {
		return unlock, nil
	}
	if errors.Is(err, keylock.ErrTimeout) {
		return nil, fmt.Errorf("%w: %s is locked by another request, retry", ErrContention, key)
	}
	return nil, fmt.Errorf("acquire %s: %w", key, err)
}

// publish sends a best-effort notification. Failures are logged only.
func publish(ctx context.Context, publisher matchevent.Publisher, logger *logging.Logger, event matchevent.Event) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, event); err != nil {
		logger.WarnContext(ctx, "publish match event failed",
			"event_type", string(event.Type),
			"match_id", event.MatchID,
			"error", err,
		)
	}
}

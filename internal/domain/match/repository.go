package match

import "context"

type Repository interface {
	// List returns matches ordered by scheduled start, newest first.
	List(ctx context.Context, filter Filter) ([]Match, error)
	GetByID(ctx context.Context, matchID string) (Match, bool, error)
	Create(ctx context.Context, item Match) error
	Update(ctx context.Context, item Match) error
	// Delete removes the match together with its innings and deliveries.
	Delete(ctx context.Context, matchID string) error
}

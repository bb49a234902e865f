package delivery

import "context"

// Repository reads the delivery log. Every list is in creation order.
// Appends go through scoring.Ledger so the innings totals move with them.
type Repository interface {
	ListByInnings(ctx context.Context, inningsID string) ([]Delivery, error)
	ListByMatch(ctx context.Context, matchID string) ([]Delivery, error)
	// ListByPlayer returns deliveries where the player batted, bowled or was
	// dismissed.
	ListByPlayer(ctx context.Context, playerID string) ([]Delivery, error)
	ListAll(ctx context.Context) ([]Delivery, error)
}

package innings

import "context"

type Repository interface {
	GetByID(ctx context.Context, inningsID string) (Innings, bool, error)
	// ListByMatch returns innings in creation order.
	ListByMatch(ctx context.Context, matchID string) ([]Innings, error)
	ListByTeam(ctx context.Context, battingTeamID string) ([]Innings, error)
	Create(ctx context.Context, item Innings) error
	Update(ctx context.Context, item Innings) error
}

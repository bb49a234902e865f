package series

import "context"

type Repository interface {
	List(ctx context.Context) ([]Series, error)
	GetByID(ctx context.Context, seriesID string) (Series, bool, error)
	Create(ctx context.Context, item Series) error
}

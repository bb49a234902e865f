package user

import "context"

type Repository interface {
	GetByEmail(ctx context.Context, email string) (AdminUser, bool, error)
	Create(ctx context.Context, item AdminUser) error
}

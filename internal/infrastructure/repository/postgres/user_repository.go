package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/user"
	qb "github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/platform/querybuilder"
)

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (user.AdminUser, bool, error) {
	query, args, err := qb.Select("*").From("admin_users").
		Where(qb.Eq("email", strings.ToLower(strings.TrimSpace(email)))).
		ToSQL()
	if err != nil {
		return user.AdminUser{}, false, fmt.Errorf("build get admin user by email query: %w", err)
	}

	var row adminUserTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return user.AdminUser{}, false, nil
		}
		return user.AdminUser{}, false, fmt.Errorf("get admin user by email: %w", err)
	}

	return user.AdminUser{
		ID:           row.PublicID,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		CreatedAt:    row.CreatedAt,
	}, true, nil
}

func (r *UserRepository) Create(ctx context.Context, item user.AdminUser) error {
	query, args, err := qb.InsertModel("admin_users", adminUserInsertModel{
		PublicID:     item.ID,
		Email:        strings.ToLower(strings.TrimSpace(item.Email)),
		PasswordHash: item.PasswordHash,
		CreatedAt:    item.CreatedAt,
	}, "")
	if err != nil {
		return fmt.Errorf("build create admin user query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("create admin user %s: email taken: %w", item.Email, err)
		}
		return fmt.Errorf("create admin user: %w", err)
	}
	return nil
}

package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/user"
)

type UserRepository struct {
	mu      sync.RWMutex
	byEmail map[string]user.AdminUser
}

func NewUserRepository() *UserRepository {
	return &UserRepository{byEmail: make(map[string]user.AdminUser)}
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (user.AdminUser, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byEmail[strings.ToLower(email)]
	return u, ok, nil
}

func (r *UserRepository) Create(_ context.Context, item user.AdminUser) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(item.Email)
	if _, exists := r.byEmail[key]; exists {
		return fmt.Errorf("admin user %s already exists", item.Email)
	}
	r.byEmail[key] = item
	return nil
}

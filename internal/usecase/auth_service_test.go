package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/user"
	usermock "github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/mocks/domain/user"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/platform/logging"
)

type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (plainHasher) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return ErrPasswordMismatch
	}
	return nil
}

type fixedIssuer struct {
	expiresAt time.Time
	issued    []user.Principal
}

func (f *fixedIssuer) IssueAccessToken(_ context.Context, principal user.Principal) (string, time.Time, error) {
	f.issued = append(f.issued, principal)
	return "token-" + principal.UserID, f.expiresAt, nil
}

func TestAuthService_Login(t *testing.T) {
	t.Parallel()

	expiresAt := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	admin := user.AdminUser{ID: "admin-1", Email: "scorer@example.com", PasswordHash: "hashed:s3cret"}

	tests := []struct {
		name     string
		email    string
		password string
		setup    func(repo *usermock.Repository)
		wantErr  error
	}{
		{
			name:     "valid credentials",
			email:    "  Scorer@Example.com ",
			password: "s3cret",
			setup: func(repo *usermock.Repository) {
				repo.On("GetByEmail", mock.Anything, "scorer@example.com").Return(admin, true, nil).Once()
			},
		},
		{
			name:     "wrong password",
			email:    "scorer@example.com",
			password: "guess",
			setup: func(repo *usermock.Repository) {
				repo.On("GetByEmail", mock.Anything, "scorer@example.com").Return(admin, true, nil).Once()
			},
			wantErr: ErrUnauthorized,
		},
		{
			name:     "unknown email",
			email:    "nobody@example.com",
			password: "s3cret",
			setup: func(repo *usermock.Repository) {
				repo.On("GetByEmail", mock.Anything, "nobody@example.com").Return(user.AdminUser{}, false, nil).Once()
			},
			wantErr: ErrUnauthorized,
		},
		{
			name:     "missing password",
			email:    "scorer@example.com",
			password: "",
			setup:    func(*usermock.Repository) {},
			wantErr:  ErrInvalidInput,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			repo := usermock.NewRepository(t)
			tc.setup(repo)
			issuer := &fixedIssuer{expiresAt: expiresAt}
			service := NewAuthService(repo, plainHasher{}, issuer, &staticIDs{}, logging.NewNop())

			got, err := service.Login(context.Background(), tc.email, tc.password)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.Empty(t, issuer.issued)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "token-admin-1", got.AccessToken)
			assert.Equal(t, expiresAt, got.ExpiresAt)
			assert.Equal(t, user.Principal{UserID: "admin-1", Email: "scorer@example.com"}, got.Principal)
		})
	}
}

func TestAuthService_SeedAdmin_CreatesOnce(t *testing.T) {
	t.Parallel()

	repo := usermock.NewRepository(t)
	service := NewAuthService(repo, plainHasher{}, &fixedIssuer{}, &staticIDs{ids: []string{"admin-1"}}, logging.NewNop())

	repo.On("GetByEmail", mock.Anything, DefaultAdminEmail).Return(user.AdminUser{}, false, nil).Once()
	repo.On("Create", mock.Anything, mock.MatchedBy(func(u user.AdminUser) bool {
		return u.ID == "admin-1" && u.PasswordHash == "hashed:"+DefaultAdminPassword
	})).Return(nil).Once()

	created, ok, err := service.SeedAdmin(context.Background(), "", "")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, DefaultAdminEmail, created.Email)

	repo.On("GetByEmail", mock.Anything, DefaultAdminEmail).Return(created, true, nil).Once()
	again, ok, err := service.SeedAdmin(context.Background(), DefaultAdminEmail, "other")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, "admin-1", again.ID)
}

func TestAuthService_SeedAdmin_PropagatesStoreError(t *testing.T) {
	t.Parallel()

	repo := usermock.NewRepository(t)
	service := NewAuthService(repo, plainHasher{}, &fixedIssuer{}, &staticIDs{}, logging.NewNop())

	storeErr := errors.New("connection refused")
	repo.On("GetByEmail", mock.Anything, "ops@example.com").Return(user.AdminUser{}, false, storeErr).Once()

	_, _, err := service.SeedAdmin(context.Background(), "ops@example.com", "pw")
	require.ErrorIs(t, err, storeErr)
}

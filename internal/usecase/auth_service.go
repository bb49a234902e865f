package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/user"
	idgen "github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/platform/id"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/platform/logging"
)

const (
	DefaultAdminEmail    = "admin@criclive.local"
	DefaultAdminPassword = "admin123"
)

// ErrPasswordMismatch is returned by PasswordHasher.Compare for a wrong
// password.
var ErrPasswordMismatch = errors.New("password mismatch")

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

type TokenIssuer interface {
	IssueAccessToken(ctx context.Context, principal user.Principal) (string, time.Time, error)
}

type LoginResult struct {
	AccessToken string
	ExpiresAt   time.Time
	Principal   user.Principal
}

type AuthService struct {
	userRepo user.Repository
	hasher   PasswordHasher
	issuer   TokenIssuer
	idGen    idgen.Generator
	logger   *logging.Logger
	now      func() time.Time
}

func NewAuthService(userRepo user.Repository, hasher PasswordHasher, issuer TokenIssuer, idGen idgen.Generator, logger *logging.Logger) *AuthService {
	if logger == nil {
		logger = logging.Default()
	}
	return &AuthService{
		userRepo: userRepo,
		hasher:   hasher,
		issuer:   issuer,
		idGen:    idGen,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (LoginResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.Login")
	defer span.End()

	email = normalizeEmail(email)
	if email == "" || password == "" {
		return LoginResult{}, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	admin, exists, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return LoginResult{}, fmt.Errorf("get admin user: %w", err)
	}
	if !exists {
		return LoginResult{}, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}
	if err := s.hasher.Compare(admin.PasswordHash, password); err != nil {
		if errors.Is(err, ErrPasswordMismatch) {
			s.logger.WarnContext(ctx, "admin login rejected", "email", email)
			return LoginResult{}, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
		}
		return LoginResult{}, fmt.Errorf("compare password: %w", err)
	}

	principal := user.Principal{UserID: admin.ID, Email: admin.Email}
	token, expiresAt, err := s.issuer.IssueAccessToken(ctx, principal)
	if err != nil {
		return LoginResult{}, fmt.Errorf("issue access token: %w", err)
	}
	return LoginResult{AccessToken: token, ExpiresAt: expiresAt, Principal: principal}, nil
}

// SeedAdmin creates the admin account if it does not exist yet. created is
// false when the account was already present.
func (s *AuthService) SeedAdmin(ctx context.Context, email, password string) (user.AdminUser, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.SeedAdmin")
	defer span.End()

	email = normalizeEmail(email)
	if email == "" {
		email = DefaultAdminEmail
	}
	if password == "" {
		password = DefaultAdminPassword
	}

	existing, exists, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return user.AdminUser{}, false, fmt.Errorf("get admin user: %w", err)
	}
	if exists {
		return existing, false, nil
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return user.AdminUser{}, false, fmt.Errorf("hash password: %w", err)
	}
	userID, err := s.idGen.NewID()
	if err != nil {
		return user.AdminUser{}, false, fmt.Errorf("generate user id: %w", err)
	}
	admin := user.AdminUser{
		ID:           userID,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.userRepo.Create(ctx, admin); err != nil {
		return user.AdminUser{}, false, fmt.Errorf("create admin user: %w", err)
	}

	s.logger.InfoContext(ctx, "admin user seeded", "email", email)
	return admin, true, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

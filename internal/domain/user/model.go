package user

import "time"

// AdminUser is an operator allowed to call mutating endpoints.
type AdminUser struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Principal is the authenticated caller extracted from an access token.
type Principal struct {
	UserID string
	Email  string
}

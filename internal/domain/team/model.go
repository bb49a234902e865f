package team

import (
	"errors"
	"strings"
	"time"
)

// Team is a side that can be scheduled into matches.
type Team struct {
	ID        string
	Name      string
	ShortCode string
	LogoURL   string
	CreatedAt time.Time
}

func (t Team) Validate() error {
	if t.ID == "" {
		return errors.New("team id is required")
	}
	if strings.TrimSpace(t.Name) == "" {
		return errors.New("team name is required")
	}
	if strings.TrimSpace(t.ShortCode) == "" {
		return errors.New("team short code is required")
	}
	return nil
}

// NormalizeShortCode upper-cases codes so "csk" and "CSK" collide.
func NormalizeShortCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

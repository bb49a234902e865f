package player

import (
	"errors"
	"strings"
	"time"
)

type Role string

const (
	RoleBatsman      Role = "BATSMAN"
	RoleBowler       Role = "BOWLER"
	RoleAllRounder   Role = "ALL_ROUNDER"
	RoleWicketKeeper Role = "WICKET_KEEPER"
)

func (r Role) Valid() bool {
	switch r {
	case RoleBatsman, RoleBowler, RoleAllRounder, RoleWicketKeeper:
		return true
	default:
		return false
	}
}

// ParseRole accepts any casing and "-" or " " as separators.
func ParseRole(v string) (Role, bool) {
	r := Role(strings.ToUpper(strings.NewReplacer("-", "_", " ", "_").Replace(strings.TrimSpace(v))))
	return r, r.Valid()
}

type Player struct {
	ID           string
	Name         string
	TeamID       string
	Role         Role
	BattingStyle string
	BowlingStyle string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (p Player) Validate() error {
	if p.ID == "" {
		return errors.New("player id is required")
	}
	if strings.TrimSpace(p.Name) == "" {
		return errors.New("player name is required")
	}
	if p.TeamID == "" {
		return errors.New("player team id is required")
	}
	if !p.Role.Valid() {
		return errors.New("player role is invalid")
	}
	return nil
}

package memory

import (
	"time"

	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/player"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/team"
)

const (
	TeamIDChennai = "team-csk"
	TeamIDMumbai  = "team-mi"
)

var seedTime = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

// SeedTeams is the fixture data loaded by the in-memory driver in dev.
func SeedTeams() []team.Team {
	return []team.Team{
		{ID: TeamIDChennai, Name: "Chennai Super Kings", ShortCode: "CSK", CreatedAt: seedTime},
		{ID: TeamIDMumbai, Name: "Mumbai Indians", ShortCode: "MI", CreatedAt: seedTime},
	}
}

func SeedPlayers() []player.Player {
	mk := func(id, name, teamID string, role player.Role, bat, bowl string) player.Player {
		return player.Player{
			ID:           id,
			Name:         name,
			TeamID:       teamID,
			Role:         role,
			BattingStyle: bat,
			BowlingStyle: bowl,
			CreatedAt:    seedTime,
			UpdatedAt:    seedTime,
		}
	}
	return []player.Player{
		mk("csk-gaikwad", "Ruturaj Gaikwad", TeamIDChennai, player.RoleBatsman, "Right-hand bat", ""),
		mk("csk-conway", "Devon Conway", TeamIDChennai, player.RoleBatsman, "Left-hand bat", ""),
		mk("csk-dhoni", "MS Dhoni", TeamIDChennai, player.RoleWicketKeeper, "Right-hand bat", ""),
		mk("csk-jadeja", "Ravindra Jadeja", TeamIDChennai, player.RoleAllRounder, "Left-hand bat", "Slow left-arm orthodox"),
		mk("csk-pathirana", "Matheesha Pathirana", TeamIDChennai, player.RoleBowler, "Right-hand bat", "Right-arm fast"),
		mk("mi-rohit", "Rohit Sharma", TeamIDMumbai, player.RoleBatsman, "Right-hand bat", ""),
		mk("mi-kishan", "Ishan Kishan", TeamIDMumbai, player.RoleWicketKeeper, "Left-hand bat", ""),
		mk("mi-suryakumar", "Suryakumar Yadav", TeamIDMumbai, player.RoleBatsman, "Right-hand bat", ""),
		mk("mi-pandya", "Hardik Pandya", TeamIDMumbai, player.RoleAllRounder, "Right-hand bat", "Right-arm fast-medium"),
		mk("mi-bumrah", "Jasprit Bumrah", TeamIDMumbai, player.RoleBowler, "Right-hand bat", "Right-arm fast"),
	}
}

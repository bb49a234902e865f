package stats

import (
	"cmp"
	"slices"
	"strings"

	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/innings"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/match"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/team"
)

const pointsPerWin = 2

type Standing struct {
	TeamID    string
	TeamName  string
	ShortCode string
	Played    int
	Wins      int
	Losses    int
	NoResult  int
	WinPct    float64
	Points    int
}

// Standings tallies completed matches by their recorded winner. A completed
// match without a winner (a tie) counts as played but neither won nor lost.
func Standings(teams []team.Team, matches []match.Match) []Standing {
	byTeam := make(map[string]*Standing, len(teams))
	for _, t := range teams {
		byTeam[t.ID] = &Standing{TeamID: t.ID, TeamName: t.Name, ShortCode: t.ShortCode}
	}

	for _, m := range matches {
		if m.Status != match.StatusCompleted {
			continue
		}
		for _, id := range []string{m.TeamAID, m.TeamBID} {
			s, ok := byTeam[id]
			if !ok {
				continue
			}
			s.Played++
			switch m.WinnerID {
			case "":
				s.NoResult++
			case id:
				s.Wins++
			default:
				s.Losses++
			}
		}
	}

	out := make([]Standing, 0, len(byTeam))
	for _, s := range byTeam {
		s.Points = s.Wins * pointsPerWin
		s.WinPct = Percentage(s.Wins, s.Played)
		out = append(out, *s)
	}
	slices.SortFunc(out, func(a, b Standing) int {
		if c := cmp.Compare(b.Points, a.Points); c != 0 {
			return c
		}
		if c := cmp.Compare(b.WinPct, a.WinPct); c != 0 {
			return c
		}
		return strings.Compare(a.TeamName, b.TeamName)
	})
	return out
}

type TeamSummary struct {
	TotalMatches int
	Completed    int
	Wins         int
	Losses       int
	WinPct       float64
	TotalRuns    int
	HighestTotal int
	AverageScore float64
}

// SummarizeTeam aggregates a team's record. matches should be the team's
// fixtures and battingInnings the innings it batted; super overs are left
// out of the batting totals.
func SummarizeTeam(teamID string, matches []match.Match, battingInnings []innings.Innings) TeamSummary {
	var s TeamSummary
	for _, m := range matches {
		if !m.HasTeam(teamID) {
			continue
		}
		s.TotalMatches++
		if m.Status != match.StatusCompleted {
			continue
		}
		s.Completed++
		switch m.WinnerID {
		case "":
		case teamID:
			s.Wins++
		default:
			s.Losses++
		}
	}
	s.WinPct = Percentage(s.Wins, s.Completed)

	counted := 0
	for _, inn := range battingInnings {
		if inn.BattingTeamID != teamID || inn.IsSuperOver {
			continue
		}
		counted++
		s.TotalRuns += inn.Runs
		s.HighestTotal = max(s.HighestTotal, inn.Runs)
	}
	if counted > 0 {
		s.AverageScore = Round2(float64(s.TotalRuns) / float64(counted))
	}
	return s
}

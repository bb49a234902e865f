package match

import (
	"errors"
	"strings"
	"time"
)

type Status string

const (
	StatusUpcoming  Status = "UPCOMING"
	StatusLive      Status = "LIVE"
	StatusCompleted Status = "COMPLETED"
	StatusAbandoned Status = "ABANDONED"
)

// ParseStatus is case-insensitive.
func ParseStatus(v string) (Status, bool) {
	s := Status(strings.ToUpper(strings.TrimSpace(v)))
	switch s {
	case StatusUpcoming, StatusLive, StatusCompleted, StatusAbandoned:
		return s, true
	default:
		return "", false
	}
}

type TossDecision string

const (
	TossDecisionBat  TossDecision = "BAT"
	TossDecisionBowl TossDecision = "BOWL"
)

func ParseTossDecision(v string) (TossDecision, bool) {
	d := TossDecision(strings.ToUpper(strings.TrimSpace(v)))
	switch d {
	case TossDecisionBat, TossDecisionBowl:
		return d, true
	default:
		return "", false
	}
}

// DefaultTargetInningsCount is the regulation number of innings; every super
// over adds another pair.
const DefaultTargetInningsCount = 2

type Match struct {
	ID                 string
	SeriesID           string
	TeamAID            string
	TeamBID            string
	MatchType          string
	Venue              string
	StartAt            time.Time
	Status             Status
	TossWinnerID       string
	TossDecision       TossDecision
	MaxOvers           int
	CurrentInningsID   string
	TargetInningsCount int
	WinnerID           string
	ResultSummary      string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (m Match) Validate() error {
	if m.ID == "" {
		return errors.New("match id is required")
	}
	if m.TeamAID == "" || m.TeamBID == "" {
		return errors.New("match teams are required")
	}
	if m.TeamAID == m.TeamBID {
		return errors.New("match teams must be different")
	}
	if m.MaxOvers < 0 {
		return errors.New("match max overs must be positive")
	}
	return nil
}

func (m Match) HasTeam(teamID string) bool {
	return teamID != "" && (teamID == m.TeamAID || teamID == m.TeamBID)
}

// Opponent returns the other side of teamID, or "" when teamID is not playing.
func (m Match) Opponent(teamID string) string {
	switch teamID {
	case m.TeamAID:
		return m.TeamBID
	case m.TeamBID:
		return m.TeamAID
	default:
		return ""
	}
}

// IsFinal reports whether the match accepts no further scoring or edits.
func (m Match) IsFinal() bool {
	return m.Status == StatusCompleted || m.Status == StatusAbandoned
}

// OversLimit falls back to def when no limit was set at the toss.
func (m Match) OversLimit(def int) int {
	if m.MaxOvers > 0 {
		return m.MaxOvers
	}
	return def
}

// Finalize moves the match to COMPLETED with the given outcome.
func (m *Match) Finalize(winnerID, summary string) {
	m.Status = StatusCompleted
	m.CurrentInningsID = ""
	m.WinnerID = winnerID
	m.ResultSummary = summary
}

// Filter narrows List results. Empty fields match everything.
type Filter struct {
	Status Status
	TeamID string
}

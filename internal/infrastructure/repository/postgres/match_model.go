package postgres

import (
	"database/sql"
	"time"
)

type matchTableModel struct {
	ID                 int64          `db:"id"`
	PublicID           string         `db:"public_id"`
	SeriesID           sql.NullString `db:"series_public_id"`
	TeamAID            string         `db:"team_a_public_id"`
	TeamBID            string         `db:"team_b_public_id"`
	MatchType          string         `db:"match_type"`
	Venue              string         `db:"venue"`
	StartAt            time.Time      `db:"start_at"`
	Status             string         `db:"status"`
	TossWinnerID       sql.NullString `db:"toss_winner_public_id"`
	TossDecision       sql.NullString `db:"toss_decision"`
	MaxOvers           int            `db:"max_overs"`
	CurrentInningsID   sql.NullString `db:"current_innings_public_id"`
	TargetInningsCount int            `db:"target_innings_count"`
	WinnerID           sql.NullString `db:"winner_public_id"`
	ResultSummary      string         `db:"result_summary"`
	CreatedAt          time.Time      `db:"created_at"`
	UpdatedAt          time.Time      `db:"updated_at"`
}

type matchWriteModel struct {
	PublicID           string         `db:"public_id"`
	SeriesID           sql.NullString `db:"series_public_id"`
	TeamAID            string         `db:"team_a_public_id"`
	TeamBID            string         `db:"team_b_public_id"`
	MatchType          string         `db:"match_type"`
	Venue              string         `db:"venue"`
	StartAt            time.Time      `db:"start_at"`
	Status             string         `db:"status"`
	TossWinnerID       sql.NullString `db:"toss_winner_public_id"`
	TossDecision       sql.NullString `db:"toss_decision"`
	MaxOvers           int            `db:"max_overs"`
	CurrentInningsID   sql.NullString `db:"current_innings_public_id"`
	TargetInningsCount int            `db:"target_innings_count"`
	WinnerID           sql.NullString `db:"winner_public_id"`
	ResultSummary      string         `db:"result_summary"`
	CreatedAt          time.Time      `db:"created_at"`
	UpdatedAt          time.Time      `db:"updated_at"`
}

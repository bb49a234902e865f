package postgres

import (
	"database/sql"
	"time"
)

type inningsTableModel struct {
	ID            int64          `db:"id"`
	PublicID      string         `db:"public_id"`
	MatchID       string         `db:"match_public_id"`
	Sequence      int            `db:"sequence"`
	BattingTeamID string         `db:"batting_team_public_id"`
	BowlingTeamID string         `db:"bowling_team_public_id"`
	Runs          int            `db:"runs"`
	Wickets       int            `db:"wickets"`
	Overs         float64        `db:"overs"`
	RunRate       float64        `db:"run_rate"`
	FallOfWickets []byte         `db:"fall_of_wickets"`
	StrikerID     sql.NullString `db:"striker_public_id"`
	NonStrikerID  sql.NullString `db:"non_striker_public_id"`
	BowlerID      sql.NullString `db:"bowler_public_id"`
	IsCompleted   bool           `db:"is_completed"`
	IsSuperOver   bool           `db:"is_super_over"`
	ManualTotals  bool           `db:"manual_totals"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
}

// fall_of_wickets is sent as text so the driver does not encode it as bytea.
type inningsWriteModel struct {
	PublicID      string         `db:"public_id"`
	MatchID       string         `db:"match_public_id"`
	Sequence      int            `db:"sequence"`
	BattingTeamID string         `db:"batting_team_public_id"`
	BowlingTeamID string         `db:"bowling_team_public_id"`
	Runs          int            `db:"runs"`
	Wickets       int            `db:"wickets"`
	Overs         float64        `db:"overs"`
	RunRate       float64        `db:"run_rate"`
	FallOfWickets string         `db:"fall_of_wickets"`
	StrikerID     sql.NullString `db:"striker_public_id"`
	NonStrikerID  sql.NullString `db:"non_striker_public_id"`
	BowlerID      sql.NullString `db:"bowler_public_id"`
	IsCompleted   bool           `db:"is_completed"`
	IsSuperOver   bool           `db:"is_super_over"`
	ManualTotals  bool           `db:"manual_totals"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
}

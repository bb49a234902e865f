package postgres

import (
	"database/sql"
	"time"
)

type deliveryTableModel struct {
	ID                 int64          `db:"id"`
	PublicID           string         `db:"public_id"`
	MatchID            string         `db:"match_public_id"`
	InningsID          string         `db:"innings_public_id"`
	OverNumber         int            `db:"over_number"`
	BallInOver         int            `db:"ball_in_over"`
	BatsmanID          string         `db:"batsman_public_id"`
	BowlerID           string         `db:"bowler_public_id"`
	Runs               int            `db:"runs"`
	IsWide             bool           `db:"is_wide"`
	IsNoBall           bool           `db:"is_no_ball"`
	IsWicket           bool           `db:"is_wicket"`
	DismissalType      string         `db:"dismissal_type"`
	DismissedBatsmanID sql.NullString `db:"dismissed_batsman_public_id"`
	CreatedAt          time.Time      `db:"created_at"`
}

type deliveryInsertModel struct {
	PublicID           string         `db:"public_id"`
	MatchID            string         `db:"match_public_id"`
	InningsID          string         `db:"innings_public_id"`
	OverNumber         int            `db:"over_number"`
	BallInOver         int            `db:"ball_in_over"`
	BatsmanID          string         `db:"batsman_public_id"`
	BowlerID           string         `db:"bowler_public_id"`
	Runs               int            `db:"runs"`
	IsWide             bool           `db:"is_wide"`
	IsNoBall           bool           `db:"is_no_ball"`
	IsWicket           bool           `db:"is_wicket"`
	DismissalType      string         `db:"dismissal_type"`
	DismissedBatsmanID sql.NullString `db:"dismissed_batsman_public_id"`
	CreatedAt          time.Time      `db:"created_at"`
}

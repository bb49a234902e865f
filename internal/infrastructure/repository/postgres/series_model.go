package postgres

import (
	"database/sql"
	"time"
)

type seriesTableModel struct {
	ID          int64        `db:"id"`
	PublicID    string       `db:"public_id"`
	Name        string       `db:"name"`
	StartDate   sql.NullTime `db:"start_date"`
	EndDate     sql.NullTime `db:"end_date"`
	Description string       `db:"description"`
	CreatedAt   time.Time    `db:"created_at"`
	UpdatedAt   time.Time    `db:"updated_at"`
	DeletedAt   *time.Time   `db:"deleted_at"`
}

type seriesInsertModel struct {
	PublicID    string       `db:"public_id"`
	Name        string       `db:"name"`
	StartDate   sql.NullTime `db:"start_date"`
	EndDate     sql.NullTime `db:"end_date"`
	Description string       `db:"description"`
	CreatedAt   time.Time    `db:"created_at"`
}

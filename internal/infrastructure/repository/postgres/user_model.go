package postgres

import "time"

type adminUserTableModel struct {
	ID           int64     `db:"id"`
	PublicID     string    `db:"public_id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

type adminUserInsertModel struct {
	PublicID     string    `db:"public_id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

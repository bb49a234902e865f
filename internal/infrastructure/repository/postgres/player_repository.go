package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/player"
	qb "github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	return r.list(ctx, "players")
}

func (r *PlayerRepository) ListByTeam(ctx context.Context, teamID string) ([]player.Player, error) {
	return r.list(ctx, "players by team", qb.Eq("team_public_id", teamID))
}

func (r *PlayerRepository) list(ctx context.Context, what string, conditions ...qb.Condition) ([]player.Player, error) {
	query, args, err := qb.Select("*").From("players").
		Where(append(conditions, qb.IsNull("deleted_at"))...).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select %s query: %w", what, err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select %s: %w", what, err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerFromRow(row))
	}
	return out, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	query, args, err := qb.Select("*").From("players").
		Where(
			qb.Eq("public_id", playerID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build get player by id query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("get player by id: %w", err)
	}
	return playerFromRow(row), true, nil
}

func (r *PlayerRepository) Create(ctx context.Context, item player.Player) error {
	query, args, err := qb.InsertModel("players", playerWriteModelFrom(item), "")
	if err != nil {
		return fmt.Errorf("build create player query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("create player: %w", err)
	}
	return nil
}

func (r *PlayerRepository) Update(ctx context.Context, item player.Player) error {
	query, args, err := qb.UpdateModel("players", playerWriteModelFrom(item),
		[]string{"public_id", "created_at"},
		qb.Eq("public_id", item.ID),
		qb.IsNull("deleted_at"),
	)
	if err != nil {
		return fmt.Errorf("build update player query: %w", err)
	}
	return execAffectingOne(ctx, r.db, "update player", query, args)
}

func (r *PlayerRepository) Delete(ctx context.Context, playerID string) error {
	query, args, err := qb.Update("players").
		SetExpr("deleted_at", "NOW()").
		Where(
			qb.Eq("public_id", playerID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build soft delete player query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("soft delete player: %w", err)
	}
	return nil
}

func playerWriteModelFrom(item player.Player) playerWriteModel {
	return playerWriteModel{
		PublicID:     item.ID,
		TeamID:       item.TeamID,
		Name:         item.Name,
		Role:         string(item.Role),
		BattingStyle: item.BattingStyle,
		BowlingStyle: item.BowlingStyle,
		CreatedAt:    item.CreatedAt,
		UpdatedAt:    item.UpdatedAt,
	}
}

func playerFromRow(row playerTableModel) player.Player {
	return player.Player{
		ID:           row.PublicID,
		Name:         row.Name,
		TeamID:       row.TeamID,
		Role:         player.Role(row.Role),
		BattingStyle: row.BattingStyle,
		BowlingStyle: row.BowlingStyle,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

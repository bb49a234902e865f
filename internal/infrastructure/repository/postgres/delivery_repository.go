package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/delivery"
	qb "github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/platform/querybuilder"
)

type DeliveryRepository struct {
	db *sqlx.DB
}

func NewDeliveryRepository(db *sqlx.DB) *DeliveryRepository {
	return &DeliveryRepository{db: db}
}

func (r *DeliveryRepository) ListByInnings(ctx context.Context, inningsID string) ([]delivery.Delivery, error) {
	return r.list(ctx, "deliveries by innings", qb.Eq("innings_public_id", inningsID))
}

func (r *DeliveryRepository) ListByMatch(ctx context.Context, matchID string) ([]delivery.Delivery, error) {
	return r.list(ctx, "deliveries by match", qb.Eq("match_public_id", matchID))
}

func (r *DeliveryRepository) ListByPlayer(ctx context.Context, playerID string) ([]delivery.Delivery, error) {
	return r.list(ctx, "deliveries by player", qb.AnyOf(
		qb.Eq("batsman_public_id", playerID),
		qb.Eq("bowler_public_id", playerID),
		qb.Eq("dismissed_batsman_public_id", playerID),
	))
}

func (r *DeliveryRepository) ListAll(ctx context.Context) ([]delivery.Delivery, error) {
	return r.list(ctx, "deliveries")
}

func (r *DeliveryRepository) list(ctx context.Context, what string, conditions ...qb.Condition) ([]delivery.Delivery, error) {
	query, args, err := qb.Select("*").From("deliveries").
		Where(conditions...).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select %s query: %w", what, err)
	}

	var rows []deliveryTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select %s: %w", what, err)
	}

	out := make([]delivery.Delivery, 0, len(rows))
	for _, row := range rows {
		out = append(out, delivery.Delivery{
			ID:                 row.PublicID,
			MatchID:            row.MatchID,
			InningsID:          row.InningsID,
			OverNumber:         row.OverNumber,
			BallInOver:         row.BallInOver,
			BatsmanID:          row.BatsmanID,
			BowlerID:           row.BowlerID,
			Runs:               row.Runs,
			IsWide:             row.IsWide,
			IsNoBall:           row.IsNoBall,
			IsWicket:           row.IsWicket,
			DismissalType:      row.DismissalType,
			DismissedBatsmanID: row.DismissedBatsmanID.String,
			CreatedAt:          row.CreatedAt,
		})
	}
	return out, nil
}

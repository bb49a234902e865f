package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/delivery"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/innings"
	qb "github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/platform/querybuilder"
)

// ScoringLedger inserts a delivery and updates its innings in one transaction.
type ScoringLedger struct {
	db *sqlx.DB
}

func NewScoringLedger(db *sqlx.DB) *ScoringLedger {
	return &ScoringLedger{db: db}
}

func (l *ScoringLedger) Append(ctx context.Context, item delivery.Delivery, updated innings.Innings) error {
	if item.InningsID != updated.ID {
		return fmt.Errorf("delivery innings %s does not match innings %s", item.InningsID, updated.ID)
	}

	tx, err := l.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx append delivery: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query, args, err := qb.InsertModel("deliveries", deliveryInsertModel{
		PublicID:           item.ID,
		MatchID:            item.MatchID,
		InningsID:          item.InningsID,
		OverNumber:         item.OverNumber,
		BallInOver:         item.BallInOver,
		BatsmanID:          item.BatsmanID,
		BowlerID:           item.BowlerID,
		Runs:               item.Runs,
		IsWide:             item.IsWide,
		IsNoBall:           item.IsNoBall,
		IsWicket:           item.IsWicket,
		DismissalType:      item.DismissalType,
		DismissedBatsmanID: nullString(item.DismissedBatsmanID),
		CreatedAt:          item.CreatedAt,
	}, "")
	if err != nil {
		return fmt.Errorf("build insert delivery query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert delivery: %w", err)
	}

	if err := updateInnings(ctx, tx, updated); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit append delivery tx: %w", err)
	}
	return nil
}

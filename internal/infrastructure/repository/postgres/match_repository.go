package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/match"
	qb "github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) List(ctx context.Context, filter match.Filter) ([]match.Match, error) {
	var conditions []qb.Condition
	if filter.Status != "" {
		conditions = append(conditions, qb.Eq("status", string(filter.Status)))
	}
	if filter.TeamID != "" {
		conditions = append(conditions, qb.AnyOf(
			qb.Eq("team_a_public_id", filter.TeamID),
			qb.Eq("team_b_public_id", filter.TeamID),
		))
	}

	query, args, err := qb.Select("*").From("matches").
		Where(conditions...).
		OrderBy("start_at DESC", "public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matches: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchFromRow(row))
	}
	return out, nil
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID string) (match.Match, bool, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(qb.Eq("public_id", matchID)).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build get match by id query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("get match by id: %w", err)
	}
	return matchFromRow(row), true, nil
}

func (r *MatchRepository) Create(ctx context.Context, item match.Match) error {
	query, args, err := qb.InsertModel("matches", matchWriteModelFrom(item), "")
	if err != nil {
		return fmt.Errorf("build create match query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("create match: %w", err)
	}
	return nil
}

func (r *MatchRepository) Update(ctx context.Context, item match.Match) error {
	query, args, err := qb.UpdateModel("matches", matchWriteModelFrom(item),
		[]string{"public_id", "created_at"},
		qb.Eq("public_id", item.ID),
	)
	if err != nil {
		return fmt.Errorf("build update match query: %w", err)
	}
	return execAffectingOne(ctx, r.db, "update match", query, args)
}

func (r *MatchRepository) Delete(ctx context.Context, matchID string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx delete match: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, table := range []string{"deliveries", "innings"} {
		query, args, err := qb.DeleteFrom(table).Where(qb.Eq("match_public_id", matchID)).ToSQL()
		if err != nil {
			return fmt.Errorf("build delete %s by match query: %w", table, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("delete %s by match: %w", table, err)
		}
	}

	query, args, err := qb.DeleteFrom("matches").Where(qb.Eq("public_id", matchID)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete match query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete match: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete match tx: %w", err)
	}
	return nil
}

func matchWriteModelFrom(item match.Match) matchWriteModel {
	return matchWriteModel{
		PublicID:           item.ID,
		SeriesID:           nullString(item.SeriesID),
		TeamAID:            item.TeamAID,
		TeamBID:            item.TeamBID,
		MatchType:          item.MatchType,
		Venue:              item.Venue,
		StartAt:            item.StartAt,
		Status:             string(item.Status),
		TossWinnerID:       nullString(item.TossWinnerID),
		TossDecision:       nullString(string(item.TossDecision)),
		MaxOvers:           item.MaxOvers,
		CurrentInningsID:   nullString(item.CurrentInningsID),
		TargetInningsCount: item.TargetInningsCount,
		WinnerID:           nullString(item.WinnerID),
		ResultSummary:      item.ResultSummary,
		CreatedAt:          item.CreatedAt,
		UpdatedAt:          item.UpdatedAt,
	}
}

func matchFromRow(row matchTableModel) match.Match {
	return match.Match{
		ID:                 row.PublicID,
		SeriesID:           row.SeriesID.String,
		TeamAID:            row.TeamAID,
		TeamBID:            row.TeamBID,
		MatchType:          row.MatchType,
		Venue:              row.Venue,
		StartAt:            row.StartAt,
		Status:             match.Status(row.Status),
		TossWinnerID:       row.TossWinnerID.String,
		TossDecision:       match.TossDecision(row.TossDecision.String),
		MaxOvers:           row.MaxOvers,
		CurrentInningsID:   row.CurrentInningsID.String,
		TargetInningsCount: row.TargetInningsCount,
		WinnerID:           row.WinnerID.String,
		ResultSummary:      row.ResultSummary,
		CreatedAt:          row.CreatedAt,
		UpdatedAt:          row.UpdatedAt,
	}
}

package postgres

import (
	"context"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/jmoiron/sqlx"

	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/innings"
	qb "github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/platform/querybuilder"
)

type InningsRepository struct {
	db *sqlx.DB
}

func NewInningsRepository(db *sqlx.DB) *InningsRepository {
	return &InningsRepository{db: db}
}

func (r *InningsRepository) GetByID(ctx context.Context, inningsID string) (innings.Innings, bool, error) {
	query, args, err := qb.Select("*").From("innings").
		Where(qb.Eq("public_id", inningsID)).
		ToSQL()
	if err != nil {
		return innings.Innings{}, false, fmt.Errorf("build get innings by id query: %w", err)
	}

	var row inningsTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return innings.Innings{}, false, nil
		}
		return innings.Innings{}, false, fmt.Errorf("get innings by id: %w", err)
	}
	return inningsFromRow(row)
}

func (r *InningsRepository) ListByMatch(ctx context.Context, matchID string) ([]innings.Innings, error) {
	return r.list(ctx, "innings by match", qb.Eq("match_public_id", matchID))
}

func (r *InningsRepository) ListByTeam(ctx context.Context, battingTeamID string) ([]innings.Innings, error) {
	return r.list(ctx, "innings by team", qb.Eq("batting_team_public_id", battingTeamID))
}

func (r *InningsRepository) list(ctx context.Context, what string, cond qb.Condition) ([]innings.Innings, error) {
	query, args, err := qb.Select("*").From("innings").
		Where(cond).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select %s query: %w", what, err)
	}

	var rows []inningsTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select %s: %w", what, err)
	}

	out := make([]innings.Innings, 0, len(rows))
	for _, row := range rows {
		item, _, err := inningsFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *InningsRepository) Create(ctx context.Context, item innings.Innings) error {
	model, err := inningsWriteModelFrom(item)
	if err != nil {
		return err
	}
	query, args, err := qb.InsertModel("innings", model, "")
	if err != nil {
		return fmt.Errorf("build create innings query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("create innings: %w", err)
	}
	return nil
}

func (r *InningsRepository) Update(ctx context.Context, item innings.Innings) error {
	return updateInnings(ctx, r.db, item)
}

func updateInnings(ctx context.Context, db execer, item innings.Innings) error {
	model, err := inningsWriteModelFrom(item)
	if err != nil {
		return err
	}
	query, args, err := qb.UpdateModel("innings", model,
		[]string{"public_id", "match_public_id", "sequence", "created_at"},
		qb.Eq("public_id", item.ID),
	)
	if err != nil {
		return fmt.Errorf("build update innings query: %w", err)
	}
	return execAffectingOne(ctx, db, "update innings", query, args)
}

func encodeFallOfWickets(items []innings.FallOfWicket) ([]byte, error) {
	if len(items) == 0 {
		return []byte("[]"), nil
	}
	raw, err := sonic.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("encode fall of wickets: %w", err)
	}
	return raw, nil
}

func decodeFallOfWickets(raw []byte) ([]innings.FallOfWicket, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var out []innings.FallOfWicket
	if err := sonic.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode fall of wickets: %w", err)
	}
	return out, nil
}

func inningsWriteModelFrom(item innings.Innings) (inningsWriteModel, error) {
	fow, err := encodeFallOfWickets(item.FallOfWickets)
	if err != nil {
		return inningsWriteModel{}, err
	}
	return inningsWriteModel{
		PublicID:      item.ID,
		MatchID:       item.MatchID,
		Sequence:      item.Sequence,
		BattingTeamID: item.BattingTeamID,
		BowlingTeamID: item.BowlingTeamID,
		Runs:          item.Runs,
		Wickets:       item.Wickets,
		Overs:         item.Overs,
		RunRate:       item.RunRate,
		FallOfWickets: string(fow),
		StrikerID:     nullString(item.StrikerID),
		NonStrikerID:  nullString(item.NonStrikerID),
		BowlerID:      nullString(item.BowlerID),
		IsCompleted:   item.IsCompleted,
		IsSuperOver:   item.IsSuperOver,
		ManualTotals:  item.ManualTotals,
		CreatedAt:     item.CreatedAt,
		UpdatedAt:     item.UpdatedAt,
	}, nil
}

func inningsFromRow(row inningsTableModel) (innings.Innings, bool, error) {
	fow, err := decodeFallOfWickets(row.FallOfWickets)
	if err != nil {
		return innings.Innings{}, false, fmt.Errorf("innings %s: %w", row.PublicID, err)
	}
	return innings.Innings{
		ID:            row.PublicID,
		MatchID:       row.MatchID,
		Sequence:      row.Sequence,
		BattingTeamID: row.BattingTeamID,
		BowlingTeamID: row.BowlingTeamID,
		Runs:          row.Runs,
		Wickets:       row.Wickets,
		Overs:         row.Overs,
		RunRate:       row.RunRate,
		FallOfWickets: fow,
		StrikerID:     row.StrikerID.String,
		NonStrikerID:  row.NonStrikerID.String,
		BowlerID:      row.BowlerID.String,
		IsCompleted:   row.IsCompleted,
		IsSuperOver:   row.IsSuperOver,
		ManualTotals:  row.ManualTotals,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}, true, nil
}

package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/series"
	qb "github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/platform/querybuilder"
)

type SeriesRepository struct {
	db *sqlx.DB
}

func NewSeriesRepository(db *sqlx.DB) *SeriesRepository {
	return &SeriesRepository{db: db}
}

func (r *SeriesRepository) List(ctx context.Context) ([]series.Series, error) {
	query, args, err := qb.Select("*").From("series").
		Where(qb.IsNull("deleted_at")).
		OrderBy("created_at DESC", "id DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select series query: %w", err)
	}

	var rows []seriesTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select series: %w", err)
	}

	out := make([]series.Series, 0, len(rows))
	for _, row := range rows {
		out = append(out, seriesFromRow(row))
	}
	return out, nil
}

func (r *SeriesRepository) GetByID(ctx context.Context, seriesID string) (series.Series, bool, error) {
	query, args, err := qb.Select("*").From("series").
		Where(
			qb.Eq("public_id", seriesID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return series.Series{}, false, fmt.Errorf("build get series by id query: %w", err)
	}

	var row seriesTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return series.Series{}, false, nil
		}
		return series.Series{}, false, fmt.Errorf("get series by id: %w", err)
	}
	return seriesFromRow(row), true, nil
}

func (r *SeriesRepository) Create(ctx context.Context, item series.Series) error {
	query, args, err := qb.InsertModel("series", seriesInsertModel{
		PublicID:    item.ID,
		Name:        item.Name,
		StartDate:   nullTime(item.StartDate),
		EndDate:     nullTime(item.EndDate),
		Description: item.Description,
		CreatedAt:   item.CreatedAt,
	}, "")
	if err != nil {
		return fmt.Errorf("build create series query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("create series: %w", err)
	}
	return nil
}

func seriesFromRow(row seriesTableModel) series.Series {
	return series.Series{
		ID:          row.PublicID,
		Name:        row.Name,
		StartDate:   timePtr(row.StartDate),
		EndDate:     timePtr(row.EndDate),
		Description: row.Description,
		CreatedAt:   row.CreatedAt,
	}
}

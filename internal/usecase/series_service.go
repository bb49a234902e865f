package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/series"
	idgen "github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/platform/id"
)

type CreateSeriesInput struct {
	Name        string
	StartDate   *time.Time
	EndDate     *time.Time
	Description string
}

type SeriesService struct {
	seriesRepo series.Repository
	idGen      idgen.Generator
	now        func() time.Time
}

func NewSeriesService(seriesRepo series.Repository, idGen idgen.Generator) *SeriesService {
	return &SeriesService{seriesRepo: seriesRepo, idGen: idGen, now: time.Now}
}

func (s *SeriesService) ListSeries(ctx context.Context) ([]series.Series, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeriesService.ListSeries")
	defer span.End()

	items, err := s.seriesRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list series: %w", err)
	}
	return items, nil
}

func (s *SeriesService) CreateSeries(ctx context.Context, input CreateSeriesInput) (series.Series, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeriesService.CreateSeries")
	defer span.End()

	seriesID, err := s.idGen.NewID()
	if err != nil {
		return series.Series{}, fmt.Errorf("generate series id: %w", err)
	}
	item := series.Series{
		ID:          seriesID,
		Name:        strings.TrimSpace(input.Name),
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Description: strings.TrimSpace(input.Description),
		CreatedAt:   s.now().UTC(),
	}
	if err := item.Validate(); err != nil {
		return series.Series{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.seriesRepo.Create(ctx, item); err != nil {
		return series.Series{}, fmt.Errorf("create series: %w", err)
	}
	return item, nil
}

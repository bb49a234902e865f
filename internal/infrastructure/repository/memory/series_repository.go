package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/series"
)

type SeriesRepository struct {
	mu     sync.RWMutex
	items  map[string]series.Series
	orders []string
}

func NewSeriesRepository() *SeriesRepository {
	return &SeriesRepository{items: make(map[string]series.Series)}
}

// List returns the newest series first.
func (r *SeriesRepository) List(_ context.Context) ([]series.Series, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]series.Series, 0, len(r.orders))
	for i := len(r.orders) - 1; i >= 0; i-- {
		out = append(out, r.items[r.orders[i]])
	}
	return out, nil
}

func (r *SeriesRepository) GetByID(_ context.Context, seriesID string) (series.Series, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.items[seriesID]
	return s, ok, nil
}

func (r *SeriesRepository) Create(_ context.Context, item series.Series) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ID]; exists {
		return fmt.Errorf("series %s already exists", item.ID)
	}
	r.items[item.ID] = item
	r.orders = append(r.orders, item.ID)
	return nil
}

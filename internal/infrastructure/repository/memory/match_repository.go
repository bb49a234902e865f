package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/match"
)

// MatchRepository cascades deletes into the innings and delivery stores it
// was built with.
type MatchRepository struct {
	mu         sync.RWMutex
	items      map[string]match.Match
	innings    *InningsRepository
	deliveries *DeliveryRepository
}

func NewMatchRepository(innings *InningsRepository, deliveries *DeliveryRepository) *MatchRepository {
	return &MatchRepository{
		items:      make(map[string]match.Match),
		innings:    innings,
		deliveries: deliveries,
	}
}

func (r *MatchRepository) List(_ context.Context, filter match.Filter) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0, len(r.items))
	for _, m := range r.items {
		if filter.Status != "" && m.Status != filter.Status {
			continue
		}
		if filter.TeamID != "" && !m.HasTeam(filter.TeamID) {
			continue
		}
		out = append(out, m)
	}
	slices.SortFunc(out, func(a, b match.Match) int {
		if c := b.StartAt.Compare(a.StartAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out, nil
}

func (r *MatchRepository) GetByID(_ context.Context, matchID string) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.items[matchID]
	return m, ok, nil
}

func (r *MatchRepository) Create(_ context.Context, item match.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ID]; exists {
		return fmt.Errorf("match %s already exists", item.ID)
	}
	r.items[item.ID] = item
	return nil
}

func (r *MatchRepository) Update(_ context.Context, item match.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ID]; !exists {
		return fmt.Errorf("match %s not found", item.ID)
	}
	r.items[item.ID] = item
	return nil
}

func (r *MatchRepository) Delete(_ context.Context, matchID string) error {
	r.mu.Lock()
	delete(r.items, matchID)
	r.mu.Unlock()

	if r.deliveries != nil {
		r.deliveries.deleteByMatch(matchID)
	}
	if r.innings != nil {
		r.innings.deleteByMatch(matchID)
	}
	return nil
}

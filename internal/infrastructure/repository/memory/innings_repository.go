package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/innings"
)

type InningsRepository struct {
	mu     sync.RWMutex
	items  map[string]innings.Innings
	orders []string
}

func NewInningsRepository() *InningsRepository {
	return &InningsRepository{items: make(map[string]innings.Innings)}
}

func (r *InningsRepository) GetByID(_ context.Context, inningsID string) (innings.Innings, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	inn, ok := r.items[inningsID]
	if !ok {
		return innings.Innings{}, false, nil
	}
	return inn.Clone(), true, nil
}

func (r *InningsRepository) ListByMatch(_ context.Context, matchID string) ([]innings.Innings, error) {
	return r.filter(func(inn innings.Innings) bool { return inn.MatchID == matchID }), nil
}

func (r *InningsRepository) ListByTeam(_ context.Context, battingTeamID string) ([]innings.Innings, error) {
	return r.filter(func(inn innings.Innings) bool { return inn.BattingTeamID == battingTeamID }), nil
}

func (r *InningsRepository) Create(_ context.Context, item innings.Innings) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ID]; exists {
		return fmt.Errorf("innings %s already exists", item.ID)
	}
	r.items[item.ID] = item.Clone()
	r.orders = append(r.orders, item.ID)
	return nil
}

func (r *InningsRepository) Update(_ context.Context, item innings.Innings) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.updateLocked(item)
}

func (r *InningsRepository) updateLocked(item innings.Innings) error {
	if _, exists := r.items[item.ID]; !exists {
		return fmt.Errorf("innings %s not found", item.ID)
	}
	r.items[item.ID] = item.Clone()
	return nil
}

func (r *InningsRepository) filter(keep func(innings.Innings) bool) []innings.Innings {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []innings.Innings
	for _, id := range r.orders {
		if inn := r.items[id]; keep(inn) {
			out = append(out, inn.Clone())
		}
	}
	return out
}

func (r *InningsRepository) deleteByMatch(matchID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders = slices.DeleteFunc(r.orders, func(id string) bool {
		if r.items[id].MatchID == matchID {
			delete(r.items, id)
			return true
		}
		return false
	})
}

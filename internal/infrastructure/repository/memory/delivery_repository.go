package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/delivery"
)

// DeliveryRepository keeps the log as a slice so creation order is the
// slice order.
type DeliveryRepository struct {
	mu    sync.RWMutex
	items []delivery.Delivery
}

func NewDeliveryRepository() *DeliveryRepository {
	return &DeliveryRepository{}
}

func (r *DeliveryRepository) ListByInnings(_ context.Context, inningsID string) ([]delivery.Delivery, error) {
	return r.filter(func(d delivery.Delivery) bool { return d.InningsID == inningsID }), nil
}

func (r *DeliveryRepository) ListByMatch(_ context.Context, matchID string) ([]delivery.Delivery, error) {
	return r.filter(func(d delivery.Delivery) bool { return d.MatchID == matchID }), nil
}

func (r *DeliveryRepository) ListByPlayer(_ context.Context, playerID string) ([]delivery.Delivery, error) {
	return r.filter(func(d delivery.Delivery) bool {
		return d.BatsmanID == playerID || d.BowlerID == playerID || d.DismissedBatsmanID == playerID
	}), nil
}

func (r *DeliveryRepository) ListAll(_ context.Context) ([]delivery.Delivery, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.items), nil
}

func (r *DeliveryRepository) filter(keep func(delivery.Delivery) bool) []delivery.Delivery {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []delivery.Delivery
	for _, d := range r.items {
		if keep(d) {
			out = append(out, d)
		}
	}
	return out
}

func (r *DeliveryRepository) deleteByMatch(matchID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = slices.DeleteFunc(r.items, func(d delivery.Delivery) bool { return d.MatchID == matchID })
}

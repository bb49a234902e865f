package memory

import (
	"context"
	"fmt"

	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/delivery"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/innings"
)

// ScoringLedger writes a delivery and its innings totals under both store
// locks so readers never see one without the other.
type ScoringLedger struct {
	deliveries *DeliveryRepository
	innings    *InningsRepository
}

func NewScoringLedger(deliveries *DeliveryRepository, innings *InningsRepository) *ScoringLedger {
	return &ScoringLedger{deliveries: deliveries, innings: innings}
}

func (l *ScoringLedger) Append(_ context.Context, item delivery.Delivery, updated innings.Innings) error {
	l.innings.mu.Lock()
	defer l.innings.mu.Unlock()
	l.deliveries.mu.Lock()
	defer l.deliveries.mu.Unlock()

	if item.InningsID != updated.ID {
		return fmt.Errorf("delivery innings %s does not match innings %s", item.InningsID, updated.ID)
	}
	if err := l.innings.updateLocked(updated); err != nil {
		return err
	}
	l.deliveries.items = append(l.deliveries.items, item)
	return nil
}

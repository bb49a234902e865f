package scoring

import (
	"context"

	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/delivery"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/innings"
)

// Ledger persists a delivery and the innings totals it produced as one unit.
type Ledger interface {
	Append(ctx context.Context, item delivery.Delivery, updated innings.Innings) error
}

package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/delivery"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/innings"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/match"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/matchevent"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/scoring"
	idgen "github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/platform/id"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/platform/logging"
)

type RecordDeliveryInput struct {
	MatchID            string
	InningsID          string
	BatsmanID          string
	BowlerID           string
	Runs               int
	IsWide             bool
	IsNoBall           bool
	IsWicket           bool
	DismissalType      string
	DismissedBatsmanID string
}

type RecordDeliveryResult struct {
	Delivery delivery.Delivery
	Innings  innings.Innings
}

type SetActivePairInput struct {
	MatchID      string
	InningsID    string
	StrikerID    string
	NonStrikerID string
	BowlerID     string
}

// ScoringService owns the delivery log and keeps each innings' totals equal
// to a recomputation of its log.
type ScoringService struct {
	matchRepo    match.Repository
	inningsRepo  innings.Repository
	deliveryRepo delivery.Repository
	ledger       scoring.Ledger
	locker       Locker
	publisher    matchevent.Publisher
	idGen        idgen.Generator
	logger       *logging.Logger
	now          func() time.Time
}

func NewScoringService(
	matchRepo match.Repository,
	inningsRepo innings.Repository,
	deliveryRepo delivery.Repository,
	ledger scoring.Ledger,
	locker Locker,
	publisher matchevent.Publisher,
	idGen idgen.Generator,
	logger *logging.Logger,
) *ScoringService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ScoringService{
		matchRepo:    matchRepo,
		inningsRepo:  inningsRepo,
		deliveryRepo: deliveryRepo,
		ledger:       ledger,
		locker:       locker,
		publisher:    publisher,
		idGen:        idGen,
		logger:       logger,
		now:          time.Now,
	}
}

func (s *ScoringService) RecordDelivery(ctx context.Context, input RecordDeliveryInput) (RecordDeliveryResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.RecordDelivery", matchAttr(input.MatchID), inningsAttr(input.InningsID))
	defer span.End()

	input = normalizeRecordDeliveryInput(input)
	if err := validateRecordDeliveryInput(input); err != nil {
		return RecordDeliveryResult{}, err
	}

	unlock, err := acquire(ctx, s.locker, inningsLockKey(input.InningsID))
	if err != nil {
		return RecordDeliveryResult{}, err
	}
	result, err := s.recordLocked(ctx, input)
	unlock()
	if err != nil {
		return RecordDeliveryResult{}, err
	}

	publish(ctx, s.publisher, s.logger, matchevent.Event{
		Type:       matchevent.TypeScoreUpdated,
		MatchID:    input.MatchID,
		Payload:    result.Innings,
		OccurredAt: s.now().UTC(),
	})
	if result.Delivery.IsLegal() && result.Delivery.BallInOver == delivery.BallsPerOver {
		publish(ctx, s.publisher, s.logger, matchevent.Event{
			Type:       matchevent.TypeOverUpdated,
			MatchID:    input.MatchID,
			Payload:    result.Delivery,
			OccurredAt: s.now().UTC(),
		})
	}

	return result, nil
}

func (s *ScoringService) recordLocked(ctx context.Context, input RecordDeliveryInput) (RecordDeliveryResult, error) {
	inn, m, err := s.loadScorableInnings(ctx, input.MatchID, input.InningsID)
	if err != nil {
		return RecordDeliveryResult{}, err
	}
	if m.IsFinal() {
		return RecordDeliveryResult{}, fmt.Errorf("%w: match %s is %s", ErrInvalidState, m.ID, m.Status)
	}
	if inn.IsCompleted {
		return RecordDeliveryResult{}, fmt.Errorf("%w: innings %s is completed", ErrInvalidState, inn.ID)
	}

	prior, err := s.deliveryRepo.ListByInnings(ctx, inn.ID)
	if err != nil {
		return RecordDeliveryResult{}, fmt.Errorf("list innings deliveries: %w", err)
	}
	if _, out := scoring.DismissedBatsmen(inn, prior)[input.BatsmanID]; out {
		return RecordDeliveryResult{}, fmt.Errorf("%w: batsman %s is already out in this innings", ErrAlreadyDismissed, input.BatsmanID)
	}
	if input.IsWicket && inn.Wickets >= innings.MaxWickets {
		return RecordDeliveryResult{}, fmt.Errorf("%w: innings %s is all out", ErrInvalidState, inn.ID)
	}

	deliveryID, err := s.idGen.NewID()
	if err != nil {
		return RecordDeliveryResult{}, fmt.Errorf("generate delivery id: %w", err)
	}
	now := s.now().UTC()
	stamped, updated := scoring.Score(inn, prior, delivery.Delivery{
		ID:                 deliveryID,
		MatchID:            m.ID,
		InningsID:          inn.ID,
		BatsmanID:          input.BatsmanID,
		BowlerID:           input.BowlerID,
		Runs:               input.Runs,
		IsWide:             input.IsWide,
		IsNoBall:           input.IsNoBall,
		IsWicket:           input.IsWicket,
		DismissalType:      input.DismissalType,
		DismissedBatsmanID: input.DismissedBatsmanID,
		CreatedAt:          now,
	})
	updated.UpdatedAt = now

	if err := s.ledger.Append(ctx, stamped, updated); err != nil {
		return RecordDeliveryResult{}, fmt.Errorf("append delivery: %w", err)
	}

	s.logger.DebugContext(ctx, "delivery recorded",
		"match_id", m.ID,
		"innings_id", inn.ID,
		"over", stamped.OverNumber,
		"ball", stamped.BallInOver,
		"runs", updated.Runs,
		"wickets", updated.Wickets,
	)
	return RecordDeliveryResult{Delivery: stamped, Innings: updated}, nil
}

// SetActivePair stores the batsmen at the crease and the bowler so a
// reloaded client resumes without asking again.
func (s *ScoringService) SetActivePair(ctx context.Context, input SetActivePairInput) (innings.Innings, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.SetActivePair", inningsAttr(input.InningsID))
	defer span.End()

	input.MatchID = strings.TrimSpace(input.MatchID)
	input.InningsID = strings.TrimSpace(input.InningsID)
	if input.MatchID == "" {
		return innings.Innings{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	if input.InningsID == "" {
		return innings.Innings{}, fmt.Errorf("%w: innings id is required", ErrInvalidInput)
	}

	unlock, err := acquire(ctx, s.locker, inningsLockKey(input.InningsID))
	if err != nil {
		return innings.Innings{}, err
	}
	defer unlock()

	inn, _, err := s.loadScorableInnings(ctx, input.MatchID, input.InningsID)
	if err != nil {
		return innings.Innings{}, err
	}
	inn.SetActivePair(
		strings.TrimSpace(input.StrikerID),
		strings.TrimSpace(input.NonStrikerID),
		strings.TrimSpace(input.BowlerID),
	)
	inn.UpdatedAt = s.now().UTC()
	if err := s.inningsRepo.Update(ctx, inn); err != nil {
		return innings.Innings{}, fmt.Errorf("update active pair: %w", err)
	}
	return inn, nil
}

// RecomputeInnings rebuilds an innings' totals and fall of wickets from its
// log. Innings whose totals were entered by the skip override are refused.
func (s *ScoringService) RecomputeInnings(ctx context.Context, inningsID string) (innings.Innings, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.RecomputeInnings", inningsAttr(inningsID))
	defer span.End()

	inningsID = strings.TrimSpace(inningsID)
	if inningsID == "" {
		return innings.Innings{}, fmt.Errorf("%w: innings id is required", ErrInvalidInput)
	}

	unlock, err := acquire(ctx, s.locker, inningsLockKey(inningsID))
	if err != nil {
		return innings.Innings{}, err
	}
	defer unlock()

	inn, exists, err := s.inningsRepo.GetByID(ctx, inningsID)
	if err != nil {
		return innings.Innings{}, fmt.Errorf("get innings: %w", err)
	}
	if !exists {
		return innings.Innings{}, fmt.Errorf("%w: innings=%s", ErrNotFound, inningsID)
	}
	if inn.ManualTotals {
		return innings.Innings{}, fmt.Errorf("%w: innings %s has manually entered totals", ErrInvalidState, inningsID)
	}

	items, err := s.deliveryRepo.ListByInnings(ctx, inningsID)
	if err != nil {
		return innings.Innings{}, fmt.Errorf("list innings deliveries: %w", err)
	}
	rebuilt := scoring.Rebuild(inn, items)
	rebuilt.UpdatedAt = s.now().UTC()
	if err := s.inningsRepo.Update(ctx, rebuilt); err != nil {
		return innings.Innings{}, fmt.Errorf("update recomputed innings: %w", err)
	}

	if rebuilt.Runs != inn.Runs || rebuilt.Wickets != inn.Wickets || len(rebuilt.FallOfWickets) != len(inn.FallOfWickets) {
		s.logger.WarnContext(ctx, "innings totals drifted from delivery log",
			"innings_id", inningsID,
			"stored_runs", inn.Runs,
			"derived_runs", rebuilt.Runs,
			"stored_wickets", inn.Wickets,
			"derived_wickets", rebuilt.Wickets,
		)
	}
	return rebuilt, nil
}

func (s *ScoringService) loadScorableInnings(ctx context.Context, matchID, inningsID string) (innings.Innings, match.Match, error) {
	m, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return innings.Innings{}, match.Match{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return innings.Innings{}, match.Match{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}

	inn, exists, err := s.inningsRepo.GetByID(ctx, inningsID)
	if err != nil {
		return innings.Innings{}, match.Match{}, fmt.Errorf("get innings: %w", err)
	}
	if !exists || inn.MatchID != m.ID {
		return innings.Innings{}, match.Match{}, fmt.Errorf("%w: innings=%s match=%s", ErrNotFound, inningsID, matchID)
	}
	return inn, m, nil
}

func normalizeRecordDeliveryInput(input RecordDeliveryInput) RecordDeliveryInput {
	input.MatchID = strings.TrimSpace(input.MatchID)
	input.InningsID = strings.TrimSpace(input.InningsID)
	input.BatsmanID = strings.TrimSpace(input.BatsmanID)
	input.BowlerID = strings.TrimSpace(input.BowlerID)
	input.DismissalType = strings.TrimSpace(input.DismissalType)
	input.DismissedBatsmanID = strings.TrimSpace(input.DismissedBatsmanID)
	return input
}

func validateRecordDeliveryInput(input RecordDeliveryInput) error {
	switch {
	case input.BatsmanID != "" && input.BatsmanID == input.BowlerID:
		return fmt.Errorf("%w: batsman and bowler must be different players", ErrInvalidInput)
	case input.MatchID == "":
		return fmt.Errorf("%w: match id is required", ErrInvalidInput)
	case input.InningsID == "":
		return fmt.Errorf("%w: innings id is required", ErrInvalidInput)
	case input.BatsmanID == "":
		return fmt.Errorf("%w: batsman id is required", ErrInvalidInput)
	case input.BowlerID == "":
		return fmt.Errorf("%w: bowler id is required", ErrInvalidInput)
	case input.Runs < 0:
		return fmt.Errorf("%w: runs must not be negative", ErrInvalidInput)
	case !input.IsWicket && (input.DismissalType != "" || input.DismissedBatsmanID != ""):
		return fmt.Errorf("%w: dismissal details require isWicket", ErrInvalidInput)
	}
	return nil
}

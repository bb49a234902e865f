package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/innings"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/match"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/matchevent"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/series"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/team"
	idgen "github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/platform/id"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/platform/logging"
)

const DefaultMaxOvers = 20

type CreateMatchInput struct {
	SeriesID  string
	TeamAID   string
	TeamBID   string
	MatchType string
	Venue     string
	StartAt   time.Time
}

// UpdateMatchInput patches the fixture fields; nil leaves a field unchanged.
type UpdateMatchInput struct {
	MatchID   string
	SeriesID  *string
	TeamAID   *string
	TeamBID   *string
	MatchType *string
	Venue     *string
	StartAt   *time.Time
}

type SetTossInput struct {
	MatchID      string
	TossWinnerID string
	Decision     string
	MaxOvers     *int
}

type StartInningsInput struct {
	MatchID       string
	BattingTeamID string
	BowlingTeamID string
	IsSuperOver   bool
}

type StartSuperOverInput struct {
	MatchID       string
	BattingTeamID string
}

type CompleteMatchInput struct {
	MatchID        string
	Resolution     string
	ManualWinnerID string
}

// CompleteMatchResult reports the outcome. NeedsResolution is set when AUTO
// found equal scores; the match is then left untouched.
type CompleteMatchResult struct {
	Match           match.Match
	NeedsResolution bool
	IsSuperOver     bool
	Message         string
}

type SkipInningsInput struct {
	MatchID      string
	InningsID    string
	TotalRuns    int
	TotalWickets int
}

type SkipInningsResult struct {
	Match       match.Match
	Skipped     innings.Innings
	NextInnings *innings.Innings
}

type MatchServiceConfig struct {
	DefaultMaxOvers int
}

// MatchService drives the match state machine from toss to result.
type MatchService struct {
	matchRepo   match.Repository
	inningsRepo innings.Repository
	teamRepo    team.Repository
	seriesRepo  series.Repository
	locker      Locker
	publisher   matchevent.Publisher
	idGen       idgen.Generator
	logger      *logging.Logger
	cfg         MatchServiceConfig
	now         func() time.Time
}

func NewMatchService(
	matchRepo match.Repository,
	inningsRepo innings.Repository,
	teamRepo team.Repository,
	seriesRepo series.Repository,
	locker Locker,
	publisher matchevent.Publisher,
	idGen idgen.Generator,
	logger *logging.Logger,
	cfg MatchServiceConfig,
) *MatchService {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.DefaultMaxOvers <= 0 {
		cfg.DefaultMaxOvers = DefaultMaxOvers
	}
	return &MatchService{
		matchRepo:   matchRepo,
		inningsRepo: inningsRepo,
		teamRepo:    teamRepo,
		seriesRepo:  seriesRepo,
		locker:      locker,
		publisher:   publisher,
		idGen:       idGen,
		logger:      logger,
		cfg:         cfg,
		now:         time.Now,
	}
}

func (s *MatchService) CreateMatch(ctx context.Context, input CreateMatchInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.CreateMatch")
	defer span.End()

	input.SeriesID = strings.TrimSpace(input.SeriesID)
	input.TeamAID = strings.TrimSpace(input.TeamAID)
	input.TeamBID = strings.TrimSpace(input.TeamBID)
	input.MatchType = strings.TrimSpace(input.MatchType)
	input.Venue = strings.TrimSpace(input.Venue)
	if input.TeamAID == "" || input.TeamBID == "" {
		return match.Match{}, fmt.Errorf("%w: both teams are required", ErrInvalidInput)
	}
	if input.StartAt.IsZero() {
		return match.Match{}, fmt.Errorf("%w: start time is required", ErrInvalidInput)
	}
	if err := s.validateFixture(ctx, input.SeriesID, input.TeamAID, input.TeamBID); err != nil {
		return match.Match{}, err
	}

	matchID, err := s.idGen.NewID()
	if err != nil {
		return match.Match{}, fmt.Errorf("generate match id: %w", err)
	}
	now := s.now().UTC()
	item := match.Match{
		ID:                 matchID,
		SeriesID:           input.SeriesID,
		TeamAID:            input.TeamAID,
		TeamBID:            input.TeamBID,
		MatchType:          input.MatchType,
		Venue:              input.Venue,
		StartAt:            input.StartAt.UTC(),
		Status:             match.StatusUpcoming,
		TargetInningsCount: match.DefaultTargetInningsCount,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := item.Validate(); err != nil {
		return match.Match{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.matchRepo.Create(ctx, item); err != nil {
		return match.Match{}, fmt.Errorf("create match: %w", err)
	}

	s.logger.InfoContext(ctx, "match created", "match_id", item.ID, "team_a", item.TeamAID, "team_b", item.TeamBID)
	return item, nil
}

// ListMatches filters by status when one is given, newest start first.
func (s *MatchService) ListMatches(ctx context.Context, status string) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListMatches")
	defer span.End()

	var filter match.Filter
	if strings.TrimSpace(status) != "" {
		parsed, ok := match.ParseStatus(status)
		if !ok {
			return nil, fmt.Errorf("%w: unknown match status %q", ErrInvalidInput, status)
		}
		filter.Status = parsed
	}

	items, err := s.matchRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return items, nil
}

func (s *MatchService) GetMatch(ctx context.Context, matchID string) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.GetMatch")
	defer span.End()

	return s.loadMatch(ctx, matchID)
}

func (s *MatchService) UpdateMatch(ctx context.Context, input UpdateMatchInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.UpdateMatch")
	defer span.End()

	var updated match.Match
	err := s.withMatch(ctx, input.MatchID, func(m match.Match) (match.Match, error) {
		if m.Status == match.StatusCompleted {
			return m, fmt.Errorf("%w: completed match %s cannot be edited", ErrInvalidState, m.ID)
		}
		if input.SeriesID != nil {
			m.SeriesID = strings.TrimSpace(*input.SeriesID)
		}
		if input.TeamAID != nil {
			m.TeamAID = strings.TrimSpace(*input.TeamAID)
		}
		if input.TeamBID != nil {
			m.TeamBID = strings.TrimSpace(*input.TeamBID)
		}
		if input.MatchType != nil {
			m.MatchType = strings.TrimSpace(*input.MatchType)
		}
		if input.Venue != nil {
			m.Venue = strings.TrimSpace(*input.Venue)
		}
		if input.StartAt != nil {
			if input.StartAt.IsZero() {
				return m, fmt.Errorf("%w: start time is required", ErrInvalidInput)
			}
			m.StartAt = input.StartAt.UTC()
		}
		if err := s.validateFixture(ctx, m.SeriesID, m.TeamAID, m.TeamBID); err != nil {
			return m, err
		}
		updated = m
		return m, nil
	})
	if err != nil {
		return match.Match{}, err
	}
	return updated, nil
}

// DeleteMatch removes a match that has not completed, together with its
// innings and deliveries.
func (s *MatchService) DeleteMatch(ctx context.Context, matchID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.DeleteMatch")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	unlock, err := s.lockMatch(ctx, matchID)
	if err != nil {
		return err
	}
	defer unlock()

	m, err := s.loadMatch(ctx, matchID)
	if err != nil {
		return err
	}
	if m.Status == match.StatusCompleted {
		return fmt.Errorf("%w: completed match %s cannot be deleted", ErrInvalidState, m.ID)
	}
	if err := s.matchRepo.Delete(ctx, m.ID); err != nil {
		return fmt.Errorf("delete match: %w", err)
	}

	s.logger.InfoContext(ctx, "match deleted", "match_id", m.ID)
	return nil
}

func (s *MatchService) SetToss(ctx context.Context, input SetTossInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.SetToss")
	defer span.End()

	input.TossWinnerID = strings.TrimSpace(input.TossWinnerID)
	decision, ok := match.ParseTossDecision(input.Decision)
	if !ok {
		return match.Match{}, fmt.Errorf("%w: toss decision must be BAT or BOWL", ErrInvalidInput)
	}
	if input.MaxOvers != nil && *input.MaxOvers <= 0 {
		return match.Match{}, fmt.Errorf("%w: max overs must be > 0", ErrInvalidInput)
	}

	var updated match.Match
	err := s.withMatch(ctx, input.MatchID, func(m match.Match) (match.Match, error) {
		if m.IsFinal() {
			return m, fmt.Errorf("%w: match %s is %s", ErrInvalidState, m.ID, m.Status)
		}
		if !m.HasTeam(input.TossWinnerID) {
			return m, ErrInvalidTeam
		}
		m.TossWinnerID = input.TossWinnerID
		m.TossDecision = decision
		if input.MaxOvers != nil {
			m.MaxOvers = *input.MaxOvers
		}
		updated = m
		return m, nil
	})
	if err != nil {
		return match.Match{}, err
	}
	return updated, nil
}

// StartInnings opens a new innings and makes it active. Any previously
// active innings is closed.
func (s *MatchService) StartInnings(ctx context.Context, input StartInningsInput) (innings.Innings, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.StartInnings", matchAttr(input.MatchID))
	defer span.End()

	input.BattingTeamID = strings.TrimSpace(input.BattingTeamID)
	input.BowlingTeamID = strings.TrimSpace(input.BowlingTeamID)
	if input.BattingTeamID == "" || input.BowlingTeamID == "" {
		return innings.Innings{}, fmt.Errorf("%w: batting and bowling teams are required", ErrInvalidInput)
	}

	var created innings.Innings
	err := s.withMatch(ctx, input.MatchID, func(m match.Match) (match.Match, error) {
		if m.IsFinal() {
			return m, fmt.Errorf("%w: match %s is %s", ErrInvalidState, m.ID, m.Status)
		}
		if !m.HasTeam(input.BattingTeamID) || m.Opponent(input.BattingTeamID) != input.BowlingTeamID {
			return m, ErrInvalidTeam
		}

		inn, err := s.openInnings(ctx, m, input.BattingTeamID, input.BowlingTeamID, input.IsSuperOver)
		if err != nil {
			return m, err
		}
		m.CurrentInningsID = inn.ID
		m.Status = match.StatusLive
		created = inn
		return m, nil
	})
	if err != nil {
		return innings.Innings{}, err
	}

	s.logger.InfoContext(ctx, "innings started", "match_id", created.MatchID, "innings_id", created.ID, "sequence", created.Sequence)
	return created, nil
}

// StartSuperOver adds a tie-breaking innings pair once the current pair has
// finished.
func (s *MatchService) StartSuperOver(ctx context.Context, input StartSuperOverInput) (innings.Innings, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.StartSuperOver")
	defer span.End()

	input.BattingTeamID = strings.TrimSpace(input.BattingTeamID)

	var created innings.Innings
	err := s.withMatch(ctx, input.MatchID, func(m match.Match) (match.Match, error) {
		if m.Status == match.StatusAbandoned {
			return m, fmt.Errorf("%w: match %s is abandoned", ErrInvalidState, m.ID)
		}
		if !m.HasTeam(input.BattingTeamID) {
			return m, ErrInvalidTeam
		}
		existing, err := s.inningsRepo.ListByMatch(ctx, m.ID)
		if err != nil {
			return m, fmt.Errorf("list match innings: %w", err)
		}
		if len(existing) < m.TargetInningsCount {
			return m, fmt.Errorf("%w: %d of %d innings played", ErrInningsInProgress, len(existing), m.TargetInningsCount)
		}

		inn, err := s.openInnings(ctx, m, input.BattingTeamID, m.Opponent(input.BattingTeamID), true)
		if err != nil {
			return m, err
		}
		m.TargetInningsCount += 2
		m.CurrentInningsID = inn.ID
		m.Status = match.StatusLive
		m.WinnerID = ""
		m.ResultSummary = ""
		created = inn
		return m, nil
	})
	if err != nil {
		return innings.Innings{}, err
	}

	s.logger.InfoContext(ctx, "super over started", "match_id", created.MatchID, "innings_id", created.ID)
	return created, nil
}

func (s *MatchService) CompleteMatch(ctx context.Context, input CompleteMatchInput) (CompleteMatchResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.CompleteMatch", matchAttr(input.MatchID))
	defer span.End()

	resolution, ok := match.ParseResolution(input.Resolution)
	if !ok {
		return CompleteMatchResult{}, fmt.Errorf("%w: unknown resolution %q", ErrInvalidInput, input.Resolution)
	}
	input.ManualWinnerID = strings.TrimSpace(input.ManualWinnerID)

	var result CompleteMatchResult
	err := s.withMatch(ctx, input.MatchID, func(m match.Match) (match.Match, error) {
		if m.IsFinal() {
			return m, fmt.Errorf("%w: match %s is already %s", ErrInvalidState, m.ID, m.Status)
		}
		all, err := s.inningsRepo.ListByMatch(ctx, m.ID)
		if err != nil {
			return m, fmt.Errorf("list match innings: %w", err)
		}
		if len(all) < m.TargetInningsCount || len(all) < 2 {
			return m, fmt.Errorf("%w: %d of %d innings played", ErrInningsIncomplete, len(all), m.TargetInningsCount)
		}

		// Hold the closing innings' lock so an in-flight delivery commits
		// before the totals are compared and nothing lands after.
		unlock, err := acquire(ctx, s.locker, inningsLockKey(all[len(all)-1].ID))
		if err != nil {
			return m, err
		}
		defer unlock()
		if all, err = s.inningsRepo.ListByMatch(ctx, m.ID); err != nil {
			return m, fmt.Errorf("list match innings: %w", err)
		}

		first, second := all[len(all)-2], all[len(all)-1]
		superOver := first.IsSuperOver || second.IsSuperOver
		result.IsSuperOver = superOver

		var outcome match.Outcome
		switch resolution {
		case match.ResolutionAuto:
			outcome = match.Compare(inningsScore(first), inningsScore(second), s.teamNamer(ctx))
			if outcome.Tied {
				result.NeedsResolution = true
				result.Message = outcome.Summary
				result.Match = m
				return m, errSkipWrite
			}
		case match.ResolutionManual:
			if !m.HasTeam(input.ManualWinnerID) {
				return m, fmt.Errorf("%w: manual winner must be one of the match teams", ErrInvalidInput)
			}
			outcome = match.Manual(input.ManualWinnerID, superOver, s.teamNamer(ctx))
		case match.ResolutionForceTie:
			outcome = match.ForceTie(superOver)
		}

		if err := s.markInningsCompleted(ctx, second.ID); err != nil {
			return m, err
		}
		m.Finalize(outcome.WinnerID, outcome.Summary)
		result.Match = m
		result.Message = outcome.Summary
		return m, nil
	})
	if err != nil {
		return CompleteMatchResult{}, err
	}

	if !result.NeedsResolution {
		s.logger.InfoContext(ctx, "match completed",
			"match_id", result.Match.ID,
			"resolution", string(resolution),
			"winner_id", result.Match.WinnerID,
			"result", result.Match.ResultSummary,
		)
	}
	return result, nil
}

// SkipInnings records manually supplied totals for an innings that could not
// be scored ball by ball, then advances the match.
func (s *MatchService) SkipInnings(ctx context.Context, input SkipInningsInput) (SkipInningsResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.SkipInnings", matchAttr(input.MatchID))
	defer span.End()

	input.InningsID = strings.TrimSpace(input.InningsID)
	if input.InningsID == "" {
		return SkipInningsResult{}, fmt.Errorf("%w: innings id is required", ErrInvalidInput)
	}
	if input.TotalRuns < 0 {
		return SkipInningsResult{}, fmt.Errorf("%w: total runs must not be negative", ErrInvalidInput)
	}
	if input.TotalWickets < 0 || input.TotalWickets > innings.MaxWickets {
		return SkipInningsResult{}, fmt.Errorf("%w: total wickets must be between 0 and %d", ErrInvalidInput, innings.MaxWickets)
	}

	var result SkipInningsResult
	err := s.withMatch(ctx, input.MatchID, func(m match.Match) (match.Match, error) {
		if m.IsFinal() {
			return m, fmt.Errorf("%w: match %s is %s", ErrInvalidState, m.ID, m.Status)
		}

		skipped, err := s.applySkip(ctx, m, input)
		if err != nil {
			return m, err
		}
		result.Skipped = skipped

		all, err := s.inningsRepo.ListByMatch(ctx, m.ID)
		if err != nil {
			return m, fmt.Errorf("list match innings: %w", err)
		}
		completed := 0
		for _, inn := range all {
			if inn.IsCompleted {
				completed++
			}
		}

		if completed < m.TargetInningsCount {
			next, err := s.openInnings(ctx, m, skipped.BowlingTeamID, skipped.BattingTeamID, skipped.IsSuperOver)
			if err != nil {
				return m, err
			}
			m.CurrentInningsID = next.ID
			m.Status = match.StatusLive
			result.NextInnings = &next
			result.Match = m
			return m, nil
		}

		m.Finalize(s.regularInningsOutcome(ctx, all))
		result.Match = m
		return m, nil
	})
	if err != nil {
		return SkipInningsResult{}, err
	}

	s.logger.InfoContext(ctx, "innings skipped",
		"match_id", result.Match.ID,
		"innings_id", result.Skipped.ID,
		"runs", result.Skipped.Runs,
		"wickets", result.Skipped.Wickets,
		"match_status", string(result.Match.Status),
	)
	return result, nil
}

// AbandonMatch is the administrative exit for a match that will not finish.
func (s *MatchService) AbandonMatch(ctx context.Context, matchID string) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.AbandonMatch", matchAttr(matchID))
	defer span.End()

	var updated match.Match
	err := s.withMatch(ctx, matchID, func(m match.Match) (match.Match, error) {
		if m.IsFinal() {
			return m, fmt.Errorf("%w: match %s is already %s", ErrInvalidState, m.ID, m.Status)
		}
		if m.CurrentInningsID != "" {
			if err := s.closeInnings(ctx, m.CurrentInningsID); err != nil {
				return m, err
			}
		}
		m.Status = match.StatusAbandoned
		m.CurrentInningsID = ""
		updated = m
		return m, nil
	})
	if err != nil {
		return match.Match{}, err
	}

	s.logger.WarnContext(ctx, "match abandoned", "match_id", updated.ID)
	return updated, nil
}

func (s *MatchService) applySkip(ctx context.Context, m match.Match, input SkipInningsInput) (innings.Innings, error) {
	unlock, err := acquire(ctx, s.locker, inningsLockKey(input.InningsID))
	if err != nil {
		return innings.Innings{}, err
	}
	defer unlock()

	inn, exists, err := s.inningsRepo.GetByID(ctx, input.InningsID)
	if err != nil {
		return innings.Innings{}, fmt.Errorf("get innings: %w", err)
	}
	if !exists {
		return innings.Innings{}, fmt.Errorf("%w: innings=%s", ErrNotFound, input.InningsID)
	}
	if inn.MatchID != m.ID {
		return innings.Innings{}, fmt.Errorf("%w: innings %s does not belong to match %s", ErrInvalidInput, inn.ID, m.ID)
	}

	inn.ApplyManualTotals(input.TotalRuns, input.TotalWickets, m.OversLimit(s.cfg.DefaultMaxOvers))
	inn.UpdatedAt = s.now().UTC()
	if err := s.inningsRepo.Update(ctx, inn); err != nil {
		return innings.Innings{}, fmt.Errorf("update skipped innings: %w", err)
	}
	return inn, nil
}

// regularInningsOutcome compares the last two non-super-over innings. A tie
// is recorded without a winner.
func (s *MatchService) regularInningsOutcome(ctx context.Context, all []innings.Innings) (string, string) {
	regular := make([]innings.Innings, 0, len(all))
	for _, inn := range all {
		if !inn.IsSuperOver {
			regular = append(regular, inn)
		}
	}
	if len(regular) < 2 {
		return "", ""
	}

	outcome := match.Compare(inningsScore(regular[len(regular)-2]), inningsScore(regular[len(regular)-1]), s.teamNamer(ctx))
	return outcome.WinnerID, outcome.Summary
}

// openInnings closes the active innings, if any, and creates the next one.
func (s *MatchService) openInnings(ctx context.Context, m match.Match, battingTeamID, bowlingTeamID string, superOver bool) (innings.Innings, error) {
	if m.CurrentInningsID != "" {
		if err := s.closeInnings(ctx, m.CurrentInningsID); err != nil {
			return innings.Innings{}, err
		}
	}

	existing, err := s.inningsRepo.ListByMatch(ctx, m.ID)
	if err != nil {
		return innings.Innings{}, fmt.Errorf("list match innings: %w", err)
	}
	inningsID, err := s.idGen.NewID()
	if err != nil {
		return innings.Innings{}, fmt.Errorf("generate innings id: %w", err)
	}

	now := s.now().UTC()
	inn := innings.Innings{
		ID:            inningsID,
		MatchID:       m.ID,
		Sequence:      len(existing) + 1,
		BattingTeamID: battingTeamID,
		BowlingTeamID: bowlingTeamID,
		IsSuperOver:   superOver,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := inn.Validate(); err != nil {
		return innings.Innings{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.inningsRepo.Create(ctx, inn); err != nil {
		return innings.Innings{}, fmt.Errorf("create innings: %w", err)
	}
	return inn, nil
}

func (s *MatchService) closeInnings(ctx context.Context, inningsID string) error {
	unlock, err := acquire(ctx, s.locker, inningsLockKey(inningsID))
	if err != nil {
		return err
	}
	defer unlock()
	return s.markInningsCompleted(ctx, inningsID)
}

// markInningsCompleted expects the caller to hold the innings lock.
func (s *MatchService) markInningsCompleted(ctx context.Context, inningsID string) error {
	inn, exists, err := s.inningsRepo.GetByID(ctx, inningsID)
	if err != nil {
		return fmt.Errorf("get innings: %w", err)
	}
	if !exists || inn.IsCompleted {
		return nil
	}
	inn.IsCompleted = true
	inn.UpdatedAt = s.now().UTC()
	if err := s.inningsRepo.Update(ctx, inn); err != nil {
		return fmt.Errorf("close innings: %w", err)
	}
	return nil
}

// withMatch runs fn under the match lock and persists what it returns. The
// sentinel errSkipWrite ends the call successfully without a write.
func (s *MatchService) withMatch(ctx context.Context, matchID string, fn func(match.Match) (match.Match, error)) error {
	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	unlock, err := s.lockMatch(ctx, matchID)
	if err != nil {
		return err
	}
	defer unlock()

	current, err := s.loadMatch(ctx, matchID)
	if err != nil {
		return err
	}
	next, err := fn(current)
	if errors.Is(err, errSkipWrite) {
		return nil
	}
	if err != nil {
		return err
	}

	next.UpdatedAt = s.now().UTC()
	if err := s.matchRepo.Update(ctx, next); err != nil {
		return fmt.Errorf("update match: %w", err)
	}
	publish(ctx, s.publisher, s.logger, matchevent.Event{
		Type:       matchevent.TypeMatchUpdated,
		MatchID:    next.ID,
		Payload:    next,
		OccurredAt: next.UpdatedAt,
	})
	return nil
}

func (s *MatchService) lockMatch(ctx context.Context, matchID string) (func(), error) {
	if matchID == "" {
		return nil, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	return acquire(ctx, s.locker, matchLockKey(matchID))
}

func (s *MatchService) loadMatch(ctx context.Context, matchID string) (match.Match, error) {
	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return match.Match{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	m, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}
	return m, nil
}

func (s *MatchService) validateFixture(ctx context.Context, seriesID, teamAID, teamBID string) error {
	if teamAID == "" || teamBID == "" {
		return fmt.Errorf("%w: both teams are required", ErrInvalidInput)
	}
	if teamAID == teamBID {
		return fmt.Errorf("%w: a team cannot play itself", ErrInvalidInput)
	}
	for _, id := range []string{teamAID, teamBID} {
		_, exists, err := s.teamRepo.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get team: %w", err)
		}
		if !exists {
			return fmt.Errorf("%w: team %s does not exist", ErrInvalidInput, id)
		}
	}
	if seriesID == "" {
		return nil
	}
	_, exists, err := s.seriesRepo.GetByID(ctx, seriesID)
	if err != nil {
		return fmt.Errorf("get series: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: series %s does not exist", ErrInvalidInput, seriesID)
	}
	return nil
}

// teamNamer resolves display names for result text, falling back to the id.
func (s *MatchService) teamNamer(ctx context.Context) func(string) string {
	return func(teamID string) string {
		t, exists, err := s.teamRepo.GetByID(ctx, teamID)
		if err != nil {
			s.logger.WarnContext(ctx, "resolve team name failed", "team_id", teamID, "error", err)
			return teamID
		}
		if !exists || t.Name == "" {
			return teamID
		}
		return t.Name
	}
}

func inningsScore(inn innings.Innings) match.InningsScore {
	return match.InningsScore{
		BattingTeamID: inn.BattingTeamID,
		Runs:          inn.Runs,
		Wickets:       inn.Wickets,
		IsSuperOver:   inn.IsSuperOver,
	}
}

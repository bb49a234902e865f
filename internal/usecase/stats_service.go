package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/sourcegraph/conc/iter"
	"github.com/sourcegraph/conc/pool"

	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/delivery"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/innings"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/match"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/player"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/stats"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/team"
)

const teamLeadersLimit = 5

type MatchDetail struct {
	Match      match.Match
	Innings    []innings.Innings
	Scorecards []stats.Scorecard
}

type PlayerDetail struct {
	Player player.Player
	Career stats.Career
}

type TeamDetail struct {
	Team       team.Team
	Summary    stats.TeamSummary
	Players    []player.Player
	TopBatsmen []stats.BattingEntry
	TopBowlers []stats.BowlingEntry
}

// StatsService serves the read side. It never takes scoring locks, so the
// figures trail the newest delivery by at most one write.
type StatsService struct {
	matchRepo    match.Repository
	inningsRepo  innings.Repository
	deliveryRepo delivery.Repository
	teamRepo     team.Repository
	playerRepo   player.Repository
}

func NewStatsService(
	matchRepo match.Repository,
	inningsRepo innings.Repository,
	deliveryRepo delivery.Repository,
	teamRepo team.Repository,
	playerRepo player.Repository,
) *StatsService {
	return &StatsService{
		matchRepo:    matchRepo,
		inningsRepo:  inningsRepo,
		deliveryRepo: deliveryRepo,
		teamRepo:     teamRepo,
		playerRepo:   playerRepo,
	}
}

func (s *StatsService) MatchDetail(ctx context.Context, matchID string) (MatchDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.MatchDetail")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return MatchDetail{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	m, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return MatchDetail{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return MatchDetail{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}

	var (
		inns  []innings.Innings
		items []delivery.Delivery
	)
	p := pool.New().WithErrors().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		var err error
		inns, err = s.inningsRepo.ListByMatch(ctx, matchID)
		if err != nil {
			return fmt.Errorf("list match innings: %w", err)
		}
		return nil
	})
	p.Go(func(ctx context.Context) error {
		var err error
		items, err = s.deliveryRepo.ListByMatch(ctx, matchID)
		if err != nil {
			return fmt.Errorf("list match deliveries: %w", err)
		}
		return nil
	})
	if err := p.Wait(); err != nil {
		return MatchDetail{}, err
	}

	byInnings := make(map[string][]delivery.Delivery, len(inns))
	for _, d := range items {
		byInnings[d.InningsID] = append(byInnings[d.InningsID], d)
	}
	cards := iter.Map(inns, func(inn *innings.Innings) stats.Scorecard {
		return stats.BuildScorecard(inn.ID, byInnings[inn.ID])
	})

	return MatchDetail{Match: m, Innings: inns, Scorecards: cards}, nil
}

func (s *StatsService) BattingLeaderboard(ctx context.Context, limit int) ([]stats.BattingEntry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.BattingLeaderboard")
	defer span.End()

	items, err := s.deliveryRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list deliveries: %w", err)
	}
	return stats.BattingLeaderboard(items, limit), nil
}

func (s *StatsService) BowlingLeaderboard(ctx context.Context, limit int) ([]stats.BowlingEntry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.BowlingLeaderboard")
	defer span.End()

	items, err := s.deliveryRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list deliveries: %w", err)
	}
	return stats.BowlingLeaderboard(items, limit), nil
}

// TeamStandings ranks teams by the recorded winner of completed matches.
func (s *StatsService) TeamStandings(ctx context.Context) ([]stats.Standing, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.TeamStandings")
	defer span.End()

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	completed, err := s.matchRepo.List(ctx, match.Filter{Status: match.StatusCompleted})
	if err != nil {
		return nil, fmt.Errorf("list completed matches: %w", err)
	}
	return stats.Standings(teams, completed), nil
}

func (s *StatsService) PlayerDetail(ctx context.Context, playerID string) (PlayerDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.PlayerDetail")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return PlayerDetail{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}
	p, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return PlayerDetail{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return PlayerDetail{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	items, err := s.deliveryRepo.ListByPlayer(ctx, playerID)
	if err != nil {
		return PlayerDetail{}, fmt.Errorf("list player deliveries: %w", err)
	}
	return PlayerDetail{Player: p, Career: stats.BuildCareer(playerID, items)}, nil
}

func (s *StatsService) TeamDetail(ctx context.Context, teamID string) (TeamDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.TeamDetail")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return TeamDetail{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	t, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return TeamDetail{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return TeamDetail{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	var (
		matches []match.Match
		inns    []innings.Innings
		squad   []player.Player
		items   []delivery.Delivery
	)
	p := pool.New().WithErrors().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		var err error
		if matches, err = s.matchRepo.List(ctx, match.Filter{TeamID: teamID}); err != nil {
			return fmt.Errorf("list team matches: %w", err)
		}
		return nil
	})
	p.Go(func(ctx context.Context) error {
		var err error
		if inns, err = s.inningsRepo.ListByTeam(ctx, teamID); err != nil {
			return fmt.Errorf("list team innings: %w", err)
		}
		return nil
	})
	p.Go(func(ctx context.Context) error {
		var err error
		if squad, err = s.playerRepo.ListByTeam(ctx, teamID); err != nil {
			return fmt.Errorf("list team players: %w", err)
		}
		return nil
	})
	p.Go(func(ctx context.Context) error {
		var err error
		if items, err = s.deliveryRepo.ListAll(ctx); err != nil {
			return fmt.Errorf("list deliveries: %w", err)
		}
		return nil
	})
	if err := p.Wait(); err != nil {
		return TeamDetail{}, err
	}

	members := make(map[string]struct{}, len(squad))
	for _, pl := range squad {
		members[pl.ID] = struct{}{}
	}
	var batting, bowling []delivery.Delivery
	for _, d := range items {
		if _, ok := members[d.BatsmanID]; ok {
			batting = append(batting, d)
		}
		if _, ok := members[d.BowlerID]; ok {
			bowling = append(bowling, d)
		}
	}

	return TeamDetail{
		Team:       t,
		Summary:    stats.SummarizeTeam(teamID, matches, inns),
		Players:    squad,
		TopBatsmen: stats.BattingLeaderboard(batting, teamLeadersLimit),
		TopBowlers: stats.BowlingLeaderboard(bowling, teamLeadersLimit),
	}, nil
}

package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/player"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/team"
	idgen "github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/platform/id"
)

type CreatePlayerInput struct {
	Name         string
	TeamID       string
	Role         string
	BattingStyle string
	BowlingStyle string
}

// UpdatePlayerInput patches a player; nil fields are left unchanged.
type UpdatePlayerInput struct {
	PlayerID     string
	Name         *string
	TeamID       *string
	Role         *string
	BattingStyle *string
	BowlingStyle *string
}

type PlayerService struct {
	playerRepo player.Repository
	teamRepo   team.Repository
	idGen      idgen.Generator
	now        func() time.Time
}

func NewPlayerService(playerRepo player.Repository, teamRepo team.Repository, idGen idgen.Generator) *PlayerService {
	return &PlayerService{
		playerRepo: playerRepo,
		teamRepo:   teamRepo,
		idGen:      idGen,
		now:        time.Now,
	}
}

// ListPlayers returns every player, or one team's squad when teamID is set.
func (s *PlayerService) ListPlayers(ctx context.Context, teamID string) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListPlayers")
	defer span.End()

	var (
		items []player.Player
		err   error
	)
	if teamID = strings.TrimSpace(teamID); teamID != "" {
		items, err = s.playerRepo.ListByTeam(ctx, teamID)
	} else {
		items, err = s.playerRepo.List(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	return items, nil
}

func (s *PlayerService) CreatePlayer(ctx context.Context, input CreatePlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.CreatePlayer")
	defer span.End()

	role, ok := player.ParseRole(input.Role)
	if !ok {
		return player.Player{}, fmt.Errorf("%w: unknown player role %q", ErrInvalidInput, input.Role)
	}
	playerID, err := s.idGen.NewID()
	if err != nil {
		return player.Player{}, fmt.Errorf("generate player id: %w", err)
	}

	now := s.now().UTC()
	item := player.Player{
		ID:           playerID,
		Name:         strings.TrimSpace(input.Name),
		TeamID:       strings.TrimSpace(input.TeamID),
		Role:         role,
		BattingStyle: strings.TrimSpace(input.BattingStyle),
		BowlingStyle: strings.TrimSpace(input.BowlingStyle),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.validate(ctx, item); err != nil {
		return player.Player{}, err
	}
	if err := s.playerRepo.Create(ctx, item); err != nil {
		return player.Player{}, fmt.Errorf("create player: %w", err)
	}
	return item, nil
}

func (s *PlayerService) UpdatePlayer(ctx context.Context, input UpdatePlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.UpdatePlayer")
	defer span.End()

	item, err := s.getPlayer(ctx, input.PlayerID)
	if err != nil {
		return player.Player{}, err
	}
	if input.Name != nil {
		item.Name = strings.TrimSpace(*input.Name)
	}
	if input.TeamID != nil {
		item.TeamID = strings.TrimSpace(*input.TeamID)
	}
	if input.Role != nil {
		role, ok := player.ParseRole(*input.Role)
		if !ok {
			return player.Player{}, fmt.Errorf("%w: unknown player role %q", ErrInvalidInput, *input.Role)
		}
		item.Role = role
	}
	if input.BattingStyle != nil {
		item.BattingStyle = strings.TrimSpace(*input.BattingStyle)
	}
	if input.BowlingStyle != nil {
		item.BowlingStyle = strings.TrimSpace(*input.BowlingStyle)
	}
	item.UpdatedAt = s.now().UTC()

	if err := s.validate(ctx, item); err != nil {
		return player.Player{}, err
	}
	if err := s.playerRepo.Update(ctx, item); err != nil {
		return player.Player{}, fmt.Errorf("update player: %w", err)
	}
	return item, nil
}

func (s *PlayerService) DeletePlayer(ctx context.Context, playerID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.DeletePlayer")
	defer span.End()

	item, err := s.getPlayer(ctx, playerID)
	if err != nil {
		return err
	}
	if err := s.playerRepo.Delete(ctx, item.ID); err != nil {
		return fmt.Errorf("delete player: %w", err)
	}
	return nil
}

func (s *PlayerService) getPlayer(ctx context.Context, playerID string) (player.Player, error) {
	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}
	item, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}
	return item, nil
}

func (s *PlayerService) validate(ctx context.Context, item player.Player) error {
	if err := item.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	_, exists, err := s.teamRepo.GetByID(ctx, item.TeamID)
	if err != nil {
		return fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: team %s does not exist", ErrInvalidInput, item.TeamID)
	}
	return nil
}

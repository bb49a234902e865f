package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/team"
	idgen "github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/platform/id"
)

type CreateTeamInput struct {
	Name      string
	ShortCode string
	LogoURL   string
}

type TeamService struct {
	teamRepo team.Repository
	idGen    idgen.Generator
	now      func() time.Time
}

func NewTeamService(teamRepo team.Repository, idGen idgen.Generator) *TeamService {
	return &TeamService{
		teamRepo: teamRepo,
		idGen:    idGen,
		now:      time.Now,
	}
}

func (s *TeamService) ListTeams(ctx context.Context) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListTeams")
	defer span.End()

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return teams, nil
}

func (s *TeamService) CreateTeam(ctx context.Context, input CreateTeamInput) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.CreateTeam")
	defer span.End()

	input.Name = strings.TrimSpace(input.Name)
	input.ShortCode = team.NormalizeShortCode(input.ShortCode)
	input.LogoURL = strings.TrimSpace(input.LogoURL)
	if input.Name == "" {
		return team.Team{}, fmt.Errorf("%w: team name is required", ErrInvalidInput)
	}
	if input.ShortCode == "" {
		return team.Team{}, fmt.Errorf("%w: team short code is required", ErrInvalidInput)
	}

	_, taken, err := s.teamRepo.GetByShortCode(ctx, input.ShortCode)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team by short code: %w", err)
	}
	if taken {
		return team.Team{}, fmt.Errorf("%w: short code %s is already used", ErrInvalidInput, input.ShortCode)
	}

	teamID, err := s.idGen.NewID()
	if err != nil {
		return team.Team{}, fmt.Errorf("generate team id: %w", err)
	}
	item := team.Team{
		ID:        teamID,
		Name:      input.Name,
		ShortCode: input.ShortCode,
		LogoURL:   input.LogoURL,
		CreatedAt: s.now().UTC(),
	}
	if err := item.Validate(); err != nil {
		return team.Team{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.teamRepo.Create(ctx, item); err != nil {
		if isDuplicateConstraintError(err) {
			return team.Team{}, fmt.Errorf("%w: short code %s is already used", ErrInvalidInput, input.ShortCode)
		}
		return team.Team{}, fmt.Errorf("create team: %w", err)
	}
	return item, nil
}

func isDuplicateConstraintError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(strings.ToLower(err.Error()), "duplicate key value violates unique constraint")
}

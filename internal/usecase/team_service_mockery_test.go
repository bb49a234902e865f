package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/team"
	teammock "github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/mocks/domain/team"
)

type staticIDs struct {
	ids []string
	err error
}

func (g *staticIDs) NewID() (string, error) {
	if g.err != nil {
		return "", g.err
	}
	if len(g.ids) == 0 {
		return "", errors.New("no ids left")
	}
	id := g.ids[0]
	g.ids = g.ids[1:]
	return id, nil
}

func TestTeamService_ListTeams_UsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	teamRepo := teammock.NewRepository(t)
	service := NewTeamService(teamRepo, &staticIDs{})

	teamRepo.On("List", mock.Anything).
		Return([]team.Team{{ID: "team-csk", Name: "Chennai Super Kings", ShortCode: "CSK"}}, nil).
		Once()

	got, err := service.ListTeams(ctx)
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	if len(got) != 1 || got[0].ID != "team-csk" {
		t.Fatalf("unexpected teams: %+v", got)
	}
}

func TestTeamService_CreateTeam_NormalizesShortCodeUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	teamRepo := teammock.NewRepository(t)
	service := NewTeamService(teamRepo, &staticIDs{ids: []string{"team-rcb"}})

	teamRepo.On("GetByShortCode", mock.Anything, "RCB").
		Return(team.Team{}, false, nil).
		Once()
	teamRepo.On("Create", mock.Anything, mock.MatchedBy(func(item team.Team) bool {
		return item.ID == "team-rcb" && item.ShortCode == "RCB" && item.Name == "Royal Challengers"
	})).
		Return(nil).
		Once()

	got, err := service.CreateTeam(ctx, CreateTeamInput{Name: "  Royal Challengers ", ShortCode: " rcb"})
	if err != nil {
		t.Fatalf("create team: %v", err)
	}
	if got.ShortCode != "RCB" {
		t.Fatalf("unexpected short code: got=%s want=RCB", got.ShortCode)
	}
	if got.CreatedAt.IsZero() {
		t.Fatalf("expected created_at to be set")
	}
}

func TestTeamService_CreateTeam_DuplicateShortCodeUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	teamRepo := teammock.NewRepository(t)
	service := NewTeamService(teamRepo, &staticIDs{ids: []string{"team-x"}})

	teamRepo.On("GetByShortCode", mock.Anything, "CSK").
		Return(team.Team{ID: "team-csk", ShortCode: "CSK"}, true, nil).
		Once()

	_, err := service.CreateTeam(ctx, CreateTeamInput{Name: "Chennai Again", ShortCode: "csk"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got=%v", err)
	}
}

func TestTeamService_CreateTeam_UniqueViolationFromStoreUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	teamRepo := teammock.NewRepository(t)
	service := NewTeamService(teamRepo, &staticIDs{ids: []string{"team-gt"}})

	teamRepo.On("GetByShortCode", mock.Anything, "GT").
		Return(team.Team{}, false, nil).
		Once()
	teamRepo.On("Create", mock.Anything, mock.AnythingOfType("team.Team")).
		Return(errors.New(`pq: duplicate key value violates unique constraint "teams_short_code_key"`)).
		Once()

	_, err := service.CreateTeam(ctx, CreateTeamInput{Name: "Gujarat Titans", ShortCode: "GT"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got=%v", err)
	}
}

func TestTeamService_CreateTeam_RequiresNameAndCode(t *testing.T) {
	t.Parallel()

	service := NewTeamService(teammock.NewRepository(t), &staticIDs{})
	for _, input := range []CreateTeamInput{
		{ShortCode: "KKR"},
		{Name: "Kolkata Knight Riders", ShortCode: "  "},
	} {
		if _, err := service.CreateTeam(context.Background(), input); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("input %+v: expected ErrInvalidInput, got=%v", input, err)
		}
	}
}

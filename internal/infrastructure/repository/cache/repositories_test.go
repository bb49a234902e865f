package cache

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/player"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/team"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/infrastructure/repository/memory"
	basecache "github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/platform/cache"
)

type countingTeamRepo struct {
	team.Repository
	lists atomic.Int32
}

func (r *countingTeamRepo) List(ctx context.Context) ([]team.Team, error) {
	r.lists.Add(1)
	return r.Repository.List(ctx)
}

func TestTeamRepository_CachesListUntilCreate(t *testing.T) {
	ctx := context.Background()
	inner := &countingTeamRepo{Repository: memory.NewTeamRepository(memory.SeedTeams())}
	repo := NewTeamRepository(inner, basecache.NewStore(time.Minute))

	for i := 0; i < 3; i++ {
		items, err := repo.List(ctx)
		if err != nil {
			t.Fatalf("list teams: %v", err)
		}
		if len(items) != 2 {
			t.Fatalf("expected 2 teams, got %d", len(items))
		}
	}
	if got := inner.lists.Load(); got != 1 {
		t.Fatalf("expected one backing list call, got %d", got)
	}

	if err := repo.Create(ctx, team.Team{ID: "team-rcb", Name: "Royal Challengers", ShortCode: "RCB"}); err != nil {
		t.Fatalf("create team: %v", err)
	}
	items, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("create must invalidate the cached list, got %d teams", len(items))
	}
	if got := inner.lists.Load(); got != 2 {
		t.Fatalf("expected a reload after create, got %d calls", got)
	}
}

func TestPlayerRepository_UpdateInvalidatesLookups(t *testing.T) {
	ctx := context.Background()
	repo := NewPlayerRepository(memory.NewPlayerRepository(memory.SeedPlayers()), basecache.NewStore(time.Minute))

	before, ok, err := repo.GetByID(ctx, "mi-bumrah")
	if err != nil || !ok {
		t.Fatalf("get player: ok=%v err=%v", ok, err)
	}

	before.Role = player.RoleAllRounder
	if err := repo.Update(ctx, before); err != nil {
		t.Fatalf("update player: %v", err)
	}

	after, _, _ := repo.GetByID(ctx, "mi-bumrah")
	if after.Role != player.RoleAllRounder {
		t.Fatalf("expected refreshed role, got %s", after.Role)
	}

	if err := repo.Delete(ctx, "mi-bumrah"); err != nil {
		t.Fatalf("delete player: %v", err)
	}
	if _, ok, _ := repo.GetByID(ctx, "mi-bumrah"); ok {
		t.Fatalf("deleted player must not be served from cache")
	}
}

func TestPlayerRepository_CachesMissingLookups(t *testing.T) {
	ctx := context.Background()
	repo := NewPlayerRepository(memory.NewPlayerRepository(nil), basecache.NewStore(time.Minute))

	if _, ok, err := repo.GetByID(ctx, "ghost"); ok || err != nil {
		t.Fatalf("expected miss, ok=%v err=%v", ok, err)
	}
	if err := repo.Create(ctx, player.Player{ID: "ghost", Name: "Ghost", TeamID: "t1", Role: player.RoleBowler}); err != nil {
		t.Fatalf("create player: %v", err)
	}
	if _, ok, _ := repo.GetByID(ctx, "ghost"); !ok {
		t.Fatalf("create must drop the cached miss")
	}
}

package cache

import (
	"context"

	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/player"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/series"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/team"
	basecache "github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/platform/cache"
)

const (
	teamPrefix   = "team:"
	playerPrefix = "player:"
	seriesPrefix = "series:"
)

type cachedByID[T any] struct {
	value  T
	exists bool
}

func loadList[T any](ctx context.Context, store *basecache.Store, key string, load func(context.Context) ([]T, error)) ([]T, error) {
	v, err := store.Fetch(ctx, key, func(ctx context.Context) (any, error) {
		items, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return append([]T(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]T)
	return append([]T(nil), items...), nil
}

func loadOne[T any](ctx context.Context, store *basecache.Store, key string, load func(context.Context) (T, bool, error)) (T, bool, error) {
	v, err := store.Fetch(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return cachedByID[T]{value: item, exists: exists}, nil
	})
	if err != nil {
		var zero T
		return zero, false, err
	}

	cached, _ := v.(cachedByID[T])
	return cached.value, cached.exists, nil
}

type TeamRepository struct {
	next  team.Repository
	cache *basecache.Store
}

func NewTeamRepository(next team.Repository, cache *basecache.Store) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	return loadList(ctx, r.cache, teamPrefix+"list", r.next.List)
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	return loadOne(ctx, r.cache, teamPrefix+"id:"+teamID, func(ctx context.Context) (team.Team, bool, error) {
		return r.next.GetByID(ctx, teamID)
	})
}

// GetByShortCode bypasses the cache; it guards uniqueness on create.
func (r *TeamRepository) GetByShortCode(ctx context.Context, shortCode string) (team.Team, bool, error) {
	return r.next.GetByShortCode(ctx, shortCode)
}

func (r *TeamRepository) Create(ctx context.Context, item team.Team) error {
	if err := r.next.Create(ctx, item); err != nil {
		return err
	}
	r.cache.InvalidatePrefix(ctx, teamPrefix)
	return nil
}

type PlayerRepository struct {
	next  player.Repository
	cache *basecache.Store
}

func NewPlayerRepository(next player.Repository, cache *basecache.Store) *PlayerRepository {
	return &PlayerRepository{next: next, cache: cache}
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	return loadList(ctx, r.cache, playerPrefix+"list", r.next.List)
}

func (r *PlayerRepository) ListByTeam(ctx context.Context, teamID string) ([]player.Player, error) {
	return loadList(ctx, r.cache, playerPrefix+"team:"+teamID, func(ctx context.Context) ([]player.Player, error) {
		return r.next.ListByTeam(ctx, teamID)
	})
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	return loadOne(ctx, r.cache, playerPrefix+"id:"+playerID, func(ctx context.Context) (player.Player, bool, error) {
		return r.next.GetByID(ctx, playerID)
	})
}

func (r *PlayerRepository) Create(ctx context.Context, item player.Player) error {
	if err := r.next.Create(ctx, item); err != nil {
		return err
	}
	r.cache.InvalidatePrefix(ctx, playerPrefix)
	return nil
}

func (r *PlayerRepository) Update(ctx context.Context, item player.Player) error {
	if err := r.next.Update(ctx, item); err != nil {
		return err
	}
	r.cache.InvalidatePrefix(ctx, playerPrefix)
	return nil
}

func (r *PlayerRepository) Delete(ctx context.Context, playerID string) error {
	if err := r.next.Delete(ctx, playerID); err != nil {
		return err
	}
	r.cache.InvalidatePrefix(ctx, playerPrefix)
	return nil
}

type SeriesRepository struct {
	next  series.Repository
	cache *basecache.Store
}

func NewSeriesRepository(next series.Repository, cache *basecache.Store) *SeriesRepository {
	return &SeriesRepository{next: next, cache: cache}
}

func (r *SeriesRepository) List(ctx context.Context) ([]series.Series, error) {
	return loadList(ctx, r.cache, seriesPrefix+"list", r.next.List)
}

func (r *SeriesRepository) GetByID(ctx context.Context, seriesID string) (series.Series, bool, error) {
	return loadOne(ctx, r.cache, seriesPrefix+"id:"+seriesID, func(ctx context.Context) (series.Series, bool, error) {
		return r.next.GetByID(ctx, seriesID)
	})
}

func (r *SeriesRepository) Create(ctx context.Context, item series.Series) error {
	if err := r.next.Create(ctx, item); err != nil {
		return err
	}
	r.cache.InvalidatePrefix(ctx, seriesPrefix)
	return nil
}

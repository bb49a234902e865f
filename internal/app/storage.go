package app

import (
	"context"
	"fmt"

	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/config"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/delivery"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/innings"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/match"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/player"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/scoring"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/series"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/team"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/user"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/infrastructure/repository/cache"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/infrastructure/repository/memory"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/infrastructure/repository/postgres"
	basecache "github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/platform/cache"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/platform/logging"
)

type repositories struct {
	matches    match.Repository
	innings    innings.Repository
	deliveries delivery.Repository
	ledger     scoring.Ledger
	teams      team.Repository
	players    player.Repository
	series     series.Repository
	users      user.Repository
}

func newRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (repositories, func() error, error) {
	var (
		repos   repositories
		closeFn = func() error { return nil }
	)

	switch cfg.StorageDriver {
	case config.StoragePostgres:
		db, err := openDB(ctx, cfg)
		if err != nil {
			return repositories{}, nil, err
		}
		if err := postgres.BootstrapSeed(ctx, db); err != nil {
			_ = db.Close()
			return repositories{}, nil, fmt.Errorf("bootstrap seed: %w", err)
		}
		repos = repositories{
			matches:    postgres.NewMatchRepository(db),
			innings:    postgres.NewInningsRepository(db),
			deliveries: postgres.NewDeliveryRepository(db),
			ledger:     postgres.NewScoringLedger(db),
			teams:      postgres.NewTeamRepository(db),
			players:    postgres.NewPlayerRepository(db),
			series:     postgres.NewSeriesRepository(db),
			users:      postgres.NewUserRepository(db),
		}
		closeFn = db.Close
		logger.Info("storage ready", "driver", cfg.StorageDriver, "db_name", postgresDSN(cfg.DBURL).databaseName())
	default:
		deliveries := memory.NewDeliveryRepository()
		inningsRepo := memory.NewInningsRepository()
		repos = repositories{
			matches:    memory.NewMatchRepository(inningsRepo, deliveries),
			innings:    inningsRepo,
			deliveries: deliveries,
			ledger:     memory.NewScoringLedger(deliveries, inningsRepo),
			teams:      memory.NewTeamRepository(memory.SeedTeams()),
			players:    memory.NewPlayerRepository(memory.SeedPlayers()),
			series:     memory.NewSeriesRepository(),
			users:      memory.NewUserRepository(),
		}
		logger.Info("storage ready", "driver", config.StorageMemory)
	}

	if cfg.CacheEnabled {
		teams, players, seriesStore := basecache.NewStore(cfg.CacheTTL), basecache.NewStore(cfg.CacheTTL), basecache.NewStore(cfg.CacheTTL)
		repos.teams = cache.NewTeamRepository(repos.teams, teams)
		repos.players = cache.NewPlayerRepository(repos.players, players)
		repos.series = cache.NewSeriesRepository(repos.series, seriesStore)

		closeStorage := closeFn
		closeFn = func() error {
			logCacheStats(logger, "teams", teams)
			logCacheStats(logger, "players", players)
			logCacheStats(logger, "series", seriesStore)
			return closeStorage()
		}
	}

	return repos, closeFn, nil
}

func logCacheStats(logger *logging.Logger, name string, store *basecache.Store) {
	stats := store.Stats()
	logger.Info("reference cache stats",
		"cache", name,
		"entries", stats.Entries,
		"hits", stats.Hits,
		"misses", stats.Misses,
		"loads", stats.Loads,
	)
}

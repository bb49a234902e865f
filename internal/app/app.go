package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/config"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/infrastructure/account/jwtauth"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/infrastructure/realtime"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/interfaces/httpapi"
	idgen "github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/platform/id"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/platform/keylock"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/platform/logging"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/usecase"
)

// Services holds the use cases shared by the API server and the admin CLI.
type Services struct {
	Match   *usecase.MatchService
	Scoring *usecase.ScoringService
	Stats   *usecase.StatsService
	Team    *usecase.TeamService
	Player  *usecase.PlayerService
	Series  *usecase.SeriesService
	Auth    *usecase.AuthService

	Hub    *realtime.Hub
	Tokens *jwtauth.TokenService

	closers []func() error
}

// NewServices opens storage and builds every use case. Callers must Close the
// result to release the database pool and the event publishers.
func NewServices(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Services, error) {
	if logger == nil {
		logger = logging.Default()
	}

	out := &Services{}
	repos, closeRepos, err := newRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	out.closers = append(out.closers, closeRepos)

	hub, err := realtime.NewHub(realtime.Config{
		Workers:        cfg.RealtimeWorkers,
		AllowedOrigins: cfg.CORSAllowedOrigins,
	}, httpapi.EncodeMatchEvent, logger)
	if err != nil {
		_ = out.Close()
		return nil, fmt.Errorf("build realtime hub: %w", err)
	}
	out.Hub = hub
	out.closers = append(out.closers, func() error {
		hub.Close()
		return nil
	})

	publisher, closePublisher, err := newPublisher(cfg, hub, logger)
	if err != nil {
		_ = out.Close()
		return nil, err
	}
	out.closers = append(out.closers, closePublisher)

	tokens, err := jwtauth.NewTokenService(jwtauth.Config{
		Secret: cfg.JWTSecret,
		Issuer: cfg.JWTIssuer,
		TTL:    cfg.JWTTTL,
	})
	if err != nil {
		_ = out.Close()
		return nil, fmt.Errorf("build token service: %w", err)
	}
	out.Tokens = tokens

	ids := idgen.NewUUIDGenerator()
	locker := keylock.New(cfg.ScoringLockTimeout)

	out.Match = usecase.NewMatchService(
		repos.matches,
		repos.innings,
		repos.teams,
		repos.series,
		locker,
		publisher,
		ids,
		logger.Named("match"),
		usecase.MatchServiceConfig{DefaultMaxOvers: cfg.DefaultMaxOvers},
	)
	out.Scoring = usecase.NewScoringService(
		repos.matches,
		repos.innings,
		repos.deliveries,
		repos.ledger,
		locker,
		publisher,
		ids,
		logger.Named("scoring"),
	)
	out.Stats = usecase.NewStatsService(repos.matches, repos.innings, repos.deliveries, repos.teams, repos.players)
	out.Team = usecase.NewTeamService(repos.teams, ids)
	out.Player = usecase.NewPlayerService(repos.players, repos.teams, ids)
	out.Series = usecase.NewSeriesService(repos.series, ids)
	out.Auth = usecase.NewAuthService(repos.users, jwtauth.NewBcryptHasher(cfg.BcryptCost), tokens, ids, logger.Named("auth"))

	if cfg.StorageDriver == config.StorageMemory && cfg.SeedEnabled {
		if _, created, err := out.Auth.SeedAdmin(ctx, usecase.DefaultAdminEmail, usecase.DefaultAdminPassword); err != nil {
			logger.Warn("seed default admin failed", "error", err)
		} else if created {
			logger.Info("default admin seeded", "email", usecase.DefaultAdminEmail)
		}
	}

	return out, nil
}

// Close releases resources in reverse order of acquisition.
func (s *Services) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	s.closers = nil
	return errors.Join(errs...)
}

func NewHTTPServer(cfg config.Config, services *Services, logger *logging.Logger) (*http.Server, error) {
	if services == nil {
		return nil, fmt.Errorf("services cannot be nil")
	}

	handler := httpapi.NewHandler(
		services.Match,
		services.Scoring,
		services.Stats,
		services.Team,
		services.Player,
		services.Series,
		services.Auth,
		services.Hub,
		logger,
	)
	router := httpapi.NewRouter(handler, services.Tokens, logger, cfg.CORSAllowedOrigins, cfg.LoginRatePerMinute, cfg.SeedEnabled)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}

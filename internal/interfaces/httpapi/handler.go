package httpapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/player"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/platform/logging"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/usecase"
)

const (
	defaultLeaderboardLimit = 20
	maxLeaderboardLimit     = 100
)

// LiveFeed upgrades a request into a realtime subscription for one match.
type LiveFeed interface {
	ServeMatch(w http.ResponseWriter, r *http.Request, matchID string) error
}

type Handler struct {
	matchService   *usecase.MatchService
	scoringService *usecase.ScoringService
	statsService   *usecase.StatsService
	teamService    *usecase.TeamService
	playerService  *usecase.PlayerService
	seriesService  *usecase.SeriesService
	authService    *usecase.AuthService
	liveFeed       LiveFeed
	logger         *logging.Logger
	validator      *validator.Validate
}

func NewHandler(
	matchService *usecase.MatchService,
	scoringService *usecase.ScoringService,
	statsService *usecase.StatsService,
	teamService *usecase.TeamService,
	playerService *usecase.PlayerService,
	seriesService *usecase.SeriesService,
	authService *usecase.AuthService,
	liveFeed LiveFeed,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		matchService:   matchService,
		scoringService: scoringService,
		statsService:   statsService,
		teamService:    teamService,
		playerService:  playerService,
		seriesService:  seriesService,
		authService:    authService,
		liveFeed:       liveFeed,
		logger:         logger,
		validator:      validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// decodeJSON reads a strict JSON body into dst. An empty body is accepted
// only when allowEmpty is set, leaving dst at its zero value.
func decodeJSON(r *http.Request, dst any, allowEmpty bool) error {
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		if allowEmpty && errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

// logFailure logs client errors at WARN and everything else at ERROR.
func (h *Handler) logFailure(ctx context.Context, msg string, err error, args ...any) {
	args = withScorerArgs(ctx, append(args, "error", err))
	if mapError(ctx, err).HTTPStatus >= http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, msg, args...)
		return
	}
	h.logger.WarnContext(ctx, msg, args...)
}

func parseLimit(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return defaultLeaderboardLimit, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return 0, fmt.Errorf("%w: limit must be a positive integer", usecase.ErrInvalidInput)
	}
	if limit > maxLeaderboardLimit {
		limit = maxLeaderboardLimit
	}
	return limit, nil
}

// playerIndex resolves names for leaderboard rows. A failed lookup only
// costs the names, never the response.
func (h *Handler) playerIndex(ctx context.Context) map[string]player.Player {
	players, err := h.playerService.ListPlayers(ctx, "")
	if err != nil {
		h.logger.WarnContext(ctx, "list players for leaderboard failed", "error", err)
		return nil
	}
	out := make(map[string]player.Player, len(players))
	for _, p := range players {
		out[p.ID] = p
	}
	return out
}

package httpapi

import "net/http"

func (h *Handler) BattingLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.BattingLeaderboard")
	defer span.End()

	limit, err := parseLimit(r.URL.Query().Get("limit"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	items, err := h.statsService.BattingLeaderboard(ctx, limit)
	if err != nil {
		h.logFailure(ctx, "batting leaderboard failed", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, battingEntriesToDTO(items, h.playerIndex(ctx)))
}

func (h *Handler) BowlingLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.BowlingLeaderboard")
	defer span.End()

	limit, err := parseLimit(r.URL.Query().Get("limit"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	items, err := h.statsService.BowlingLeaderboard(ctx, limit)
	if err != nil {
		h.logFailure(ctx, "bowling leaderboard failed", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, bowlingEntriesToDTO(items, h.playerIndex(ctx)))
}

func (h *Handler) TeamStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.TeamStandings")
	defer span.End()

	items, err := h.statsService.TeamStandings(ctx)
	if err != nil {
		h.logFailure(ctx, "team standings failed", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, standingsToDTO(items))
}

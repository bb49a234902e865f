package httpapi

import (
	"net/http"
	"strings"

	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/usecase"
)

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	status := r.URL.Query().Get("status")
	items, err := h.matchService.ListMatches(ctx, status)
	if err != nil {
		h.logFailure(ctx, "list matches failed", err, "status", status)
		writeError(ctx, w, err)
		return
	}

	out := make([]matchDTO, 0, len(items))
	for _, item := range items {
		out = append(out, matchToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetMatchDetail(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchDetail")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	detail, err := h.statsService.MatchDetail(ctx, matchID)
	if err != nil {
		h.logFailure(ctx, "get match detail failed", err, "match_id", matchID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchDetailToDTO(ctx, detail))
}

func (h *Handler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateMatch")
	defer span.End()

	var req createMatchRequest
	if err := decodeJSON(r, &req, false); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.matchService.CreateMatch(ctx, usecase.CreateMatchInput{
		SeriesID:  req.Series,
		TeamAID:   req.TeamA,
		TeamBID:   req.TeamB,
		MatchType: req.MatchType,
		Venue:     req.Venue,
		StartAt:   *req.StartDateTime,
	})
	if err != nil {
		h.logFailure(ctx, "create match failed", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, matchToDTO(item))
}

func (h *Handler) UpdateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateMatch")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	var req updateMatchRequest
	if err := decodeJSON(r, &req, false); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.matchService.UpdateMatch(ctx, usecase.UpdateMatchInput{
		MatchID:   matchID,
		SeriesID:  req.Series,
		TeamAID:   req.TeamA,
		TeamBID:   req.TeamB,
		MatchType: req.MatchType,
		Venue:     req.Venue,
		StartAt:   req.StartDateTime,
	})
	if err != nil {
		h.logFailure(ctx, "update match failed", err, "match_id", matchID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(item))
}

func (h *Handler) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteMatch")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	if err := h.matchService.DeleteMatch(ctx, matchID); err != nil {
		h.logFailure(ctx, "delete match failed", err, "match_id", matchID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"id": matchID, "status": "deleted"})
}

func (h *Handler) SetToss(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetToss")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	var req tossRequest
	if err := decodeJSON(r, &req, false); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.matchService.SetToss(ctx, usecase.SetTossInput{
		MatchID:      matchID,
		TossWinnerID: req.TossWinner,
		Decision:     req.TossDecision,
		MaxOvers:     req.MaxOvers,
	})
	if err != nil {
		h.logFailure(ctx, "set toss failed", err, "match_id", matchID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(item))
}

func (h *Handler) StartInnings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.StartInnings")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	var req startInningsRequest
	if err := decodeJSON(r, &req, false); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.matchService.StartInnings(ctx, usecase.StartInningsInput{
		MatchID:       matchID,
		BattingTeamID: req.BattingTeam,
		BowlingTeamID: req.BowlingTeam,
		IsSuperOver:   req.IsSuperOver,
	})
	if err != nil {
		h.logFailure(ctx, "start innings failed", err, "match_id", matchID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, inningsToDTO(item))
}

func (h *Handler) RecordBall(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordBall")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	var req recordBallRequest
	if err := decodeJSON(r, &req, false); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.scoringService.RecordDelivery(ctx, usecase.RecordDeliveryInput{
		MatchID:            matchID,
		InningsID:          req.InningsID,
		BatsmanID:          req.Batsman,
		BowlerID:           req.Bowler,
		Runs:               req.Runs,
		IsWide:             req.IsWide,
		IsNoBall:           req.IsNoBall,
		IsWicket:           req.IsWicket,
		DismissalType:      req.DismissalType,
		DismissedBatsmanID: req.DismissedBatsman,
	})
	if err != nil {
		h.logFailure(ctx, "record ball failed", err, "match_id", matchID, "innings_id", req.InningsID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, recordBallDTO{
		Ball:    deliveryToDTO(result.Delivery),
		Innings: inningsToDTO(result.Innings),
	})
}

func (h *Handler) UpdatePair(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePair")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	var req updatePairRequest
	if err := decodeJSON(r, &req, false); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.scoringService.SetActivePair(ctx, usecase.SetActivePairInput{
		MatchID:      matchID,
		InningsID:    req.InningsID,
		StrikerID:    req.Striker,
		NonStrikerID: req.NonStriker,
		BowlerID:     req.Bowler,
	})
	if err != nil {
		h.logFailure(ctx, "update pair failed", err, "match_id", matchID, "innings_id", req.InningsID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, inningsToDTO(item))
}

func (h *Handler) CompleteMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CompleteMatch")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	var req completeMatchRequest
	if err := decodeJSON(r, &req, true); err != nil {
		writeError(ctx, w, err)
		return
	}
	req.Resolution = strings.ToUpper(strings.TrimSpace(req.Resolution))
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.matchService.CompleteMatch(ctx, usecase.CompleteMatchInput{
		MatchID:        matchID,
		Resolution:     req.Resolution,
		ManualWinnerID: req.ManualWinnerID,
	})
	if err != nil {
		h.logFailure(ctx, "complete match failed", err, "match_id", matchID, "resolution", req.Resolution)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, completeMatchToDTO(result))
}

func (h *Handler) StartSuperOver(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.StartSuperOver")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	var req superOverRequest
	if err := decodeJSON(r, &req, false); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.matchService.StartSuperOver(ctx, usecase.StartSuperOverInput{
		MatchID:       matchID,
		BattingTeamID: req.BattingTeam,
	})
	if err != nil {
		h.logFailure(ctx, "start super over failed", err, "match_id", matchID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, inningsToDTO(item))
}

func (h *Handler) SkipInnings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SkipInnings")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	var req skipInningsRequest
	if err := decodeJSON(r, &req, false); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.matchService.SkipInnings(ctx, usecase.SkipInningsInput{
		MatchID:      matchID,
		InningsID:    req.InningsID,
		TotalRuns:    *req.TotalRuns,
		TotalWickets: *req.TotalWickets,
	})
	if err != nil {
		h.logFailure(ctx, "skip innings failed", err, "match_id", matchID, "innings_id", req.InningsID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, skipInningsToDTO(result))
}

// SubscribeMatch upgrades to a websocket that receives the match's score
// events. The match must exist; the stream itself carries no history.
func (h *Handler) SubscribeMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SubscribeMatch")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	if h.liveFeed == nil {
		writeError(ctx, w, usecase.ErrDependencyUnavailable)
		return
	}
	if _, err := h.matchService.GetMatch(ctx, matchID); err != nil {
		h.logFailure(ctx, "subscribe match failed", err, "match_id", matchID)
		writeError(ctx, w, err)
		return
	}
	if err := h.liveFeed.ServeMatch(w, r, matchID); err != nil {
		// The upgrader has already answered the request.
		h.logger.WarnContext(ctx, "websocket subscription failed", "match_id", matchID, "error", err)
	}
}

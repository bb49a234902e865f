package httpapi

import (
	"testing"
	"time"

	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/delivery"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/innings"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/match"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/matchevent"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/usecase"
)

func TestEncodeMatchEvent(t *testing.T) {
	now := time.Date(2026, 4, 1, 14, 0, 0, 0, time.UTC)

	got, err := EncodeMatchEvent(matchevent.Event{
		Type:    matchevent.TypeScoreUpdated,
		MatchID: "m1",
		Payload: innings.Innings{
			ID:      "i1",
			MatchID: "m1",
			Runs:    47,
			Wickets: 2,
			Overs:   float64(33) / 6,
			RunRate: 47 / (float64(33) / 6),
		},
		OccurredAt: now,
	})
	if err != nil {
		t.Fatalf("encode innings: %v", err)
	}
	dto, ok := got.(inningsDTO)
	if !ok {
		t.Fatalf("expected inningsDTO, got %T", got)
	}
	if dto.OversText != "5.3" || dto.Overs != 5.5 || dto.RunRate != 8.55 {
		t.Fatalf("unexpected innings rendering: %+v", dto)
	}
	if dto.FallOfWickets == nil {
		t.Fatalf("fall of wickets should render as an empty list")
	}

	got, err = EncodeMatchEvent(matchevent.Event{Type: matchevent.TypeMatchUpdated, Payload: match.Match{ID: "m1", Status: match.StatusLive}})
	if err != nil {
		t.Fatalf("encode match: %v", err)
	}
	if m, ok := got.(matchDTO); !ok || m.Status != "LIVE" {
		t.Fatalf("unexpected match rendering: %#v", got)
	}

	got, err = EncodeMatchEvent(matchevent.Event{Type: matchevent.TypeOverUpdated, Payload: delivery.Delivery{ID: "d1", OverNumber: 2, BallInOver: 6}})
	if err != nil {
		t.Fatalf("encode delivery: %v", err)
	}
	if d, ok := got.(deliveryDTO); !ok || d.OverNumber != 2 || d.BallInOver != 6 {
		t.Fatalf("unexpected delivery rendering: %#v", got)
	}

	if _, err := EncodeMatchEvent(matchevent.Event{Type: matchevent.TypeScoreUpdated, Payload: 42}); err == nil {
		t.Fatalf("expected error for unsupported payload")
	}
}

func TestCompleteMatchToDTO(t *testing.T) {
	tied := completeMatchToDTO(usecase.CompleteMatchResult{NeedsResolution: true, Message: "Match tied", IsSuperOver: true})
	if !tied.NeedsResolution || tied.Match != nil || tied.Status != "" {
		t.Fatalf("unexpected tie rendering: %+v", tied)
	}

	done := completeMatchToDTO(usecase.CompleteMatchResult{Match: match.Match{
		ID:            "m1",
		Status:        match.StatusCompleted,
		WinnerID:      "team-csk",
		ResultSummary: "Chennai Super Kings won by 12 runs",
	}})
	if done.Status != "COMPLETED" || done.WinnerID != "team-csk" || done.Match == nil {
		t.Fatalf("unexpected completion rendering: %+v", done)
	}
}

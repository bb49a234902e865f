package postgres

import (
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"

	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/innings"
)

func TestIsNotFound(t *testing.T) {
	if !isNotFound(sql.ErrNoRows) {
		t.Fatalf("expected sql.ErrNoRows to be not found")
	}
	if !isNotFound(fmt.Errorf("get match: %w", sql.ErrNoRows)) {
		t.Fatalf("expected wrapped sql.ErrNoRows to be not found")
	}
	if isNotFound(fmt.Errorf("connection refused")) {
		t.Fatalf("unexpected not found for unrelated error")
	}
}

func TestIsUniqueViolation(t *testing.T) {
	err := fmt.Errorf("create team: %w", &pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"})
	if !isUniqueViolation(err) {
		t.Fatalf("expected unique violation")
	}
	if isUniqueViolation(&pq.Error{Code: "23503"}) {
		t.Fatalf("foreign key violation is not a unique violation")
	}
}

func TestNullHelpers(t *testing.T) {
	if nullString("").Valid {
		t.Fatalf("empty string should be null")
	}
	if got := nullString("t1"); !got.Valid || got.String != "t1" {
		t.Fatalf("unexpected null string: %+v", got)
	}

	if timePtr(nullTime(nil)) != nil {
		t.Fatalf("nil time should stay nil")
	}
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	if got := timePtr(nullTime(&now)); got == nil || !got.Equal(now) {
		t.Fatalf("unexpected time: %v", got)
	}
}

func TestFallOfWicketsColumn(t *testing.T) {
	in := []innings.FallOfWicket{
		{WicketNumber: 1, DismissedBatsmanID: "p1", ScoreAtDismissal: 12, Over: 2},
		{WicketNumber: 2, DismissedBatsmanID: "p2", ScoreAtDismissal: 40, Over: 6},
	}
	raw, err := encodeFallOfWickets(in)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	out, err := decodeFallOfWickets(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out) != 2 || out[1].DismissedBatsmanID != "p2" || out[1].ScoreAtDismissal != 40 {
		t.Fatalf("unexpected fall of wickets: %+v", out)
	}

	empty, err := encodeFallOfWickets(nil)
	if err != nil || string(empty) != "[]" {
		t.Fatalf("empty list should encode as [], got %q err %v", empty, err)
	}
	if got, err := decodeFallOfWickets(nil); err != nil || len(got) != 0 {
		t.Fatalf("null column should decode empty, got %+v err %v", got, err)
	}
}

package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/user"
)

type fixedVerifier struct {
	principal user.Principal
}

func (v fixedVerifier) VerifyAccessToken(context.Context, string) (user.Principal, error) {
	return v.principal, nil
}

func TestRequireAuth_CarriesScorerIntoLogArgs(t *testing.T) {
	var args []any
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		args = withScorerArgs(r.Context(), []any{"match_id", "m1"})
		w.WriteHeader(http.StatusNoContent)
	})
	handler := RequireAuth(fixedVerifier{principal: user.Principal{UserID: "u-42", Email: "scorer@example.com"}}, inner)

	req := httptest.NewRequest(http.MethodPost, "/matches/m1/ball", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	if len(args) != 4 || args[2] != "scorer_id" || args[3] != "u-42" {
		t.Fatalf("unexpected log args: %v", args)
	}
}

func TestWithScorerArgs_AnonymousLeavesArgsAlone(t *testing.T) {
	args := withScorerArgs(context.Background(), []any{"match_id", "m1"})
	if len(args) != 2 {
		t.Fatalf("unexpected log args: %v", args)
	}

	ctx := withScorer(context.Background(), user.Principal{})
	if _, ok := scorerFromContext(ctx); ok {
		t.Fatalf("a principal without a user id is not a scorer")
	}
}

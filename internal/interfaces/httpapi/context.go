package httpapi

import (
	"context"

	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/user"
)

// scorerKey carries the authenticated scorer behind a mutating request.
type scorerKey struct{}

func withScorer(ctx context.Context, scorer user.Principal) context.Context {
	return context.WithValue(ctx, scorerKey{}, scorer)
}

func scorerFromContext(ctx context.Context) (user.Principal, bool) {
	scorer, ok := ctx.Value(scorerKey{}).(user.Principal)
	return scorer, ok && scorer.UserID != ""
}

// withScorerArgs tags log arguments with the acting scorer, if any.
func withScorerArgs(ctx context.Context, args []any) []any {
	if scorer, ok := scorerFromContext(ctx); ok {
		return append(args, "scorer_id", scorer.UserID)
	}
	return args
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/innings"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/matchevent"
)

func TestScoringService_RecordDelivery_NumbersBalls(t *testing.T) {
	env := newScoringEnv(t)
	_, inn := env.startMatch(t)

	first := env.ball(t, inn, "csk-gaikwad", "mi-bumrah", 4)
	assert.Equal(t, 1, first.Delivery.OverNumber)
	assert.Equal(t, 1, first.Delivery.BallInOver)
	assert.Equal(t, 4, first.Innings.Runs)

	extra := env.ball(t, inn, "csk-gaikwad", "mi-bumrah", 0, wide)
	assert.Equal(t, 2, extra.Delivery.BallInOver, "a wide shares the next legal ball's slot")
	assert.Equal(t, 5, extra.Innings.Runs)

	for i := 0; i < 5; i++ {
		env.ball(t, inn, "csk-gaikwad", "mi-bumrah", 1)
	}
	seventh := env.ball(t, inn, "csk-conway", "mi-pandya", 0)
	assert.Equal(t, 2, seventh.Delivery.OverNumber)
	assert.Equal(t, 1, seventh.Delivery.BallInOver)
	assert.InDelta(t, 7.0/6.0, seventh.Innings.Overs, 1e-9)
	assert.Equal(t, 10, seventh.Innings.Runs)
}

func TestScoringService_RecordDelivery_NoBallAddsPenalty(t *testing.T) {
	env := newScoringEnv(t)
	_, inn := env.startMatch(t)

	out := env.ball(t, inn, "csk-gaikwad", "mi-bumrah", 6, noBall)
	assert.Equal(t, 7, out.Innings.Runs)
	assert.Zero(t, out.Innings.Overs)
}

func TestScoringService_RecordDelivery_FallOfWicket(t *testing.T) {
	env := newScoringEnv(t)
	_, inn := env.startMatch(t)

	env.ball(t, inn, "csk-gaikwad", "mi-bumrah", 2)
	out := env.ball(t, inn, "csk-gaikwad", "mi-bumrah", 1, wicket("csk-gaikwad"))

	require.Len(t, out.Innings.FallOfWickets, 1)
	fow := out.Innings.FallOfWickets[0]
	assert.Equal(t, 1, fow.WicketNumber)
	assert.Equal(t, "csk-gaikwad", fow.DismissedBatsmanID)
	assert.Equal(t, 3, fow.ScoreAtDismissal)
	assert.Equal(t, 1, out.Innings.Wickets)

	_, err := env.scoring.RecordDelivery(context.Background(), RecordDeliveryInput{
		MatchID:   inn.MatchID,
		InningsID: inn.ID,
		BatsmanID: "csk-gaikwad",
		BowlerID:  "mi-bumrah",
	})
	require.ErrorIs(t, err, ErrAlreadyDismissed)
}

func TestScoringService_RecordDelivery_FallOfWicketOnlyDismissal(t *testing.T) {
	env := newScoringEnv(t)
	_, inn := env.startMatch(t)
	ctx := context.Background()

	stored, _, err := env.innings.GetByID(ctx, inn.ID)
	require.NoError(t, err)
	stored.Wickets = 1
	stored.FallOfWickets = []innings.FallOfWicket{{WicketNumber: 1, DismissedBatsmanID: "csk-conway", ScoreAtDismissal: 0, Over: 1}}
	require.NoError(t, env.innings.Update(ctx, stored))

	_, err = env.scoring.RecordDelivery(ctx, RecordDeliveryInput{
		MatchID:   inn.MatchID,
		InningsID: inn.ID,
		BatsmanID: "csk-conway",
		BowlerID:  "mi-bumrah",
		Runs:      1,
	})
	require.ErrorIs(t, err, ErrAlreadyDismissed)

	env.ball(t, inn, "csk-gaikwad", "mi-bumrah", 1)
}

func TestScoringService_RecordDelivery_RejectsEleventhWicket(t *testing.T) {
	env := newScoringEnv(t)
	_, inn := env.startMatch(t)
	ctx := context.Background()

	var last RecordDeliveryResult
	for i := 1; i <= innings.MaxWickets; i++ {
		batsman := fmt.Sprintf("csk-batter-%d", i)
		last = env.ball(t, inn, batsman, "mi-bumrah", 0, wicket(batsman))
	}
	require.Equal(t, innings.MaxWickets, last.Innings.Wickets)

	_, err := env.scoring.RecordDelivery(ctx, RecordDeliveryInput{
		MatchID:            inn.MatchID,
		InningsID:          inn.ID,
		BatsmanID:          "csk-batter-11",
		BowlerID:           "mi-bumrah",
		IsWicket:           true,
		DismissalType:      "bowled",
		DismissedBatsmanID: "csk-batter-11",
	})
	require.ErrorIs(t, err, ErrInvalidState)

	got, _, err := env.innings.GetByID(ctx, inn.ID)
	require.NoError(t, err)
	assert.Equal(t, innings.MaxWickets, got.Wickets)
	assert.Len(t, got.FallOfWickets, innings.MaxWickets)
}

func TestScoringService_RecordDelivery_Validation(t *testing.T) {
	env := newScoringEnv(t)
	_, inn := env.startMatch(t)
	ctx := context.Background()

	cases := []struct {
		name  string
		input RecordDeliveryInput
		want  error
	}{
		{"batsman is bowler", RecordDeliveryInput{MatchID: inn.MatchID, InningsID: inn.ID, BatsmanID: "csk-dhoni", BowlerID: "csk-dhoni"}, ErrInvalidInput},
		{"missing bowler", RecordDeliveryInput{MatchID: inn.MatchID, InningsID: inn.ID, BatsmanID: "csk-dhoni"}, ErrInvalidInput},
		{"negative runs", RecordDeliveryInput{MatchID: inn.MatchID, InningsID: inn.ID, BatsmanID: "csk-dhoni", BowlerID: "mi-bumrah", Runs: -1}, ErrInvalidInput},
		{"dismissal without wicket", RecordDeliveryInput{MatchID: inn.MatchID, InningsID: inn.ID, BatsmanID: "csk-dhoni", BowlerID: "mi-bumrah", DismissalType: "caught"}, ErrInvalidInput},
		{"unknown innings", RecordDeliveryInput{MatchID: inn.MatchID, InningsID: "missing", BatsmanID: "csk-dhoni", BowlerID: "mi-bumrah"}, ErrNotFound},
		{"unknown match", RecordDeliveryInput{MatchID: "missing", InningsID: inn.ID, BatsmanID: "csk-dhoni", BowlerID: "mi-bumrah"}, ErrNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := env.scoring.RecordDelivery(ctx, tc.input)
			require.ErrorIs(t, err, tc.want)
		})
	}

	got, _, err := env.innings.GetByID(ctx, inn.ID)
	require.NoError(t, err)
	assert.Zero(t, got.Runs, "rejected deliveries must not change the innings")
}

func TestScoringService_RecordDelivery_RejectsCompletedInnings(t *testing.T) {
	env := newScoringEnv(t)
	m, first := env.startMatch(t)
	env.nextInnings(t, m.ID, mi, csk)

	_, err := env.scoring.RecordDelivery(context.Background(), RecordDeliveryInput{
		MatchID:   m.ID,
		InningsID: first.ID,
		BatsmanID: "csk-dhoni",
		BowlerID:  "mi-bumrah",
	})
	require.ErrorIs(t, err, ErrInvalidState)
}

func TestScoringService_RecordDelivery_ContentionIsRetryable(t *testing.T) {
	env := newScoringEnv(t)
	_, inn := env.startMatch(t)

	unlock, err := env.locker.Lock(context.Background(), inningsLockKey(inn.ID))
	require.NoError(t, err)

	_, err = env.scoring.RecordDelivery(context.Background(), RecordDeliveryInput{
		MatchID:   inn.MatchID,
		InningsID: inn.ID,
		BatsmanID: "csk-dhoni",
		BowlerID:  "mi-bumrah",
		Runs:      1,
	})
	require.ErrorIs(t, err, ErrContention)
	assert.False(t, errors.Is(err, ErrInvalidInput))

	unlock()
	env.ball(t, inn, "csk-dhoni", "mi-bumrah", 1)
}

func TestScoringService_RecordDelivery_ConcurrentWritersGetDistinctSlots(t *testing.T) {
	env := newScoringEnv(t)
	_, inn := env.startMatch(t)

	const balls = 24
	var g errgroup.Group
	results := make([]RecordDeliveryResult, balls)
	for i := 0; i < balls; i++ {
		g.Go(func() error {
			for {
				out, err := env.scoring.RecordDelivery(context.Background(), RecordDeliveryInput{
					MatchID:   inn.MatchID,
					InningsID: inn.ID,
					BatsmanID: "csk-jadeja",
					BowlerID:  "mi-bumrah",
					Runs:      1,
				})
				if errors.Is(err, ErrContention) {
					continue
				}
				results[i] = out
				return err
			}
		})
	}
	require.NoError(t, g.Wait())

	seen := make(map[string]bool, balls)
	for _, r := range results {
		key := fmt.Sprintf("%d.%d", r.Delivery.OverNumber, r.Delivery.BallInOver)
		assert.False(t, seen[key], "slot %s assigned twice", key)
		seen[key] = true
	}

	got, exists, err := env.innings.GetByID(context.Background(), inn.ID)
	require.NoError(t, err)
	require.True(t, exists)
	assert.Equal(t, balls, got.Runs)
	assert.InDelta(t, 4.0, got.Overs, 1e-9)
}

func TestScoringService_PublishesScoreAndOverEvents(t *testing.T) {
	env := newScoringEnv(t)
	_, inn := env.startMatch(t)
	before := env.publisher.count(matchevent.TypeScoreUpdated)

	for i := 0; i < 6; i++ {
		env.ball(t, inn, "csk-gaikwad", "mi-bumrah", 0)
	}

	assert.Equal(t, before+6, env.publisher.count(matchevent.TypeScoreUpdated))
	assert.Equal(t, 1, env.publisher.count(matchevent.TypeOverUpdated))
}

func TestScoringService_SetActivePair(t *testing.T) {
	env := newScoringEnv(t)
	_, inn := env.startMatch(t)

	got, err := env.scoring.SetActivePair(context.Background(), SetActivePairInput{
		MatchID:      inn.MatchID,
		InningsID:    inn.ID,
		StrikerID:    "csk-gaikwad",
		NonStrikerID: "csk-conway",
		BowlerID:     "mi-bumrah",
	})
	require.NoError(t, err)
	assert.Equal(t, "csk-gaikwad", got.StrikerID)
	assert.Equal(t, "csk-conway", got.NonStrikerID)
	assert.Equal(t, "mi-bumrah", got.BowlerID)

	_, err = env.scoring.SetActivePair(context.Background(), SetActivePairInput{MatchID: inn.MatchID})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestScoringService_RecomputeInnings_RestoresDriftedTotals(t *testing.T) {
	env := newScoringEnv(t)
	_, inn := env.startMatch(t)
	ctx := context.Background()

	env.ball(t, inn, "csk-gaikwad", "mi-bumrah", 4)
	env.ball(t, inn, "csk-gaikwad", "mi-bumrah", 0, wicket("csk-gaikwad"))

	drifted, _, err := env.innings.GetByID(ctx, inn.ID)
	require.NoError(t, err)
	drifted.Runs = 99
	drifted.FallOfWickets = nil
	require.NoError(t, env.innings.Update(ctx, drifted))

	rebuilt, err := env.scoring.RecomputeInnings(ctx, inn.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, rebuilt.Runs)
	assert.Equal(t, 1, rebuilt.Wickets)
	require.Len(t, rebuilt.FallOfWickets, 1)
	assert.Equal(t, 4, rebuilt.FallOfWickets[0].ScoreAtDismissal)

	_, err = env.scoring.RecomputeInnings(ctx, "missing")
	require.ErrorIs(t, err, ErrNotFound)
}

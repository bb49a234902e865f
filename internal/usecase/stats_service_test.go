package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsService_MatchDetailBuildsScorecards(t *testing.T) {
	env := newScoringEnv(t)
	ctx := context.Background()
	m, first := env.startMatch(t)

	env.ball(t, first, "csk-gaikwad", "mi-bumrah", 4)
	env.ball(t, first, "csk-gaikwad", "mi-bumrah", 6)
	env.ball(t, first, "csk-gaikwad", "mi-bumrah", 0, wide)
	env.ball(t, first, "csk-gaikwad", "mi-bumrah", 0, wicket("csk-gaikwad"))
	second := env.nextInnings(t, m.ID, mi, csk)
	env.ball(t, second, "mi-rohit", "csk-jadeja", 1)

	detail, err := env.stats.MatchDetail(ctx, m.ID)
	require.NoError(t, err)
	require.Len(t, detail.Innings, 2)
	require.Len(t, detail.Scorecards, 2)

	card := detail.Scorecards[0]
	assert.Equal(t, first.ID, card.InningsID)
	require.Len(t, card.Batting, 1)
	bat := card.Batting[0]
	assert.Equal(t, "csk-gaikwad", bat.PlayerID)
	assert.Equal(t, 10, bat.Runs)
	assert.Equal(t, 3, bat.Balls, "wides are not balls faced")
	assert.Equal(t, 1, bat.Fours)
	assert.Equal(t, 1, bat.Sixes)
	assert.True(t, bat.IsOut)

	require.Len(t, card.Bowling, 1)
	bowl := card.Bowling[0]
	assert.Equal(t, 11, bowl.RunsConceded)
	assert.Equal(t, 3, bowl.LegalBalls)
	assert.Equal(t, 1, bowl.Wickets)

	_, err = env.stats.MatchDetail(ctx, "missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestStatsService_Leaderboards(t *testing.T) {
	env := newScoringEnv(t)
	ctx := context.Background()
	m, first := env.startMatch(t)
	env.ball(t, first, "csk-gaikwad", "mi-bumrah", 4)
	env.ball(t, first, "csk-conway", "mi-bumrah", 1)
	env.ball(t, first, "csk-conway", "mi-pandya", 0, wicket("csk-conway"))
	second := env.nextInnings(t, m.ID, mi, csk)
	env.ball(t, second, "mi-rohit", "csk-jadeja", 6)

	batting, err := env.stats.BattingLeaderboard(ctx, 2)
	require.NoError(t, err)
	require.Len(t, batting, 2)
	assert.Equal(t, "mi-rohit", batting[0].PlayerID)
	assert.Equal(t, "csk-gaikwad", batting[1].PlayerID)

	bowling, err := env.stats.BowlingLeaderboard(ctx, 0)
	require.NoError(t, err)
	require.NotEmpty(t, bowling)
	assert.Equal(t, "mi-pandya", bowling[0].PlayerID)
	assert.Equal(t, 1, bowling[0].Wickets)
}

func TestStatsService_TeamStandingsCountsCompletedMatches(t *testing.T) {
	env := newScoringEnv(t)
	ctx := context.Background()
	m, first := env.startMatch(t)
	env.playInnings(t, first, 8, 0)
	second := env.nextInnings(t, m.ID, mi, csk)
	env.playInnings(t, second, 3, 1)
	_, err := env.matches.CompleteMatch(ctx, CompleteMatchInput{MatchID: m.ID})
	require.NoError(t, err)

	standings, err := env.stats.TeamStandings(ctx)
	require.NoError(t, err)
	require.Len(t, standings, 2)
	assert.Equal(t, csk, standings[0].TeamID)
	assert.Equal(t, 1, standings[0].Wins)
	assert.Equal(t, 1, standings[1].Losses)
}

func TestStatsService_PlayerDetailCareer(t *testing.T) {
	env := newScoringEnv(t)
	ctx := context.Background()
	_, first := env.startMatch(t)
	env.ball(t, first, "csk-dhoni", "mi-bumrah", 0, wicket("csk-dhoni"))
	env.ball(t, first, "csk-jadeja", "mi-bumrah", 2)

	detail, err := env.stats.PlayerDetail(ctx, "csk-dhoni")
	require.NoError(t, err)
	assert.Equal(t, "MS Dhoni", detail.Player.Name)
	assert.Equal(t, 1, detail.Career.MatchesPlayed)
	assert.Equal(t, 1, detail.Career.Ducks)
	assert.Equal(t, 1, detail.Career.Dismissals)

	bowler, err := env.stats.PlayerDetail(ctx, "mi-bumrah")
	require.NoError(t, err)
	assert.Equal(t, 1, bowler.Career.Wickets)
	assert.Equal(t, 1, bowler.Career.BestBowling.Wickets)
	assert.Equal(t, 2, bowler.Career.BestBowling.Runs)

	_, err = env.stats.PlayerDetail(ctx, "nobody")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestStatsService_TeamDetail(t *testing.T) {
	env := newScoringEnv(t)
	ctx := context.Background()
	_, first := env.startMatch(t)
	env.ball(t, first, "csk-gaikwad", "mi-bumrah", 4)

	detail, err := env.stats.TeamDetail(ctx, csk)
	require.NoError(t, err)
	assert.Equal(t, "Chennai Super Kings", detail.Team.Name)
	assert.NotEmpty(t, detail.Players)
	require.NotEmpty(t, detail.TopBatsmen)
	assert.Equal(t, "csk-gaikwad", detail.TopBatsmen[0].PlayerID)

	_, err = env.stats.TeamDetail(ctx, "team-rcb")
	require.ErrorIs(t, err, ErrNotFound)
}

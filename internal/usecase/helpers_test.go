package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/innings"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/match"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/matchevent"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/scoring"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/infrastructure/repository/memory"
	idgen "github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/platform/id"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/platform/keylock"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/platform/logging"
)

const (
	csk = memory.TeamIDChennai
	mi  = memory.TeamIDMumbai
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []matchevent.Event
}

func (p *recordingPublisher) Publish(_ context.Context, event matchevent.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) count(kind matchevent.Type) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, e := range p.events {
		if e.Type == kind {
			n++
		}
	}
	return n
}

type scoringEnv struct {
	matches   *MatchService
	scoring   *ScoringService
	stats     *StatsService
	locker    *keylock.Locker
	publisher *recordingPublisher
	innings   *memory.InningsRepository
}

func newScoringEnv(t *testing.T) *scoringEnv {
	t.Helper()
	return newScoringEnvWith(t, 50*time.Millisecond, nil)
}

// newScoringEnvWith lets a test widen the lock wait and wrap the ledger.
func newScoringEnvWith(t *testing.T, lockWait time.Duration, wrap func(scoring.Ledger) scoring.Ledger) *scoringEnv {
	t.Helper()

	deliveries := memory.NewDeliveryRepository()
	inningsRepo := memory.NewInningsRepository()
	matchRepo := memory.NewMatchRepository(inningsRepo, deliveries)
	teamRepo := memory.NewTeamRepository(memory.SeedTeams())
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers())
	seriesRepo := memory.NewSeriesRepository()
	locker := keylock.New(lockWait)
	var ledger scoring.Ledger = memory.NewScoringLedger(deliveries, inningsRepo)
	if wrap != nil {
		ledger = wrap(ledger)
	}
	publisher := &recordingPublisher{}
	ids := idgen.NewUUIDGenerator()
	logger := logging.NewNop()

	return &scoringEnv{
		matches:   NewMatchService(matchRepo, inningsRepo, teamRepo, seriesRepo, locker, publisher, ids, logger, MatchServiceConfig{DefaultMaxOvers: DefaultMaxOvers}),
		scoring:   NewScoringService(matchRepo, inningsRepo, deliveries, ledger, locker, publisher, ids, logger),
		stats:     NewStatsService(matchRepo, inningsRepo, deliveries, teamRepo, playerRepo),
		locker:    locker,
		publisher: publisher,
		innings:   inningsRepo,
	}
}

// startMatch creates CSK v MI with CSK batting first.
func (e *scoringEnv) startMatch(t *testing.T) (match.Match, innings.Innings) {
	t.Helper()
	ctx := context.Background()

	m, err := e.matches.CreateMatch(ctx, CreateMatchInput{
		TeamAID:   csk,
		TeamBID:   mi,
		MatchType: "T20",
		Venue:     "Chepauk",
		StartAt:   time.Date(2026, 4, 1, 14, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	_, err = e.matches.SetToss(ctx, SetTossInput{MatchID: m.ID, TossWinnerID: csk, Decision: "BAT"})
	require.NoError(t, err)

	inn, err := e.matches.StartInnings(ctx, StartInningsInput{MatchID: m.ID, BattingTeamID: csk, BowlingTeamID: mi})
	require.NoError(t, err)
	return m, inn
}

func (e *scoringEnv) nextInnings(t *testing.T, matchID, batting, bowling string) innings.Innings {
	t.Helper()
	inn, err := e.matches.StartInnings(context.Background(), StartInningsInput{MatchID: matchID, BattingTeamID: batting, BowlingTeamID: bowling})
	require.NoError(t, err)
	return inn
}

func (e *scoringEnv) ball(t *testing.T, inn innings.Innings, batsman, bowler string, runs int, mods ...func(*RecordDeliveryInput)) RecordDeliveryResult {
	t.Helper()
	input := RecordDeliveryInput{
		MatchID:   inn.MatchID,
		InningsID: inn.ID,
		BatsmanID: batsman,
		BowlerID:  bowler,
		Runs:      runs,
	}
	for _, mod := range mods {
		mod(&input)
	}
	out, err := e.scoring.RecordDelivery(context.Background(), input)
	require.NoError(t, err)
	return out
}

func wide(in *RecordDeliveryInput)   { in.IsWide = true }
func noBall(in *RecordDeliveryInput) { in.IsNoBall = true }

func wicket(batsman string) func(*RecordDeliveryInput) {
	return func(in *RecordDeliveryInput) {
		in.IsWicket = true
		in.DismissalType = "bowled"
		in.DismissedBatsmanID = batsman
	}
}

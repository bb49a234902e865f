package innings

import (
	"errors"
	"time"
)

// MaxWickets ends an innings when reached.
const MaxWickets = 10

// FallOfWicket records the score when a batsman was dismissed.
type FallOfWicket struct {
	WicketNumber       int    `json:"wicketNumber"`
	DismissedBatsmanID string `json:"dismissedBatsman"`
	ScoreAtDismissal   int    `json:"scoreAtDismissal"`
	Over               int    `json:"over"`
}

type Innings struct {
	ID            string
	MatchID       string
	Sequence      int
	BattingTeamID string
	BowlingTeamID string
	Runs          int
	Wickets       int
	Overs         float64
	RunRate       float64
	FallOfWickets []FallOfWicket
	StrikerID     string
	NonStrikerID  string
	BowlerID      string
	IsCompleted   bool
	IsSuperOver   bool
	// ManualTotals marks totals that were entered by the skip override rather
	// than derived from the delivery log.
	ManualTotals bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (i Innings) Validate() error {
	if i.ID == "" || i.MatchID == "" {
		return errors.New("innings ids are required")
	}
	if i.BattingTeamID == "" || i.BowlingTeamID == "" {
		return errors.New("innings teams are required")
	}
	if i.BattingTeamID == i.BowlingTeamID {
		return errors.New("innings batting and bowling teams must differ")
	}
	if i.Wickets < 0 || i.Wickets > MaxWickets {
		return errors.New("innings wickets out of range")
	}
	return nil
}

// Clone returns a copy that does not share the fall-of-wicket slice.
func (i Innings) Clone() Innings {
	out := i
	out.FallOfWickets = append([]FallOfWicket(nil), i.FallOfWickets...)
	return out
}

// RecordFallOfWicket appends the next wicket entry at the current score.
func (i *Innings) RecordFallOfWicket(batsmanID string, over int) {
	i.FallOfWickets = append(i.FallOfWickets, FallOfWicket{
		WicketNumber:       len(i.FallOfWickets) + 1,
		DismissedBatsmanID: batsmanID,
		ScoreAtDismissal:   i.Runs,
		Over:               over,
	})
}

// SetActivePair overwrites the striker, non-striker and bowler.
func (i *Innings) SetActivePair(striker, nonStriker, bowler string) {
	i.StrikerID = striker
	i.NonStrikerID = nonStriker
	i.BowlerID = bowler
}

// ApplyManualTotals is the skip override: the totals stand in for the log.
func (i *Innings) ApplyManualTotals(runs, wickets, overs int) {
	i.Runs = runs
	i.Wickets = wickets
	i.Overs = float64(overs)
	i.RunRate = RunRate(runs, i.Overs)
	i.IsCompleted = true
	i.ManualTotals = true
}

// RunRate is runs per over, 0 before the first legal ball.
func RunRate(runs int, overs float64) float64 {
	if overs <= 0 {
		return 0
	}
	return float64(runs) / overs
}

package stats

import (
	"cmp"
	"slices"

	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/delivery"
)

type BattingLine struct {
	PlayerID      string
	Runs          int
	Balls         int
	Fours         int
	Sixes         int
	IsOut         bool
	DismissalType string
	StrikeRate    float64
}

type BowlingLine struct {
	PlayerID     string
	RunsConceded int
	LegalBalls   int
	Wickets      int
	Overs        string
	Economy      float64
}

type BallSummary struct {
	DeliveryID    string
	BallInOver    int
	BatsmanID     string
	Runs          int
	IsWide        bool
	IsNoBall      bool
	IsWicket      bool
	DismissalType string
}

type OverSummary struct {
	OverNumber int
	BowlerID   string
	Runs       int
	Wickets    int
	Balls      []BallSummary
}

type Scorecard struct {
	InningsID string
	Batting   []BattingLine
	Bowling   []BowlingLine
	Overs     []OverSummary
}

// BuildScorecard derives one innings' card. Batting and bowling lines keep
// the order in which players first appear in the log.
func BuildScorecard(inningsID string, items []delivery.Delivery) Scorecard {
	return Scorecard{
		InningsID: inningsID,
		Batting:   battingLines(items),
		Bowling:   bowlingLines(items),
		Overs:     overSummaries(items),
	}
}

func battingLines(items []delivery.Delivery) []BattingLine {
	var order []string
	lines := make(map[string]*BattingLine)
	line := func(playerID string) *BattingLine {
		l, ok := lines[playerID]
		if !ok {
			l = &BattingLine{PlayerID: playerID}
			lines[playerID] = l
			order = append(order, playerID)
		}
		return l
	}

	for _, d := range items {
		l := line(d.BatsmanID)
		l.Runs += d.Runs
		if !d.IsWide {
			l.Balls++
		}
		switch d.Runs {
		case 4:
			l.Fours++
		case 6:
			l.Sixes++
		}
		if d.IsWicket && d.DismissedBatsmanID != "" {
			out := line(d.DismissedBatsmanID)
			out.IsOut = true
			out.DismissalType = d.DismissalType
		}
	}

	result := make([]BattingLine, 0, len(order))
	for _, id := range order {
		l := lines[id]
		l.StrikeRate = StrikeRate(l.Runs, l.Balls)
		result = append(result, *l)
	}
	return result
}

func bowlingLines(items []delivery.Delivery) []BowlingLine {
	var order []string
	lines := make(map[string]*BowlingLine)
	for _, d := range items {
		l, ok := lines[d.BowlerID]
		if !ok {
			l = &BowlingLine{PlayerID: d.BowlerID}
			lines[d.BowlerID] = l
			order = append(order, d.BowlerID)
		}
		l.RunsConceded += d.TotalRuns()
		if d.IsLegal() {
			l.LegalBalls++
		}
		if d.IsWicket {
			l.Wickets++
		}
	}

	result := make([]BowlingLine, 0, len(order))
	for _, id := range order {
		l := lines[id]
		l.Overs = OversText(l.LegalBalls)
		l.Economy = Economy(l.RunsConceded, l.LegalBalls)
		result = append(result, *l)
	}
	return result
}

func overSummaries(items []delivery.Delivery) []OverSummary {
	byOver := make(map[int]*OverSummary)
	for _, d := range items {
		o, ok := byOver[d.OverNumber]
		if !ok {
			o = &OverSummary{OverNumber: d.OverNumber, BowlerID: d.BowlerID}
			byOver[d.OverNumber] = o
		}
		o.Runs += d.TotalRuns()
		if d.IsWicket {
			o.Wickets++
		}
		o.Balls = append(o.Balls, BallSummary{
			DeliveryID:    d.ID,
			BallInOver:    d.BallInOver,
			BatsmanID:     d.BatsmanID,
			Runs:          d.Runs,
			IsWide:        d.IsWide,
			IsNoBall:      d.IsNoBall,
			IsWicket:      d.IsWicket,
			DismissalType: d.DismissalType,
		})
	}

	result := make([]OverSummary, 0, len(byOver))
	for _, o := range byOver {
		slices.SortStableFunc(o.Balls, func(a, b BallSummary) int {
			return cmp.Compare(a.BallInOver, b.BallInOver)
		})
		result = append(result, *o)
	}
	slices.SortFunc(result, func(a, b OverSummary) int {
		return cmp.Compare(a.OverNumber, b.OverNumber)
	})
	return result
}

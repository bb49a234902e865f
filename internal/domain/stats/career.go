package stats

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/delivery"
)

const (
	fiftyThreshold   = 50
	hundredThreshold = 100
)

// BestBowling is the single innings with the most wickets, ties broken by
// fewest runs conceded.
type BestBowling struct {
	Wickets int
	Runs    int
}

func (b BestBowling) String() string {
	return fmt.Sprintf("%d/%d", b.Wickets, b.Runs)
}

func (b BestBowling) betterThan(other BestBowling) bool {
	if b.Wickets != other.Wickets {
		return b.Wickets > other.Wickets
	}
	return b.Runs < other.Runs
}

// OverBatting is what a batsman scored in one over of one innings.
type OverBatting struct {
	InningsID  string
	OverNumber int
	Runs       int
	Balls      int
	Boundaries int
}

type inningsOver struct {
	inningsID string
	over      int
}

type Career struct {
	MatchesPlayed  int
	BattingInnings int
	TotalRuns      int
	BallsFaced     int
	Fours          int
	Sixes          int
	Dismissals     int
	HighestScore   int
	Fifties        int
	Hundreds       int
	Ducks          int
	BattingAverage float64
	StrikeRate     float64

	BowlingInnings int
	Wickets        int
	RunsConceded   int
	BallsBowled    int
	Overs          string
	Economy        float64
	BestBowling    BestBowling

	OverWise []OverBatting
}

type inningsBatting struct {
	runs      int
	dismissed bool
}

// BuildCareer folds every delivery touching playerID into career figures.
// Deliveries not involving the player are ignored.
func BuildCareer(playerID string, items []delivery.Delivery) Career {
	var c Career
	matches := make(map[string]struct{})
	batting := make(map[string]*inningsBatting)
	var battingOrder []string
	bowling := make(map[string]*BestBowling)
	var bowlingOrder []string
	overWise := make(map[inningsOver]*OverBatting)

	battingFor := func(inningsID string) *inningsBatting {
		b, ok := batting[inningsID]
		if !ok {
			b = &inningsBatting{}
			batting[inningsID] = b
			battingOrder = append(battingOrder, inningsID)
		}
		return b
	}

	for _, d := range items {
		if d.BatsmanID == playerID {
			matches[d.MatchID] = struct{}{}
			b := battingFor(d.InningsID)
			b.runs += d.Runs
			c.TotalRuns += d.Runs
			if !d.IsWide {
				c.BallsFaced++
			}
			switch d.Runs {
			case 4:
				c.Fours++
			case 6:
				c.Sixes++
			}
			key := inningsOver{inningsID: d.InningsID, over: d.OverNumber}
			ow, ok := overWise[key]
			if !ok {
				ow = &OverBatting{InningsID: d.InningsID, OverNumber: d.OverNumber}
				overWise[key] = ow
			}
			ow.Runs += d.Runs
			if !d.IsWide {
				ow.Balls++
			}
			if d.Runs == 4 || d.Runs == 6 {
				ow.Boundaries++
			}
		}
		if d.Dismisses(playerID) {
			battingFor(d.InningsID).dismissed = true
			c.Dismissals++
		}
		if d.BowlerID == playerID {
			matches[d.MatchID] = struct{}{}
			spell, ok := bowling[d.InningsID]
			if !ok {
				spell = &BestBowling{}
				bowling[d.InningsID] = spell
				bowlingOrder = append(bowlingOrder, d.InningsID)
			}
			spell.Runs += d.TotalRuns()
			c.RunsConceded += d.TotalRuns()
			if d.IsLegal() {
				c.BallsBowled++
			}
			if d.IsWicket {
				spell.Wickets++
				c.Wickets++
			}
		}
	}

	c.MatchesPlayed = len(matches)
	c.BattingInnings = len(battingOrder)
	for _, id := range battingOrder {
		b := batting[id]
		c.HighestScore = max(c.HighestScore, b.runs)
		switch {
		case b.runs >= hundredThreshold:
			c.Hundreds++
		case b.runs >= fiftyThreshold:
			c.Fifties++
		case b.runs == 0 && b.dismissed:
			c.Ducks++
		}
	}
	c.BattingAverage = Average(c.TotalRuns, c.Dismissals)
	c.StrikeRate = StrikeRate(c.TotalRuns, c.BallsFaced)

	c.BowlingInnings = len(bowlingOrder)
	for i, id := range bowlingOrder {
		spell := *bowling[id]
		if i == 0 || spell.betterThan(c.BestBowling) {
			c.BestBowling = spell
		}
	}
	c.Overs = OversText(c.BallsBowled)
	c.Economy = Economy(c.RunsConceded, c.BallsBowled)

	inningsRank := make(map[string]int, len(battingOrder))
	for i, id := range battingOrder {
		inningsRank[id] = i
	}
	c.OverWise = make([]OverBatting, 0, len(overWise))
	for _, ow := range overWise {
		c.OverWise = append(c.OverWise, *ow)
	}
	slices.SortFunc(c.OverWise, func(a, b OverBatting) int {
		if c := cmp.Compare(inningsRank[a.InningsID], inningsRank[b.InningsID]); c != 0 {
			return c
		}
		return cmp.Compare(a.OverNumber, b.OverNumber)
	})
	return c
}

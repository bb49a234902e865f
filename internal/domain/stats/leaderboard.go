package stats

import (
	"cmp"
	"slices"
	"strings"

	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/delivery"
)

type BattingEntry struct {
	PlayerID     string
	Innings      int
	Runs         int
	Balls        int
	Fours        int
	Sixes        int
	Dismissals   int
	HighestScore int
	Average      float64
	StrikeRate   float64
}

type BowlingEntry struct {
	PlayerID     string
	Innings      int
	Wickets      int
	RunsConceded int
	LegalBalls   int
	Overs        string
	Economy      float64
}

// BattingLeaderboard ranks batsmen by runs, then strike rate. limit <= 0
// returns everyone.
func BattingLeaderboard(items []delivery.Delivery, limit int) []BattingEntry {
	entries := make(map[string]*BattingEntry)
	inningsRuns := make(map[[2]string]int)
	entry := func(playerID string) *BattingEntry {
		e, ok := entries[playerID]
		if !ok {
			e = &BattingEntry{PlayerID: playerID}
			entries[playerID] = e
		}
		return e
	}

	for _, d := range items {
		e := entry(d.BatsmanID)
		key := [2]string{d.BatsmanID, d.InningsID}
		if _, seen := inningsRuns[key]; !seen {
			e.Innings++
		}
		inningsRuns[key] += d.Runs
		e.HighestScore = max(e.HighestScore, inningsRuns[key])
		e.Runs += d.Runs
		if !d.IsWide {
			e.Balls++
		}
		switch d.Runs {
		case 4:
			e.Fours++
		case 6:
			e.Sixes++
		}
		if d.IsWicket && d.DismissedBatsmanID != "" {
			entry(d.DismissedBatsmanID).Dismissals++
		}
	}

	out := make([]BattingEntry, 0, len(entries))
	for _, e := range entries {
		e.Average = Average(e.Runs, e.Dismissals)
		e.StrikeRate = StrikeRate(e.Runs, e.Balls)
		out = append(out, *e)
	}
	slices.SortFunc(out, func(a, b BattingEntry) int {
		if c := cmp.Compare(b.Runs, a.Runs); c != 0 {
			return c
		}
		if c := cmp.Compare(b.StrikeRate, a.StrikeRate); c != 0 {
			return c
		}
		return strings.Compare(a.PlayerID, b.PlayerID)
	})
	return truncate(out, limit)
}

// BowlingLeaderboard ranks bowlers by wickets, then economy (lower first).
func BowlingLeaderboard(items []delivery.Delivery, limit int) []BowlingEntry {
	entries := make(map[string]*BowlingEntry)
	spells := make(map[[2]string]struct{})
	for _, d := range items {
		e, ok := entries[d.BowlerID]
		if !ok {
			e = &BowlingEntry{PlayerID: d.BowlerID}
			entries[d.BowlerID] = e
		}
		key := [2]string{d.BowlerID, d.InningsID}
		if _, seen := spells[key]; !seen {
			spells[key] = struct{}{}
			e.Innings++
		}
		e.RunsConceded += d.TotalRuns()
		if d.IsLegal() {
			e.LegalBalls++
		}
		if d.IsWicket {
			e.Wickets++
		}
	}

	out := make([]BowlingEntry, 0, len(entries))
	for _, e := range entries {
		e.Overs = OversText(e.LegalBalls)
		e.Economy = Economy(e.RunsConceded, e.LegalBalls)
		out = append(out, *e)
	}
	slices.SortFunc(out, func(a, b BowlingEntry) int {
		if c := cmp.Compare(b.Wickets, a.Wickets); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Economy, b.Economy); c != 0 {
			return c
		}
		return strings.Compare(a.PlayerID, b.PlayerID)
	})
	return truncate(out, limit)
}

func truncate[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}

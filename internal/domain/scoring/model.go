// Package scoring holds the innings aggregator: the pure rules that turn an
// innings' delivery log into its totals.
package scoring

import (
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/delivery"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/innings"
)

// Totals are the derived aggregates of one innings.
type Totals struct {
	Runs       int
	Wickets    int
	LegalBalls int
	Overs      float64
	RunRate    float64
}

// Recompute derives totals from the full delivery list of one innings.
func Recompute(items []delivery.Delivery) Totals {
	var t Totals
	for _, d := range items {
		t.Runs += d.TotalRuns()
		if d.IsWicket {
			t.Wickets++
		}
		if d.IsLegal() {
			t.LegalBalls++
		}
	}
	t.Overs = float64(t.LegalBalls) / delivery.BallsPerOver
	t.RunRate = innings.RunRate(t.Runs, t.Overs)
	return t
}

// Apply copies totals onto the innings.
func (t Totals) Apply(inn *innings.Innings) {
	inn.Runs = t.Runs
	inn.Wickets = t.Wickets
	inn.Overs = t.Overs
	inn.RunRate = t.RunRate
}

// DismissedBatsmen collects every player already out in the innings, from
// wicket deliveries and from the fall-of-wicket list.
func DismissedBatsmen(inn innings.Innings, items []delivery.Delivery) map[string]struct{} {
	out := make(map[string]struct{}, len(inn.FallOfWickets))
	for _, d := range items {
		if d.IsWicket && d.DismissedBatsmanID != "" {
			out[d.DismissedBatsmanID] = struct{}{}
		}
	}
	for _, fow := range inn.FallOfWickets {
		if fow.DismissedBatsmanID != "" {
			out[fow.DismissedBatsmanID] = struct{}{}
		}
	}
	return out
}

// Score appends d to the innings: it stamps the over/ball position, then
// recomputes totals and records the fall of wicket. prior must be the
// innings' existing log in creation order. The inputs are not modified.
func Score(inn innings.Innings, prior []delivery.Delivery, d delivery.Delivery) (delivery.Delivery, innings.Innings) {
	pos := delivery.NextPosition(delivery.CountLegal(prior))
	d.OverNumber = pos.Over
	d.BallInOver = pos.Ball

	log := make([]delivery.Delivery, 0, len(prior)+1)
	log = append(log, prior...)
	log = append(log, d)

	updated := inn.Clone()
	Recompute(log).Apply(&updated)
	if d.IsWicket && d.DismissedBatsmanID != "" {
		updated.RecordFallOfWicket(d.DismissedBatsmanID, d.OverNumber)
	}
	return d, updated
}

// Rebuild recomputes totals and the fall-of-wicket list from scratch. Running
// Score over a log ball by ball yields the same innings.
func Rebuild(inn innings.Innings, items []delivery.Delivery) innings.Innings {
	updated := inn.Clone()
	updated.FallOfWickets = nil
	updated.Runs = 0
	for _, d := range items {
		updated.Runs += d.TotalRuns()
		if d.IsWicket && d.DismissedBatsmanID != "" {
			updated.RecordFallOfWicket(d.DismissedBatsmanID, d.OverNumber)
		}
	}
	Recompute(items).Apply(&updated)
	return updated
}

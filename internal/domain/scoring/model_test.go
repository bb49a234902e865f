package scoring

import (
	"math"
	"reflect"
	"testing"

	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/delivery"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/innings"
)

func ball(batsman string, runs int) delivery.Delivery {
	return delivery.Delivery{BatsmanID: batsman, BowlerID: "bowler", Runs: runs}
}

func TestRecompute(t *testing.T) {
	items := []delivery.Delivery{
		ball("a", 1),
		ball("a", 4),
		{BatsmanID: "a", BowlerID: "bowler", IsWide: true},
		{BatsmanID: "a", BowlerID: "bowler", IsNoBall: true, Runs: 2},
		ball("a", 0),
		ball("b", 6),
		ball("b", 0),
		{BatsmanID: "b", BowlerID: "bowler", IsWicket: true, DismissedBatsmanID: "b"},
	}

	got := Recompute(items)
	if got.Runs != 1+4+1+3+0+6+0+0 {
		t.Fatalf("runs = %d", got.Runs)
	}
	if got.Wickets != 1 {
		t.Fatalf("wickets = %d", got.Wickets)
	}
	if got.LegalBalls != 6 || got.Overs != 1 {
		t.Fatalf("legal=%d overs=%v", got.LegalBalls, got.Overs)
	}
	if got.RunRate != 15 {
		t.Fatalf("run rate = %v", got.RunRate)
	}
}

func TestRecompute_FractionalOvers(t *testing.T) {
	items := make([]delivery.Delivery, 7)
	for i := range items {
		items[i] = ball("a", 1)
	}
	got := Recompute(items)
	if math.Abs(got.Overs-7.0/6.0) > 1e-9 {
		t.Fatalf("overs = %v, want 7/6", got.Overs)
	}
	if got := Recompute(nil); got.RunRate != 0 || got.Overs != 0 {
		t.Fatalf("empty log should have zero rate: %+v", got)
	}
}

func TestScore_NumbersLegalBallsAndSharesSlotForExtras(t *testing.T) {
	inn := innings.Innings{ID: "i1"}
	var log []delivery.Delivery

	seq := []delivery.Delivery{
		ball("a", 0), ball("a", 0), ball("a", 0), ball("a", 0), ball("a", 0),
		{BatsmanID: "a", BowlerID: "bowler", IsWide: true},
		ball("a", 0),
		ball("a", 1),
	}
	want := []delivery.Position{{Over: 1, Ball: 1}, {Over: 1, Ball: 2}, {Over: 1, Ball: 3}, {Over: 1, Ball: 4}, {Over: 1, Ball: 5}, {Over: 1, Ball: 6}, {Over: 1, Ball: 6}, {Over: 2, Ball: 1}}

	for i, d := range seq {
		stamped, updated := Score(inn, log, d)
		got := delivery.Position{Over: stamped.OverNumber, Ball: stamped.BallInOver}
		if got != want[i] {
			t.Fatalf("ball %d at %+v, want %+v", i, got, want[i])
		}
		log = append(log, stamped)
		inn = updated
	}
	if inn.Runs != 2 || inn.Overs != 7.0/6.0 {
		t.Fatalf("unexpected totals: runs=%d overs=%v", inn.Runs, inn.Overs)
	}
}

func TestScore_RecordsFallOfWicket(t *testing.T) {
	inn := innings.Innings{ID: "i1"}
	var log []delivery.Delivery
	seq := []delivery.Delivery{
		ball("a", 4),
		{BatsmanID: "a", BowlerID: "bowler", IsWicket: true, DismissalType: "bowled", DismissedBatsmanID: "a"},
		ball("b", 2),
		{BatsmanID: "b", BowlerID: "bowler", IsWicket: true, DismissalType: "run out"},
		{BatsmanID: "b", BowlerID: "bowler", Runs: 1, IsWicket: true, DismissalType: "run out", DismissedBatsmanID: "c"},
	}
	for _, d := range seq {
		var stamped delivery.Delivery
		stamped, inn = Score(inn, log, d)
		log = append(log, stamped)
	}

	want := []innings.FallOfWicket{
		{WicketNumber: 1, DismissedBatsmanID: "a", ScoreAtDismissal: 4, Over: 1},
		{WicketNumber: 2, DismissedBatsmanID: "c", ScoreAtDismissal: 7, Over: 1},
	}
	if !reflect.DeepEqual(inn.FallOfWickets, want) {
		t.Fatalf("fall of wickets = %+v, want %+v", inn.FallOfWickets, want)
	}
	if inn.Wickets != 3 {
		t.Fatalf("wickets = %d, want 3 (unnamed wicket still counts)", inn.Wickets)
	}

	dismissed := DismissedBatsmen(inn, log)
	for _, id := range []string{"a", "c"} {
		if _, ok := dismissed[id]; !ok {
			t.Fatalf("%s should be dismissed", id)
		}
	}
	if _, ok := dismissed["b"]; ok {
		t.Fatalf("b was never named as dismissed")
	}
}

func TestRebuild_MatchesIncrementalScoring(t *testing.T) {
	inn := innings.Innings{ID: "i1"}
	var log []delivery.Delivery
	for i := 0; i < 20; i++ {
		d := ball("a", i%5)
		switch {
		case i%7 == 3:
			d.IsWide = true
		case i%6 == 5:
			d.IsWicket = true
			d.DismissedBatsmanID = "x" + string(rune('a'+i))
		}
		var stamped delivery.Delivery
		stamped, inn = Score(inn, log, d)
		log = append(log, stamped)
	}

	rebuilt := Rebuild(innings.Innings{ID: "i1"}, log)
	if rebuilt.Runs != inn.Runs || rebuilt.Wickets != inn.Wickets || rebuilt.Overs != inn.Overs || rebuilt.RunRate != inn.RunRate {
		t.Fatalf("rebuilt totals %+v differ from incremental %+v", rebuilt, inn)
	}
	if !reflect.DeepEqual(rebuilt.FallOfWickets, inn.FallOfWickets) {
		t.Fatalf("rebuilt fow %+v differ from incremental %+v", rebuilt.FallOfWickets, inn.FallOfWickets)
	}
}

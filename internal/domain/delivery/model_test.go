package delivery

import "testing"

func TestNextPosition(t *testing.T) {
	for n := 1; n <= 40; n++ {
		got := NextPosition(n - 1)
		want := Position{Over: (n-1)/6 + 1, Ball: (n-1)%6 + 1}
		if got != want {
			t.Fatalf("legal ball %d: got %+v want %+v", n, got, want)
		}
	}
}

func TestExtrasAndLegality(t *testing.T) {
	tests := []struct {
		name      string
		d         Delivery
		wantLegal bool
		wantTotal int
	}{
		{name: "dot", d: Delivery{}, wantLegal: true, wantTotal: 0},
		{name: "boundary", d: Delivery{Runs: 4}, wantLegal: true, wantTotal: 4},
		{name: "wide", d: Delivery{IsWide: true}, wantLegal: false, wantTotal: 1},
		{name: "no ball hit for six", d: Delivery{IsNoBall: true, Runs: 6}, wantLegal: false, wantTotal: 7},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.d.IsLegal() != tc.wantLegal {
				t.Fatalf("IsLegal() = %v", tc.d.IsLegal())
			}
			if tc.d.TotalRuns() != tc.wantTotal {
				t.Fatalf("TotalRuns() = %d, want %d", tc.d.TotalRuns(), tc.wantTotal)
			}
		})
	}
}

func TestValidateRejectsSamePlayer(t *testing.T) {
	d := Delivery{ID: "d1", MatchID: "m1", InningsID: "i1", BatsmanID: "p1", BowlerID: "p1"}
	if err := d.Validate(); err == nil {
		t.Fatalf("expected batsman == bowler to fail")
	}
}

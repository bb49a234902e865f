package delivery

import (
	"errors"
	"time"
)

// BallsPerOver is the number of legal deliveries in an over.
const BallsPerOver = 6

// Delivery is one bowled ball. Deliveries are append-only.
type Delivery struct {
	ID                 string
	MatchID            string
	InningsID          string
	OverNumber         int
	BallInOver         int
	BatsmanID          string
	BowlerID           string
	Runs               int
	IsWide             bool
	IsNoBall           bool
	IsWicket           bool
	DismissalType      string
	DismissedBatsmanID string
	CreatedAt          time.Time
}

func (d Delivery) Validate() error {
	if d.ID == "" || d.MatchID == "" || d.InningsID == "" {
		return errors.New("delivery ids are required")
	}
	if d.BatsmanID == "" || d.BowlerID == "" {
		return errors.New("delivery batsman and bowler are required")
	}
	if d.BatsmanID == d.BowlerID {
		return errors.New("batsman and bowler must be different players")
	}
	if d.Runs < 0 {
		return errors.New("delivery runs must not be negative")
	}
	return nil
}

// IsLegal reports whether the ball counts towards the over.
func (d Delivery) IsLegal() bool {
	return !d.IsWide && !d.IsNoBall
}

// Extras is the one-run penalty for a wide or a no-ball.
func (d Delivery) Extras() int {
	extras := 0
	if d.IsWide {
		extras++
	}
	if d.IsNoBall {
		extras++
	}
	return extras
}

// TotalRuns is what the ball adds to the innings and to the bowler.
func (d Delivery) TotalRuns() int {
	return d.Runs + d.Extras()
}

// Dismisses reports whether the ball records playerID as out.
func (d Delivery) Dismisses(playerID string) bool {
	return d.IsWicket && d.DismissedBatsmanID != "" && d.DismissedBatsmanID == playerID
}

// Position is an over.ball coordinate, both 1-based.
type Position struct {
	Over int
	Ball int
}

// NextPosition returns the coordinate of the ball bowled after legalBalls
// legal deliveries. Wides and no-balls share the coordinate of the next
// legal ball.
func NextPosition(legalBalls int) Position {
	return Position{
		Over: legalBalls/BallsPerOver + 1,
		Ball: legalBalls%BallsPerOver + 1,
	}
}

// CountLegal counts legal deliveries.
func CountLegal(items []Delivery) int {
	n := 0
	for _, d := range items {
		if d.IsLegal() {
			n++
		}
	}
	return n
}

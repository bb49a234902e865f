// Package stats derives scorecards, career figures, leaderboards and
// standings from the delivery log. Nothing here mutates state.
package stats

import (
	"math"
	"strconv"

	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/delivery"
)

// Round2 rounds half away from zero to two decimals.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// StrikeRate is runs per 100 balls.
func StrikeRate(runs, balls int) float64 {
	if balls == 0 {
		return 0
	}
	return Round2(float64(runs) * 100 / float64(balls))
}

// Economy is runs conceded per six legal balls.
func Economy(runsConceded, legalBalls int) float64 {
	if legalBalls == 0 {
		return 0
	}
	return Round2(float64(runsConceded) / (float64(legalBalls) / delivery.BallsPerOver))
}

func Average(runs, dismissals int) float64 {
	if dismissals == 0 {
		return 0
	}
	return Round2(float64(runs) / float64(dismissals))
}

func Percentage(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return Round2(float64(part) * 100 / float64(whole))
}

// OversText renders legal balls in over.ball notation, e.g. 14 -> "2.2".
func OversText(legalBalls int) string {
	return strconv.Itoa(legalBalls/delivery.BallsPerOver) + "." + strconv.Itoa(legalBalls%delivery.BallsPerOver)
}

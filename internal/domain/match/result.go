package match

import (
	"fmt"
	"strings"
)

type Resolution string

const (
	ResolutionAuto     Resolution = "AUTO"
	ResolutionManual   Resolution = "MANUAL"
	ResolutionForceTie Resolution = "FORCE_TIE"
)

// ParseResolution defaults an empty value to AUTO.
func ParseResolution(v string) (Resolution, bool) {
	r := Resolution(strings.ToUpper(strings.TrimSpace(v)))
	switch r {
	case "":
		return ResolutionAuto, true
	case ResolutionAuto, ResolutionManual, ResolutionForceTie:
		return r, true
	default:
		return "", false
	}
}

const (
	superOverSuffix    = " (Super Over)"
	superOverTieSuffix = " (Super Over tied)"
	tiedSummary        = "Match tied"
	allOutWickets      = 10
)

// InningsScore is the slice of an innings needed to decide a result.
type InningsScore struct {
	BattingTeamID string
	Runs          int
	Wickets       int
	IsSuperOver   bool
}

// Outcome is a decided result. Tied outcomes from Compare carry no winner and
// are not final until a caller resolves them.
type Outcome struct {
	WinnerID string
	Summary  string
	Tied     bool
}

// Compare applies the automatic rule to the last two innings. teamName turns
// a team id into display text.
func Compare(first, second InningsScore, teamName func(string) string) Outcome {
	suffix := ""
	if first.IsSuperOver || second.IsSuperOver {
		suffix = superOverSuffix
	}

	switch {
	case first.Runs > second.Runs:
		return Outcome{
			WinnerID: first.BattingTeamID,
			Summary:  fmt.Sprintf("%s won by %d runs%s", teamName(first.BattingTeamID), first.Runs-second.Runs, suffix),
		}
	case second.Runs > first.Runs:
		return Outcome{
			WinnerID: second.BattingTeamID,
			Summary:  fmt.Sprintf("%s won by %d wickets%s", teamName(second.BattingTeamID), max(1, allOutWickets-second.Wickets), suffix),
		}
	default:
		return Outcome{Summary: tiedSummary, Tied: true}
	}
}

// Manual awards the match to winnerID.
func Manual(winnerID string, superOver bool, teamName func(string) string) Outcome {
	summary := teamName(winnerID) + " won"
	if superOver {
		summary += superOverSuffix
	}
	return Outcome{WinnerID: winnerID, Summary: summary}
}

// ForceTie finalizes a tie without a winner.
func ForceTie(superOver bool) Outcome {
	summary := tiedSummary
	if superOver {
		summary += superOverTieSuffix
	}
	return Outcome{Summary: summary, Tied: true}
}

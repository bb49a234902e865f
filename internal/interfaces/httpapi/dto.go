package httpapi

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/delivery"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/innings"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/match"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/matchevent"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/player"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/series"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/stats"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/team"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/usecase"
)

type matchDTO struct {
	ID                 string    `json:"id"`
	SeriesID           string    `json:"series,omitempty"`
	TeamAID            string    `json:"teamA"`
	TeamBID            string    `json:"teamB"`
	MatchType          string    `json:"matchType,omitempty"`
	Venue              string    `json:"venue,omitempty"`
	StartDateTime      time.Time `json:"startDateTime"`
	Status             string    `json:"status"`
	TossWinnerID       string    `json:"tossWinner,omitempty"`
	TossDecision       string    `json:"tossDecision,omitempty"`
	MaxOvers           int       `json:"maxOvers,omitempty"`
	CurrentInningsID   string    `json:"currentInnings,omitempty"`
	TargetInningsCount int       `json:"targetInningsCount"`
	WinnerID           string    `json:"winner,omitempty"`
	ResultSummary      string    `json:"resultSummary,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

type fallOfWicketDTO struct {
	WicketNumber       int    `json:"wicketNumber"`
	DismissedBatsmanID string `json:"dismissedBatsman"`
	ScoreAtDismissal   int    `json:"scoreAtDismissal"`
	Over               int    `json:"over"`
}

type inningsDTO struct {
	ID            string            `json:"id"`
	MatchID       string            `json:"match"`
	BattingTeamID string            `json:"battingTeam"`
	BowlingTeamID string            `json:"bowlingTeam"`
	Runs          int               `json:"runs"`
	Wickets       int               `json:"wickets"`
	Overs         float64           `json:"overs"`
	OversText     string            `json:"oversText"`
	RunRate       float64           `json:"runRate"`
	FallOfWickets []fallOfWicketDTO `json:"fallOfWickets"`
	StrikerID     string            `json:"currentStriker,omitempty"`
	NonStrikerID  string            `json:"currentNonStriker,omitempty"`
	BowlerID      string            `json:"currentBowler,omitempty"`
	IsCompleted   bool              `json:"isCompleted"`
	IsSuperOver   bool              `json:"isSuperOver"`
	ManualTotals  bool              `json:"manualTotals,omitempty"`
}

type deliveryDTO struct {
	ID                 string    `json:"id"`
	MatchID            string    `json:"match"`
	InningsID          string    `json:"innings"`
	OverNumber         int       `json:"overNumber"`
	BallInOver         int       `json:"ballInOver"`
	BatsmanID          string    `json:"batsman"`
	BowlerID           string    `json:"bowler"`
	Runs               int       `json:"runs"`
	IsWide             bool      `json:"isWide"`
	IsNoBall           bool      `json:"isNoBall"`
	IsWicket           bool      `json:"isWicket"`
	DismissalType      string    `json:"dismissalType,omitempty"`
	DismissedBatsmanID string    `json:"dismissedBatsman,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
}

type recordBallDTO struct {
	Ball    deliveryDTO `json:"ball"`
	Innings inningsDTO  `json:"innings"`
}

type battingLineDTO struct {
	PlayerID      string  `json:"player"`
	Runs          int     `json:"runs"`
	Balls         int     `json:"balls"`
	Fours         int     `json:"fours"`
	Sixes         int     `json:"sixes"`
	IsOut         bool    `json:"isOut"`
	DismissalType string  `json:"dismissalType,omitempty"`
	StrikeRate    float64 `json:"strikeRate"`
}

type bowlingLineDTO struct {
	PlayerID     string  `json:"player"`
	Overs        string  `json:"overs"`
	LegalBalls   int     `json:"balls"`
	RunsConceded int     `json:"runs"`
	Wickets      int     `json:"wickets"`
	Economy      float64 `json:"economy"`
}

type ballSummaryDTO struct {
	DeliveryID    string `json:"id"`
	BallInOver    int    `json:"ballInOver"`
	BatsmanID     string `json:"batsman"`
	Runs          int    `json:"runs"`
	IsWide        bool   `json:"isWide"`
	IsNoBall      bool   `json:"isNoBall"`
	IsWicket      bool   `json:"isWicket"`
	DismissalType string `json:"dismissalType,omitempty"`
}

type overSummaryDTO struct {
	OverNumber int              `json:"overNumber"`
	BowlerID   string           `json:"bowler"`
	Runs       int              `json:"runs"`
	Wickets    int              `json:"wickets"`
	Balls      []ballSummaryDTO `json:"balls"`
}

type scorecardDTO struct {
	InningsID string           `json:"innings"`
	Batting   []battingLineDTO `json:"batting"`
	Bowling   []bowlingLineDTO `json:"bowling"`
	Overs     []overSummaryDTO `json:"overs"`
}

type matchDetailDTO struct {
	Match      matchDTO       `json:"match"`
	Innings    []inningsDTO   `json:"innings"`
	Scorecards []scorecardDTO `json:"scorecards"`
}

type completeMatchDTO struct {
	Status          string    `json:"status,omitempty"`
	ResultSummary   string    `json:"resultSummary,omitempty"`
	WinnerID        string    `json:"winner,omitempty"`
	NeedsResolution bool      `json:"needsResolution,omitempty"`
	Message         string    `json:"message,omitempty"`
	IsSuperOver     bool      `json:"isSuperOver"`
	Match           *matchDTO `json:"match,omitempty"`
}

type skipInningsDTO struct {
	Match       matchDTO    `json:"match"`
	Skipped     inningsDTO  `json:"skippedInnings"`
	NextInnings *inningsDTO `json:"nextInnings,omitempty"`
}

type teamDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	ShortCode string    `json:"shortCode"`
	LogoURL   string    `json:"logoUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type teamSummaryDTO struct {
	TotalMatches int     `json:"totalMatches"`
	Completed    int     `json:"completedMatches"`
	Wins         int     `json:"wins"`
	Losses       int     `json:"losses"`
	WinPct       float64 `json:"winPct"`
	TotalRuns    int     `json:"totalRuns"`
	HighestTotal int     `json:"highestTotal"`
	AverageScore float64 `json:"averageScore"`
}

type teamDetailDTO struct {
	Team       teamDTO           `json:"team"`
	Stats      teamSummaryDTO    `json:"stats"`
	Players    []playerDTO       `json:"players"`
	TopBatsmen []battingEntryDTO `json:"topBatsmen"`
	TopBowlers []bowlingEntryDTO `json:"topBowlers"`
}

type playerDTO struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	TeamID       string    `json:"team"`
	Role         string    `json:"role"`
	BattingStyle string    `json:"battingStyle,omitempty"`
	BowlingStyle string    `json:"bowlingStyle,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type overBattingDTO struct {
	InningsID  string `json:"inningsId"`
	OverNumber int    `json:"overNumber"`
	Runs       int    `json:"runs"`
	Balls      int    `json:"balls"`
	Boundaries int    `json:"boundaries"`
}

type careerDTO struct {
	MatchesPlayed  int              `json:"matchesPlayed"`
	BattingInnings int              `json:"battingInnings"`
	TotalRuns      int              `json:"totalRuns"`
	BallsFaced     int              `json:"ballsFaced"`
	Fours          int              `json:"fours"`
	Sixes          int              `json:"sixes"`
	Dismissals     int              `json:"dismissals"`
	HighestScore   int              `json:"highestScore"`
	Fifties        int              `json:"fifties"`
	Hundreds       int              `json:"hundreds"`
	Ducks          int              `json:"ducks"`
	BattingAverage float64          `json:"battingAverage"`
	StrikeRate     float64          `json:"strikeRate"`
	BowlingInnings int              `json:"bowlingInnings"`
	Wickets        int              `json:"totalWickets"`
	RunsConceded   int              `json:"runsConceded"`
	BallsBowled    int              `json:"ballsBowled"`
	Overs          string           `json:"overs"`
	Economy        float64          `json:"economy"`
	BestBowling    string           `json:"bestBowling"`
	OverWise       []overBattingDTO `json:"overWise"`
}

type playerDetailDTO struct {
	Player playerDTO `json:"player"`
	Stats  careerDTO `json:"stats"`
}

type seriesDTO struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	Description string     `json:"description,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

type battingEntryDTO struct {
	PlayerID     string  `json:"player"`
	PlayerName   string  `json:"name,omitempty"`
	TeamID       string  `json:"team,omitempty"`
	Innings      int     `json:"innings"`
	Runs         int     `json:"runs"`
	Balls        int     `json:"balls"`
	Fours        int     `json:"fours"`
	Sixes        int     `json:"sixes"`
	Dismissals   int     `json:"dismissals"`
	HighestScore int     `json:"highestScore"`
	Average      float64 `json:"average"`
	StrikeRate   float64 `json:"strikeRate"`
}

type bowlingEntryDTO struct {
	PlayerID     string  `json:"player"`
	PlayerName   string  `json:"name,omitempty"`
	TeamID       string  `json:"team,omitempty"`
	Innings      int     `json:"innings"`
	Wickets      int     `json:"wickets"`
	RunsConceded int     `json:"runsConceded"`
	LegalBalls   int     `json:"balls"`
	Overs        string  `json:"overs"`
	Economy      float64 `json:"economy"`
}

type standingDTO struct {
	TeamID    string  `json:"team"`
	TeamName  string  `json:"name"`
	ShortCode string  `json:"shortCode"`
	Played    int     `json:"played"`
	Wins      int     `json:"wins"`
	Losses    int     `json:"losses"`
	NoResult  int     `json:"noResult"`
	WinPct    float64 `json:"winPct"`
	Points    int     `json:"points"`
}

type loginDTO struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	Email     string    `json:"email"`
}

type seedAdminDTO struct {
	Message string `json:"message"`
	Email   string `json:"email"`
}

func matchToDTO(v match.Match) matchDTO {
	return matchDTO{
		ID:                 v.ID,
		SeriesID:           v.SeriesID,
		TeamAID:            v.TeamAID,
		TeamBID:            v.TeamBID,
		MatchType:          v.MatchType,
		Venue:              v.Venue,
		StartDateTime:      v.StartAt,
		Status:             string(v.Status),
		TossWinnerID:       v.TossWinnerID,
		TossDecision:       string(v.TossDecision),
		MaxOvers:           v.MaxOvers,
		CurrentInningsID:   v.CurrentInningsID,
		TargetInningsCount: v.TargetInningsCount,
		WinnerID:           v.WinnerID,
		ResultSummary:      v.ResultSummary,
		CreatedAt:          v.CreatedAt,
		UpdatedAt:          v.UpdatedAt,
	}
}

func inningsToDTO(v innings.Innings) inningsDTO {
	fow := make([]fallOfWicketDTO, 0, len(v.FallOfWickets))
	for _, item := range v.FallOfWickets {
		fow = append(fow, fallOfWicketDTO{
			WicketNumber:       item.WicketNumber,
			DismissedBatsmanID: item.DismissedBatsmanID,
			ScoreAtDismissal:   item.ScoreAtDismissal,
			Over:               item.Over,
		})
	}
	return inningsDTO{
		ID:            v.ID,
		MatchID:       v.MatchID,
		BattingTeamID: v.BattingTeamID,
		BowlingTeamID: v.BowlingTeamID,
		Runs:          v.Runs,
		Wickets:       v.Wickets,
		Overs:         stats.Round2(v.Overs),
		OversText:     stats.OversText(int(math.Round(v.Overs * delivery.BallsPerOver))),
		RunRate:       stats.Round2(v.RunRate),
		FallOfWickets: fow,
		StrikerID:     v.StrikerID,
		NonStrikerID:  v.NonStrikerID,
		BowlerID:      v.BowlerID,
		IsCompleted:   v.IsCompleted,
		IsSuperOver:   v.IsSuperOver,
		ManualTotals:  v.ManualTotals,
	}
}

func inningsListToDTO(items []innings.Innings) []inningsDTO {
	out := make([]inningsDTO, 0, len(items))
	for _, item := range items {
		out = append(out, inningsToDTO(item))
	}
	return out
}

func deliveryToDTO(v delivery.Delivery) deliveryDTO {
	return deliveryDTO{
		ID:                 v.ID,
		MatchID:            v.MatchID,
		InningsID:          v.InningsID,
		OverNumber:         v.OverNumber,
		BallInOver:         v.BallInOver,
		BatsmanID:          v.BatsmanID,
		BowlerID:           v.BowlerID,
		Runs:               v.Runs,
		IsWide:             v.IsWide,
		IsNoBall:           v.IsNoBall,
		IsWicket:           v.IsWicket,
		DismissalType:      v.DismissalType,
		DismissedBatsmanID: v.DismissedBatsmanID,
		CreatedAt:          v.CreatedAt,
	}
}

func scorecardToDTO(v stats.Scorecard) scorecardDTO {
	batting := make([]battingLineDTO, 0, len(v.Batting))
	for _, line := range v.Batting {
		batting = append(batting, battingLineDTO{
			PlayerID:      line.PlayerID,
			Runs:          line.Runs,
			Balls:         line.Balls,
			Fours:         line.Fours,
			Sixes:         line.Sixes,
			IsOut:         line.IsOut,
			DismissalType: line.DismissalType,
			StrikeRate:    line.StrikeRate,
		})
	}
	bowling := make([]bowlingLineDTO, 0, len(v.Bowling))
	for _, line := range v.Bowling {
		bowling = append(bowling, bowlingLineDTO{
			PlayerID:     line.PlayerID,
			Overs:        line.Overs,
			LegalBalls:   line.LegalBalls,
			RunsConceded: line.RunsConceded,
			Wickets:      line.Wickets,
			Economy:      line.Economy,
		})
	}
	overs := make([]overSummaryDTO, 0, len(v.Overs))
	for _, over := range v.Overs {
		balls := make([]ballSummaryDTO, 0, len(over.Balls))
		for _, ball := range over.Balls {
			balls = append(balls, ballSummaryDTO{
				DeliveryID:    ball.DeliveryID,
				BallInOver:    ball.BallInOver,
				BatsmanID:     ball.BatsmanID,
				Runs:          ball.Runs,
				IsWide:        ball.IsWide,
				IsNoBall:      ball.IsNoBall,
				IsWicket:      ball.IsWicket,
				DismissalType: ball.DismissalType,
			})
		}
		overs = append(overs, overSummaryDTO{
			OverNumber: over.OverNumber,
			BowlerID:   over.BowlerID,
			Runs:       over.Runs,
			Wickets:    over.Wickets,
			Balls:      balls,
		})
	}
	return scorecardDTO{
		InningsID: v.InningsID,
		Batting:   batting,
		Bowling:   bowling,
		Overs:     overs,
	}
}

func matchDetailToDTO(ctx context.Context, v usecase.MatchDetail) matchDetailDTO {
	_, span := startSpan(ctx, "httpapi.matchDetailToDTO")
	defer span.End()

	cards := make([]scorecardDTO, 0, len(v.Scorecards))
	for _, card := range v.Scorecards {
		cards = append(cards, scorecardToDTO(card))
	}
	return matchDetailDTO{
		Match:      matchToDTO(v.Match),
		Innings:    inningsListToDTO(v.Innings),
		Scorecards: cards,
	}
}

func completeMatchToDTO(v usecase.CompleteMatchResult) completeMatchDTO {
	if v.NeedsResolution {
		return completeMatchDTO{
			NeedsResolution: true,
			Message:         v.Message,
			IsSuperOver:     v.IsSuperOver,
		}
	}
	m := matchToDTO(v.Match)
	return completeMatchDTO{
		Status:        string(v.Match.Status),
		ResultSummary: v.Match.ResultSummary,
		WinnerID:      v.Match.WinnerID,
		Message:       v.Message,
		IsSuperOver:   v.IsSuperOver,
		Match:         &m,
	}
}

func skipInningsToDTO(v usecase.SkipInningsResult) skipInningsDTO {
	out := skipInningsDTO{
		Match:   matchToDTO(v.Match),
		Skipped: inningsToDTO(v.Skipped),
	}
	if v.NextInnings != nil {
		next := inningsToDTO(*v.NextInnings)
		out.NextInnings = &next
	}
	return out
}

func teamToDTO(v team.Team) teamDTO {
	return teamDTO{
		ID:        v.ID,
		Name:      v.Name,
		ShortCode: v.ShortCode,
		LogoURL:   v.LogoURL,
		CreatedAt: v.CreatedAt,
	}
}

func teamDetailToDTO(ctx context.Context, v usecase.TeamDetail, names map[string]player.Player) teamDetailDTO {
	_, span := startSpan(ctx, "httpapi.teamDetailToDTO")
	defer span.End()

	players := make([]playerDTO, 0, len(v.Players))
	for _, p := range v.Players {
		players = append(players, playerToDTO(p))
	}
	return teamDetailDTO{
		Team: teamToDTO(v.Team),
		Stats: teamSummaryDTO{
			TotalMatches: v.Summary.TotalMatches,
			Completed:    v.Summary.Completed,
			Wins:         v.Summary.Wins,
			Losses:       v.Summary.Losses,
			WinPct:       v.Summary.WinPct,
			TotalRuns:    v.Summary.TotalRuns,
			HighestTotal: v.Summary.HighestTotal,
			AverageScore: v.Summary.AverageScore,
		},
		Players:    players,
		TopBatsmen: battingEntriesToDTO(v.TopBatsmen, names),
		TopBowlers: bowlingEntriesToDTO(v.TopBowlers, names),
	}
}

func playerToDTO(v player.Player) playerDTO {
	return playerDTO{
		ID:           v.ID,
		Name:         v.Name,
		TeamID:       v.TeamID,
		Role:         string(v.Role),
		BattingStyle: v.BattingStyle,
		BowlingStyle: v.BowlingStyle,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

func playerDetailToDTO(v usecase.PlayerDetail) playerDetailDTO {
	c := v.Career
	overWise := make([]overBattingDTO, 0, len(c.OverWise))
	for _, o := range c.OverWise {
		overWise = append(overWise, overBattingDTO{
			InningsID:  o.InningsID,
			OverNumber: o.OverNumber,
			Runs:       o.Runs,
			Balls:      o.Balls,
			Boundaries: o.Boundaries,
		})
	}
	return playerDetailDTO{
		Player: playerToDTO(v.Player),
		Stats: careerDTO{
			MatchesPlayed:  c.MatchesPlayed,
			BattingInnings: c.BattingInnings,
			TotalRuns:      c.TotalRuns,
			BallsFaced:     c.BallsFaced,
			Fours:          c.Fours,
			Sixes:          c.Sixes,
			Dismissals:     c.Dismissals,
			HighestScore:   c.HighestScore,
			Fifties:        c.Fifties,
			Hundreds:       c.Hundreds,
			Ducks:          c.Ducks,
			BattingAverage: c.BattingAverage,
			StrikeRate:     c.StrikeRate,
			BowlingInnings: c.BowlingInnings,
			Wickets:        c.Wickets,
			RunsConceded:   c.RunsConceded,
			BallsBowled:    c.BallsBowled,
			Overs:          c.Overs,
			Economy:        c.Economy,
			BestBowling:    c.BestBowling.String(),
			OverWise:       overWise,
		},
	}
}

func seriesToDTO(v series.Series) seriesDTO {
	return seriesDTO{
		ID:          v.ID,
		Name:        v.Name,
		StartDate:   v.StartDate,
		EndDate:     v.EndDate,
		Description: v.Description,
		CreatedAt:   v.CreatedAt,
	}
}

func battingEntriesToDTO(items []stats.BattingEntry, names map[string]player.Player) []battingEntryDTO {
	out := make([]battingEntryDTO, 0, len(items))
	for _, e := range items {
		p := names[e.PlayerID]
		out = append(out, battingEntryDTO{
			PlayerID:     e.PlayerID,
			PlayerName:   p.Name,
			TeamID:       p.TeamID,
			Innings:      e.Innings,
			Runs:         e.Runs,
			Balls:        e.Balls,
			Fours:        e.Fours,
			Sixes:        e.Sixes,
			Dismissals:   e.Dismissals,
			HighestScore: e.HighestScore,
			Average:      e.Average,
			StrikeRate:   e.StrikeRate,
		})
	}
	return out
}

func bowlingEntriesToDTO(items []stats.BowlingEntry, names map[string]player.Player) []bowlingEntryDTO {
	out := make([]bowlingEntryDTO, 0, len(items))
	for _, e := range items {
		p := names[e.PlayerID]
		out = append(out, bowlingEntryDTO{
			PlayerID:     e.PlayerID,
			PlayerName:   p.Name,
			TeamID:       p.TeamID,
			Innings:      e.Innings,
			Wickets:      e.Wickets,
			RunsConceded: e.RunsConceded,
			LegalBalls:   e.LegalBalls,
			Overs:        e.Overs,
			Economy:      e.Economy,
		})
	}
	return out
}

func standingsToDTO(items []stats.Standing) []standingDTO {
	out := make([]standingDTO, 0, len(items))
	for _, s := range items {
		out = append(out, standingDTO{
			TeamID:    s.TeamID,
			TeamName:  s.TeamName,
			ShortCode: s.ShortCode,
			Played:    s.Played,
			Wins:      s.Wins,
			Losses:    s.Losses,
			NoResult:  s.NoResult,
			WinPct:    s.WinPct,
			Points:    s.Points,
		})
	}
	return out
}

// EncodeMatchEvent renders event payloads with the same DTOs the HTTP API
// returns, so websocket and broker consumers see one shape.
func EncodeMatchEvent(event matchevent.Event) (any, error) {
	switch payload := event.Payload.(type) {
	case nil:
		return nil, nil
	case innings.Innings:
		return inningsToDTO(payload), nil
	case match.Match:
		return matchToDTO(payload), nil
	case delivery.Delivery:
		return deliveryToDTO(payload), nil
	default:
		return nil, fmt.Errorf("unsupported %s payload %T", event.Type, event.Payload)
	}
}

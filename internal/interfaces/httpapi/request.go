package httpapi

import "time"

type createMatchRequest struct {
	Series        string     `json:"series" validate:"omitempty,max=64"`
	TeamA         string     `json:"teamA" validate:"required,max=64"`
	TeamB         string     `json:"teamB" validate:"required,max=64,nefield=TeamA"`
	MatchType     string     `json:"matchType" validate:"omitempty,max=50"`
	Venue         string     `json:"venue" validate:"omitempty,max=200"`
	StartDateTime *time.Time `json:"startDateTime" validate:"required"`
}

type updateMatchRequest struct {
	Series        *string    `json:"series" validate:"omitempty,max=64"`
	TeamA         *string    `json:"teamA" validate:"omitempty,min=1,max=64"`
	TeamB         *string    `json:"teamB" validate:"omitempty,min=1,max=64"`
	MatchType     *string    `json:"matchType" validate:"omitempty,max=50"`
	Venue         *string    `json:"venue" validate:"omitempty,max=200"`
	StartDateTime *time.Time `json:"startDateTime"`
}

type tossRequest struct {
	TossWinner   string `json:"tossWinner" validate:"required"`
	TossDecision string `json:"tossDecision" validate:"required"`
	MaxOvers     *int   `json:"maxOvers" validate:"omitempty,gt=0,lte=50"`
}

type startInningsRequest struct {
	BattingTeam string `json:"battingTeam" validate:"required"`
	BowlingTeam string `json:"bowlingTeam" validate:"required"`
	IsSuperOver bool   `json:"isSuperOver"`
}

type recordBallRequest struct {
	InningsID        string `json:"inningsId" validate:"required"`
	Batsman          string `json:"batsman" validate:"required"`
	Bowler           string `json:"bowler" validate:"required"`
	Runs             int    `json:"runs" validate:"gte=0"`
	IsWide           bool   `json:"isWide"`
	IsNoBall         bool   `json:"isNoBall"`
	IsWicket         bool   `json:"isWicket"`
	DismissalType    string `json:"dismissalType" validate:"omitempty,max=50"`
	DismissedBatsman string `json:"dismissedBatsman"`
}

type updatePairRequest struct {
	InningsID  string `json:"inningsId" validate:"required"`
	Striker    string `json:"striker"`
	NonStriker string `json:"nonStriker"`
	Bowler     string `json:"bowler"`
}

type completeMatchRequest struct {
	Resolution     string `json:"resolution" validate:"omitempty,oneof=AUTO MANUAL FORCE_TIE"`
	ManualWinnerID string `json:"manualWinnerId" validate:"required_if=Resolution MANUAL"`
}

type superOverRequest struct {
	BattingTeam string `json:"battingTeam" validate:"required"`
}

// Totals are pointers so an omitted field fails validation instead of
// decoding as zero.
type skipInningsRequest struct {
	InningsID    string `json:"inningsId" validate:"required"`
	TotalRuns    *int   `json:"totalRuns" validate:"required,gte=0"`
	TotalWickets *int   `json:"totalWickets" validate:"required,gte=0,lte=10"`
}

type createTeamRequest struct {
	Name      string `json:"name" validate:"required,max=100"`
	ShortCode string `json:"shortCode" validate:"required,max=10"`
	LogoURL   string `json:"logoUrl" validate:"omitempty,url"`
}

type createPlayerRequest struct {
	Name         string `json:"name" validate:"required,max=100"`
	Team         string `json:"team" validate:"required"`
	Role         string `json:"role" validate:"required"`
	BattingStyle string `json:"battingStyle" validate:"omitempty,max=50"`
	BowlingStyle string `json:"bowlingStyle" validate:"omitempty,max=50"`
}

type updatePlayerRequest struct {
	Name         *string `json:"name" validate:"omitempty,min=1,max=100"`
	Team         *string `json:"team" validate:"omitempty,min=1"`
	Role         *string `json:"role" validate:"omitempty,min=1"`
	BattingStyle *string `json:"battingStyle" validate:"omitempty,max=50"`
	BowlingStyle *string `json:"bowlingStyle" validate:"omitempty,max=50"`
}

type createSeriesRequest struct {
	Name        string     `json:"name" validate:"required,max=150"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	Description string     `json:"description" validate:"omitempty,max=1000"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type seedAdminRequest struct {
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"omitempty,min=6"`
}

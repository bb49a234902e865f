package matchevent

import "time"

type Type string

const (
	TypeScoreUpdated Type = "scoreUpdated"
	TypeMatchUpdated Type = "matchUpdated"
	TypeOverUpdated  Type = "overUpdated"
)

// Event is a notification scoped to one match. Payload is the snapshot the
// listeners render, usually an innings or match DTO.
type Event struct {
	Type       Type      `json:"type"`
	MatchID    string    `json:"matchId"`
	Payload    any       `json:"payload"`
	OccurredAt time.Time `json:"occurredAt"`
}

// Topic is the room name listeners subscribe to for a match.
func Topic(matchID string) string {
	return "match:" + matchID
}

// Encoder maps an event to the value written on the wire. Transports call it
// so payloads are rendered the same way the HTTP API renders them.
type Encoder func(Event) (any, error)

package realtime

import (
	"time"

	"github.com/bytedance/sonic"
	"github.com/valyala/bytebufferpool"

	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/matchevent"
)

// Frame is the JSON text message pushed to listeners.
type Frame struct {
	Type       matchevent.Type `json:"type"`
	MatchID    string          `json:"matchId"`
	Payload    any             `json:"payload,omitempty"`
	OccurredAt time.Time       `json:"occurredAt"`
}

// encodeFrame renders an event into a fresh byte slice that can be shared by
// every client send queue.
func encodeFrame(event matchevent.Event, encode matchevent.Encoder) ([]byte, error) {
	payload := event.Payload
	if encode != nil {
		var err error
		if payload, err = encode(event); err != nil {
			return nil, err
		}
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(Frame{
		Type:       event.Type,
		MatchID:    event.MatchID,
		Payload:    payload,
		OccurredAt: event.OccurredAt,
	}); err != nil {
		return nil, err
	}

	out := make([]byte, buf.Len())
	copy(out, buf.B)
	return out, nil
}

package realtime

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gorilla/websocket"

	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/matchevent"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/platform/logging"
)

func newTestHub(t *testing.T, encode matchevent.Encoder) (*Hub, *httptest.Server) {
	t.Helper()
	hub, err := NewHub(Config{Workers: 2}, encode, logging.NewNop())
	if err != nil {
		t.Fatalf("new hub: %v", err)
	}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /matches/{id}/live", func(w http.ResponseWriter, r *http.Request) {
		if err := hub.ServeMatch(w, r, r.PathValue("id")); err != nil {
			t.Logf("serve match: %v", err)
		}
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(func() {
		hub.Close()
		srv.Close()
	})
	return hub, srv
}

func dial(t *testing.T, srv *httptest.Server, hub *Hub, matchID string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/matches/" + matchID + "/live"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial %s: %v", url, err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	deadline := time.Now().Add(2 * time.Second)
	for hub.Listeners(matchID) == 0 {
		if time.Now().After(deadline) {
			t.Fatalf("listener for %s never registered", matchID)
		}
		time.Sleep(5 * time.Millisecond)
	}
	return conn
}

func TestHub_PushesEventsToMatchRoom(t *testing.T) {
	encode := func(e matchevent.Event) (any, error) {
		return map[string]any{"runs": e.Payload}, nil
	}
	hub, srv := newTestHub(t, encode)
	conn := dial(t, srv, hub, "m1")

	err := hub.Publish(context.Background(), matchevent.Event{
		Type:       matchevent.TypeScoreUpdated,
		MatchID:    "m1",
		Payload:    42,
		OccurredAt: time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("publish: %v", err)
	}

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, raw, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read frame: %v", err)
	}

	var frame struct {
		Type    string         `json:"type"`
		MatchID string         `json:"matchId"`
		Payload map[string]int `json:"payload"`
	}
	if err := sonic.Unmarshal(raw, &frame); err != nil {
		t.Fatalf("decode frame %s: %v", raw, err)
	}
	if frame.Type != "scoreUpdated" || frame.MatchID != "m1" || frame.Payload["runs"] != 42 {
		t.Fatalf("unexpected frame: %s", raw)
	}
}

func TestHub_DoesNotLeakAcrossRooms(t *testing.T) {
	hub, srv := newTestHub(t, nil)
	other := dial(t, srv, hub, "m2")

	if err := hub.Publish(context.Background(), matchevent.Event{Type: matchevent.TypeMatchUpdated, MatchID: "m1"}); err != nil {
		t.Fatalf("publish: %v", err)
	}

	_ = other.SetReadDeadline(time.Now().Add(150 * time.Millisecond))
	if _, raw, err := other.ReadMessage(); err == nil {
		t.Fatalf("listener of m2 received an m1 frame: %s", raw)
	}
}

func TestHub_PublishWithoutListenersIsNoop(t *testing.T) {
	hub, _ := newTestHub(t, nil)
	if err := hub.Publish(context.Background(), matchevent.Event{Type: matchevent.TypeScoreUpdated, MatchID: "nobody"}); err != nil {
		t.Fatalf("publish: %v", err)
	}
}

func TestHub_EncoderErrorIsReturned(t *testing.T) {
	boom := errors.New("boom")
	hub, _ := newTestHub(t, func(matchevent.Event) (any, error) { return nil, boom })

	err := hub.Publish(context.Background(), matchevent.Event{Type: matchevent.TypeScoreUpdated, MatchID: "m1"})
	if !errors.Is(err, boom) {
		t.Fatalf("expected encoder error, got %v", err)
	}
}

func TestHub_ClosedHubRejectsPublish(t *testing.T) {
	hub, srv := newTestHub(t, nil)
	conn := dial(t, srv, hub, "m1")

	hub.Close()

	if err := hub.Publish(context.Background(), matchevent.Event{MatchID: "m1"}); !errors.Is(err, ErrHubClosed) {
		t.Fatalf("expected ErrHubClosed, got %v", err)
	}
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if _, _, err := conn.ReadMessage(); err == nil {
		t.Fatalf("expected the connection to be closed")
	}
}

func TestOriginChecker(t *testing.T) {
	check := originChecker([]string{"https://criclive.example"})

	allowed := httptest.NewRequest(http.MethodGet, "/", nil)
	allowed.Header.Set("Origin", "https://criclive.example")
	denied := httptest.NewRequest(http.MethodGet, "/", nil)
	denied.Header.Set("Origin", "https://evil.example")

	if !check(allowed) || check(denied) {
		t.Fatalf("origin checker does not honour the allow list")
	}
	if !originChecker(nil)(denied) {
		t.Fatalf("empty allow list should accept every origin")
	}
}

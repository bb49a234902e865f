package realtime

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gorilla/websocket"
	"github.com/panjf2000/ants/v2"

	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/matchevent"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/platform/logging"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = pongWait * 9 / 10
	maxMessageSize = 512
	sendBuffer     = 32
)

var ErrHubClosed = errors.New("realtime hub is closed")

type Config struct {
	// Workers bounds the goroutines fanning events out to rooms.
	Workers        int
	AllowedOrigins []string
}

// Hub keeps one room of websocket listeners per match and implements
// matchevent.Publisher by pushing each event to the room of its match.
type Hub struct {
	mu     sync.RWMutex
	rooms  map[string]map[*client]struct{}
	closed bool

	pool     *ants.Pool
	encode   matchevent.Encoder
	upgrader websocket.Upgrader
	logger   *logging.Logger
}

type client struct {
	hub  *Hub
	room string
	conn *websocket.Conn
	send chan []byte

	mu   sync.Mutex
	done bool
}

func NewHub(cfg Config, encode matchevent.Encoder, logger *logging.Logger) (*Hub, error) {
	if logger == nil {
		logger = logging.Default()
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = 16
	}
	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, errors.Wrap(err, "create realtime worker pool")
	}

	return &Hub{
		rooms:  make(map[string]map[*client]struct{}),
		pool:   pool,
		encode: encode,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(cfg.AllowedOrigins),
		},
		logger: logger.Named("realtime"),
	}, nil
}

func originChecker(allowed []string) func(*http.Request) bool {
	if len(allowed) == 0 {
		return func(*http.Request) bool { return true }
	}
	set := make(map[string]struct{}, len(allowed))
	for _, origin := range allowed {
		if origin == "*" {
			return func(*http.Request) bool { return true }
		}
		set[origin] = struct{}{}
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		_, ok := set[origin]
		return ok
	}
}

// Publish queues the event for every listener of its match. Slow listeners
// whose send queue is full are disconnected.
func (h *Hub) Publish(ctx context.Context, event matchevent.Event) error {
	frame, err := encodeFrame(event, h.encode)
	if err != nil {
		return errors.Wrapf(err, "encode %s frame", event.Type)
	}

	room := matchevent.Topic(event.MatchID)
	h.mu.RLock()
	if h.closed {
		h.mu.RUnlock()
		return ErrHubClosed
	}
	listeners := make([]*client, 0, len(h.rooms[room]))
	for c := range h.rooms[room] {
		listeners = append(listeners, c)
	}
	h.mu.RUnlock()

	if len(listeners) == 0 {
		return nil
	}

	if err := h.pool.Submit(func() { h.deliver(listeners, frame) }); err != nil {
		return errors.Wrap(err, "submit realtime fan-out")
	}
	h.logger.DebugContext(ctx, "realtime event queued", "room", room, "type", string(event.Type), "listeners", len(listeners))
	return nil
}

func (h *Hub) deliver(listeners []*client, frame []byte) {
	for _, c := range listeners {
		if !c.enqueue(frame) {
			h.logger.Warn("dropping slow realtime listener", "room", c.room)
			h.unregister(c)
		}
	}
}

// ServeMatch upgrades the request and subscribes the connection to the
// match's room until the peer goes away.
func (h *Hub) ServeMatch(w http.ResponseWriter, r *http.Request, matchID string) error {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return errors.Wrap(err, "upgrade websocket")
	}

	c := &client{
		hub:  h,
		room: matchevent.Topic(matchID),
		conn: conn,
		send: make(chan []byte, sendBuffer),
	}
	if err := h.register(c); err != nil {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
			time.Now().Add(writeWait))
		_ = conn.Close()
		return err
	}

	go c.writePump()
	go c.readPump()
	return nil
}

// Listeners reports the number of connections subscribed to a match.
func (h *Hub) Listeners(matchID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[matchevent.Topic(matchID)])
}

// Close disconnects every listener and stops the worker pool.
func (h *Hub) Close() {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	h.closed = true
	var all []*client
	for _, room := range h.rooms {
		for c := range room {
			all = append(all, c)
		}
	}
	h.rooms = make(map[string]map[*client]struct{})
	h.mu.Unlock()

	for _, c := range all {
		c.shutdown()
	}
	h.pool.Release()
}

func (h *Hub) register(c *client) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return ErrHubClosed
	}
	room, ok := h.rooms[c.room]
	if !ok {
		room = make(map[*client]struct{})
		h.rooms[c.room] = room
	}
	room[c] = struct{}{}
	return nil
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	if room, ok := h.rooms[c.room]; ok {
		delete(room, c)
		if len(room) == 0 {
			delete(h.rooms, c.room)
		}
	}
	h.mu.Unlock()
	c.shutdown()
}

// enqueue reports false only when the listener is alive but its queue is full.
func (c *client) enqueue(frame []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.done {
		return true
	}
	select {
	case c.send <- frame:
		return true
	default:
		return false
	}
}

func (c *client) shutdown() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.done {
		c.done = true
		close(c.send)
	}
}

// readPump only services control frames; listeners never send data.
func (c *client) readPump() {
	defer func() {
		c.hub.unregister(c)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.logger.Warn("realtime listener closed unexpectedly", "room", c.room, "error", err)
			}
			return
		}
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case frame, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

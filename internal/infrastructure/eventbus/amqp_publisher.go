package eventbus

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
	"github.com/streadway/amqp"
	"github.com/valyala/bytebufferpool"

	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/matchevent"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/platform/logging"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/platform/resilience"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/usecase"
)

const defaultExchange = "live-score.events"

type AMQPConfig struct {
	URL            string
	Exchange       string
	Heartbeat      time.Duration
	CircuitBreaker resilience.CircuitBreakerConfig
}

// channel is the subset of *amqp.Channel the publisher needs.
type channel interface {
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type dialFunc func() (channel, func() error, error)

// AMQPPublisher sends match events to a topic exchange. The connection is
// opened lazily and re-dialled after a failed publish.
type AMQPPublisher struct {
	mu       sync.Mutex
	ch       channel
	closeFn  func() error
	dial     dialFunc
	exchange string
	encode   matchevent.Encoder
	breaker  *resilience.CircuitBreaker
	logger   *logging.Logger
}

func NewAMQPPublisher(cfg AMQPConfig, encode matchevent.Encoder, logger *logging.Logger) (*AMQPPublisher, error) {
	url := strings.TrimSpace(cfg.URL)
	if url == "" {
		return nil, errors.New("amqp url is required")
	}
	exchange := strings.TrimSpace(cfg.Exchange)
	if exchange == "" {
		exchange = defaultExchange
	}
	heartbeat := cfg.Heartbeat
	if heartbeat <= 0 {
		heartbeat = 30 * time.Second
	}

	dial := func() (channel, func() error, error) {
		conn, err := amqp.DialConfig(url, amqp.Config{Heartbeat: heartbeat, Locale: "en_US"})
		if err != nil {
			return nil, nil, errors.Wrap(err, "dial amqp")
		}
		ch, err := conn.Channel()
		if err != nil {
			_ = conn.Close()
			return nil, nil, errors.Wrap(err, "open amqp channel")
		}
		if err := ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
			_ = conn.Close()
			return nil, nil, errors.Wrapf(err, "declare exchange %s", exchange)
		}
		return ch, conn.Close, nil
	}

	return newAMQPPublisher(dial, exchange, encode, resilience.NewCircuitBreaker(cfg.CircuitBreaker), logger), nil
}

func newAMQPPublisher(dial dialFunc, exchange string, encode matchevent.Encoder, breaker *resilience.CircuitBreaker, logger *logging.Logger) *AMQPPublisher {
	if logger == nil {
		logger = logging.Default()
	}
	return &AMQPPublisher{
		dial:     dial,
		exchange: exchange,
		encode:   encode,
		breaker:  breaker,
		logger:   logger.Named("eventbus"),
	}
}

// RoutingKey is match.<id>.score for scoring events and match.<id>.state for
// lifecycle changes.
func RoutingKey(event matchevent.Event) string {
	suffix := "score"
	if event.Type == matchevent.TypeMatchUpdated {
		suffix = "state"
	}
	return "match." + event.MatchID + "." + suffix
}

func (p *AMQPPublisher) Publish(ctx context.Context, event matchevent.Event) error {
	body, err := p.body(event)
	if err != nil {
		return err
	}

	err = p.breaker.Do(func() error {
		return p.publish(RoutingKey(event), amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    event.OccurredAt,
			Type:         string(event.Type),
			Body:         body,
		})
	})
	if errors.Is(err, resilience.ErrCircuitOpen) {
		return errors.Wrapf(usecase.ErrDependencyUnavailable, "amqp publish %s", event.Type)
	}
	if err != nil {
		return errors.Wrapf(err, "amqp publish %s", event.Type)
	}

	p.logger.DebugContext(ctx, "amqp event published", "routing_key", RoutingKey(event), "type", string(event.Type))
	return nil
}

func (p *AMQPPublisher) body(event matchevent.Event) ([]byte, error) {
	payload := event.Payload
	if p.encode != nil {
		var err error
		if payload, err = p.encode(event); err != nil {
			return nil, errors.Wrapf(err, "encode %s payload", event.Type)
		}
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(matchevent.Event{
		Type:       event.Type,
		MatchID:    event.MatchID,
		Payload:    payload,
		OccurredAt: event.OccurredAt,
	}); err != nil {
		return nil, errors.Wrap(err, "marshal amqp body")
	}
	return append([]byte(nil), buf.B...), nil
}

func (p *AMQPPublisher) publish(key string, msg amqp.Publishing) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch == nil {
		ch, closeFn, err := p.dial()
		if err != nil {
			return err
		}
		p.ch, p.closeFn = ch, closeFn
	}

	if err := p.ch.Publish(p.exchange, key, false, false, msg); err != nil {
		p.resetLocked()
		return err
	}
	return nil
}

func (p *AMQPPublisher) resetLocked() {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.closeFn != nil {
		_ = p.closeFn()
	}
	p.ch, p.closeFn = nil, nil
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.resetLocked()
	return nil
}

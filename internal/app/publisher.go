package app

import (
	"fmt"

	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/config"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/matchevent"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/infrastructure/eventbus"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/infrastructure/realtime"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/interfaces/httpapi"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/platform/logging"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/platform/resilience"
)

// newPublisher always pushes to the websocket hub and, when configured, also
// to the AMQP exchange.
func newPublisher(cfg config.Config, hub *realtime.Hub, logger *logging.Logger) (matchevent.Publisher, func() error, error) {
	noop := func() error { return nil }
	if !cfg.AMQPEnabled {
		return hub, noop, nil
	}

	amqpPublisher, err := eventbus.NewAMQPPublisher(eventbus.AMQPConfig{
		URL:       cfg.AMQPURL,
		Exchange:  cfg.AMQPExchange,
		Heartbeat: cfg.AMQPHeartbeat,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.AMQPCircuitEnabled,
			FailureThreshold: cfg.AMQPCircuitFailureCount,
			OpenTimeout:      cfg.AMQPCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.AMQPCircuitHalfOpenMax,
		}.Normalized(),
	}, httpapi.EncodeMatchEvent, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("build amqp publisher: %w", err)
	}

	logger.Info("amqp publisher enabled", "exchange", cfg.AMQPExchange)
	return eventbus.Fanout{hub, amqpPublisher}, amqpPublisher.Close, nil
}

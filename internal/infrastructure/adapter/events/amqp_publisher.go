package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	coreport "github.com/querykicks/querykicks/internal/domain/port/core"
	amqp "github.com/streadway/amqp"
)

// Config holds message broker connection details
type Config struct {
	URL      string
	Exchange string
}

// AmqpPublisher implements EventPublisher on top of a RabbitMQ topic
// exchange. A mutex guards the channel because amqp channels are not
// safe for concurrent publishing.
type AmqpPublisher struct {
	conn         *amqp.Connection
	channel      *amqp.Channel
	exchange     string
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	mu           sync.Mutex
}

// NewAmqpPublisher connects to the broker and declares the exchange
func NewAmqpPublisher(cfg Config, logger coreport.Logger, timeProvider coreport.TimeProvider) (*AmqpPublisher, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		cfg.Exchange, // name
		"topic",      // kind
		true,         // durable
		false,        // auto-delete
		false,        // internal
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange %s: %w", cfg.Exchange, err)
	}

	logger.Info("Connected to message broker", map[string]any{
		"exchange": cfg.Exchange,
	})

	return &AmqpPublisher{
		conn:         conn,
		channel:      ch,
		exchange:     cfg.Exchange,
		logger:       logger,
		timeProvider: timeProvider,
	}, nil
}

// Publish marshals the payload to JSON and publishes it under the
// given routing key
func (p *AmqpPublisher) Publish(ctx context.Context, routingKey string, payload any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.channel == nil {
		return fmt.Errorf("message broker channel is not available")
	}

	err = p.channel.Publish(
		p.exchange,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    p.timeProvider.Now(),
		})
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	p.logger.Debug("Published event", map[string]any{
		"routing_key": routingKey,
		"bytes":       len(body),
	})

	return nil
}

// Close closes the broker channel and connection
func (p *AmqpPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var errs []error
	if p.channel != nil {
		if err := p.channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close channel: %w", err))
		}
		p.channel = nil
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close connection: %w", err))
		}
		p.conn = nil
	}
	if len(errs) > 0 {
		return fmt.Errorf("errors occurred during broker close: %v", errs)
	}
	return nil
}

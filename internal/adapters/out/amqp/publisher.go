// Package amqp delivers order notifications through a RabbitMQ topic
// exchange. Each audience maps to a routing key under the "notifications."
// prefix, so manager consoles bind notifications.manager, kitchen displays
// bind notifications.kitchen, and a customer session binds its own
// notifications.customer.<sessionId> key.
package amqp

import (
	"context"
	"fmt"
	"sync"
	"time"

	"ordering/internal/core/domain/services"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	// ExchangeName is the topic exchange all order notifications flow through.
	ExchangeName = "notifications"

	routingKeyPrefix = "notifications."
)

// Config holds RabbitMQ connection parameters.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
}

// Client wraps an AMQP connection and channel bound to the notifications
// exchange. A single channel is shared; Publish serializes access to it.
type Client struct {
	conn *amqp.Connection
	ch   *amqp.Channel
	mu   sync.Mutex
}

// Dial connects to RabbitMQ and declares the notifications topic exchange.
func Dial(cfg Config) (*Client, error) {
	url := fmt.Sprintf("amqp://%s:%s@%s:%d/", cfg.User, cfg.Password, cfg.Host, cfg.Port)

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	if err = ch.ExchangeDeclare(ExchangeName, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}

	return &Client{conn: conn, ch: ch}, nil
}

// Close releases the channel and connection.
func (c *Client) Close() {
	if c.ch != nil {
		_ = c.ch.Close()
	}
	if c.conn != nil {
		_ = c.conn.Close()
	}
}

// Publish sends payload to every subscriber of audience through the topic
// exchange. Messages are transient: a notification nobody is around to hear
// has no value later, clients resynchronize by re-reading order state.
func (c *Client) Publish(ctx context.Context, audience services.Audience, payload []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.ch.PublishWithContext(
		ctx,
		ExchangeName,
		routingKeyPrefix+string(audience),
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Timestamp:   time.Now().UTC(),
			Body:        payload,
		},
	)
}

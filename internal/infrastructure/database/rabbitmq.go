package database

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// RabbitMQ bundles a broker connection with the channel used for publishing.
type RabbitMQ struct {
	Conn     *amqp.Connection
	Channel  *amqp.Channel
	Exchange string
}

// NewRabbitMQ dials the broker and declares a durable topic exchange.
func NewRabbitMQ(url, exchange string) (*RabbitMQ, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}

	return &RabbitMQ{Conn: conn, Channel: ch, Exchange: exchange}, nil
}

// Close closes the channel and the connection.
func (r *RabbitMQ) Close() error {
	if err := r.Channel.Close(); err != nil && !r.Conn.IsClosed() {
		return fmt.Errorf("close channel: %w", err)
	}
	return r.Conn.Close()
}

package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/SscSPs/hawala_settlement/internal/core/domain"
	"github.com/SscSPs/hawala_settlement/internal/core/ports"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	DefaultExchange   = "hawala.transactions"
	DefaultRoutingKey = "transaction.events"
)

// channel is the part of *amqp.Channel the publisher needs.
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// RabbitMQPublisher sends events as persistent JSON messages to a topic exchange.
type RabbitMQPublisher struct {
	conn       *amqp.Connection
	channel    channel
	exchange   string
	routingKey string
}

var _ ports.TransactionEventPublisher = (*RabbitMQPublisher)(nil)

// DialRabbitMQ connects to url and declares a durable topic exchange.
func DialRabbitMQ(url, exchange, routingKey string) (*RabbitMQPublisher, error) {
	if exchange == "" {
		exchange = DefaultExchange
	}
	if routingKey == "" {
		routingKey = DefaultRoutingKey
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open rabbitmq channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}

	p := newRabbitMQPublisher(ch, exchange, routingKey)
	p.conn = conn
	return p, nil
}

func newRabbitMQPublisher(ch channel, exchange, routingKey string) *RabbitMQPublisher {
	return &RabbitMQPublisher{channel: ch, exchange: exchange, routingKey: routingKey}
}

// Publish routes on "<routingKey>.<event type>" so consumers can bind to one kind.
func (p *RabbitMQPublisher) Publish(ctx context.Context, event domain.TransactionEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}

	err = p.channel.PublishWithContext(ctx, p.exchange, p.routingKey+"."+string(event.Type), false, false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    event.TransactionID + ":" + string(event.Status),
			Timestamp:    event.OccurredAt.UTC().Truncate(time.Second),
			Type:         string(event.Type),
			Headers:      amqp.Table{"reference_code": event.ReferenceCode},
			Body:         body,
		})
	if err != nil {
		return fmt.Errorf("publish %s for %s: %w", event.Type, event.ReferenceCode, err)
	}
	return nil
}

// Close releases the channel and connection.
func (p *RabbitMQPublisher) Close() error {
	if err := p.channel.Close(); err != nil {
		return err
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// Package events publishes order lifecycle messages for downstream
// consumers (invoice rendering, order confirmation email).
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"tienda/internal/domain"
	"github.com/streadway/amqp"
)

const exchange = "orders"

// Publisher emits order events on an AMQP topic exchange.
type Publisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

// Connect dials the broker and declares the orders exchange.
func Connect(url string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial broker: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}
	return &Publisher{conn: conn, channel: ch}, nil
}

type orderCreatedMessage struct {
	OrderID    int64     `json:"orderId"`
	BuyerID    int64     `json:"buyerId"`
	TotalCents int64     `json:"totalCents"`
	CreatedAt  time.Time `json:"createdAt"`
	Items      []item    `json:"items"`
}

type item struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// OrderCreated publishes an order.created message carrying the fields the
// invoice and email consumers need.
func (p *Publisher) OrderCreated(_ context.Context, o domain.Order) error {
	msg := orderCreatedMessage{
		OrderID:    o.ID,
		BuyerID:    o.BuyerID,
		TotalCents: o.TotalCents,
		CreatedAt:  o.CreatedAt,
	}
	for _, it := range o.Items {
		msg.Items = append(msg.Items, item{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal order.created: %w", err)
	}
	return p.channel.Publish(exchange, "order.created", false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Body:         body,
	})
}

// Close releases the channel and connection.
func (p *Publisher) Close() error {
	if p.channel != nil {
		if err := p.channel.Close(); err != nil {
			p.conn.Close()
			return err
		}
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

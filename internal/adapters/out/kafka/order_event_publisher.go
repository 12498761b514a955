// Package kafka publishes order lifecycle events to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"shop/internal/core/domain/model/order"

	"github.com/segmentio/kafka-go"
)

// OrderEventPublisher writes order status change events. A publisher built
// from an empty broker list is disabled and drops events silently, so the
// application works without a running broker.
type OrderEventPublisher struct {
	writer *kafka.Writer
}

// NewOrderEventPublisher creates a publisher for the given comma separated
// broker list and topic. An empty broker list yields a disabled publisher.
func NewOrderEventPublisher(brokersCSV string, topic string) *OrderEventPublisher {
	brokers := []string{}
	for _, b := range strings.Split(brokersCSV, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	if len(brokers) == 0 {
		return &OrderEventPublisher{}
	}
	return &OrderEventPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		},
	}
}

// Enabled reports whether events will actually be written.
func (p *OrderEventPublisher) Enabled() bool {
	return p.writer != nil
}

// Close releases the underlying writer.
func (p *OrderEventPublisher) Close() error {
	if p.writer == nil {
		return nil
	}
	return p.writer.Close()
}

type orderStatusChangedEvent struct {
	OrderID   string     `json:"order_id"`
	Status    string     `json:"status"`
	OrderedAt time.Time  `json:"ordered_at"`
	Products  []itemView `json:"products"`
}

type itemView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PublishStatusChanged emits an event describing the order's current status.
// Events are keyed by order id so changes to one order stay in partition
// order.
func (p *OrderEventPublisher) PublishStatusChanged(ctx context.Context, aggregate *order.Order) error {
	if p.writer == nil {
		return nil
	}

	event := orderStatusChangedEvent{
		OrderID:   aggregate.ID().String(),
		Status:    aggregate.Status().String(),
		OrderedAt: aggregate.OrderedAt(),
	}
	for _, item := range aggregate.Products() {
		event.Products = append(event.Products, itemView{ID: item.ID(), Name: item.Name()})
	}

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID),
		Value: data,
		Time:  time.Now().UTC(),
	})
}

package collaborator

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/guttosm/fulfillment-service/internal/domain/model"
	"github.com/guttosm/fulfillment-service/internal/metrics"
)

// messageWriter is the subset of kafka.Writer the adapter needs. Tests
// substitute a fake.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaNotificationsAdapter publishes item shipping notifications to a Kafka
// topic. It implements CustomerNotifications. Messages are keyed by customer
// id so one customer's notifications stay ordered within a partition.
type KafkaNotificationsAdapter struct {
	writer messageWriter
}

// NewKafkaWriter builds a kafka.Writer for the given brokers and topic.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 10 * time.Millisecond,
	}
}

// NewKafkaNotificationsAdapter creates a notifications adapter around writer.
func NewKafkaNotificationsAdapter(writer *kafka.Writer) *KafkaNotificationsAdapter {
	return &KafkaNotificationsAdapter{writer: writer}
}

// itemShippingEvent is the published payload.
type itemShippingEvent struct {
	CustomerID   string    `json:"customer_id"`
	ItemID       string    `json:"item_id"`
	ShippingCost float64   `json:"shipping_cost"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// NotifyItemShipping publishes one event per item directive.
func (a *KafkaNotificationsAdapter) NotifyItemShipping(ctx context.Context, customerID model.UserID, itemID model.ItemID, shippingCost float64) error {
	event := itemShippingEvent{
		CustomerID:   customerID.String(),
		ItemID:       itemID.String(),
		ShippingCost: shippingCost,
		OccurredAt:   time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal item shipping event: %w", err)
	}

	err = a.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(customerID.String()),
		Value: payload,
	})
	if err != nil {
		metrics.RecordCollaboratorCall("customer-notifications", "error")
		return err
	}
	metrics.RecordCollaboratorCall("customer-notifications", "success")
	return nil
}

// Close closes the underlying writer.
func (a *KafkaNotificationsAdapter) Close() error {
	return a.writer.Close()
}

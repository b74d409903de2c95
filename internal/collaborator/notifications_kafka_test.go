package collaborator

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/fulfillment-service/internal/metrics"
)

type fakeWriter struct {
	messages []kafka.Message
	writeErr error
	closed   bool
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.messages = append(f.messages, msgs...)
	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true
	return nil
}

func TestKafkaNotificationsAdapter_NotifyItemShipping(t *testing.T) {
	writer := &fakeWriter{}
	adapter := &KafkaNotificationsAdapter{writer: writer}

	err := adapter.NotifyItemShipping(context.Background(), "user-7", "item-1", 15.0)
	require.NoError(t, err)

	require.Len(t, writer.messages, 1)
	msg := writer.messages[0]

	// Keyed by customer so one customer's events stay on one partition.
	assert.Equal(t, []byte("user-7"), msg.Key)

	var event itemShippingEvent
	require.NoError(t, json.Unmarshal(msg.Value, &event))
	assert.Equal(t, "user-7", event.CustomerID)
	assert.Equal(t, "item-1", event.ItemID)
	assert.Equal(t, 15.0, event.ShippingCost)
	assert.False(t, event.OccurredAt.IsZero())
}

func TestKafkaNotificationsAdapter_WriteFailure(t *testing.T) {
	brokerErr := errors.New("broker unreachable")
	adapter := &KafkaNotificationsAdapter{writer: &fakeWriter{writeErr: brokerErr}}

	errorBefore := testutil.ToFloat64(metrics.CollaboratorCallsTotal.WithLabelValues("customer-notifications", "error"))

	err := adapter.NotifyItemShipping(context.Background(), "user-7", "item-1", 15.0)

	assert.ErrorIs(t, err, brokerErr)
	assert.Equal(t, errorBefore+1, testutil.ToFloat64(metrics.CollaboratorCallsTotal.WithLabelValues("customer-notifications", "error")))
}

func TestKafkaNotificationsAdapter_Close(t *testing.T) {
	writer := &fakeWriter{}
	adapter := &KafkaNotificationsAdapter{writer: writer}

	require.NoError(t, adapter.Close())
	assert.True(t, writer.closed)
}

func TestNewKafkaWriter(t *testing.T) {
	writer := NewKafkaWriter([]string{"localhost:9092"}, "customer-notifications")

	assert.Equal(t, "customer-notifications", writer.Topic)
	assert.Equal(t, kafka.RequireOne, writer.RequiredAcks)
}

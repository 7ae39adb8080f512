// Package kafka publishes fulfillment events to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

const (
	eventOrderStatusChanged       = "order.status_changed"
	eventInventoryReleaseRequired = "inventory.release_requested"
)

type statusChangedEvent struct {
	Event      string    `json:"event"`
	OrderID    string    `json:"order_id"`
	FromStatus string    `json:"from_status"`
	ToStatus   string    `json:"to_status"`
	OccurredAt time.Time `json:"occurred_at"`
}

type inventoryReleaseEvent struct {
	Event      string    `json:"event"`
	OrderID    string    `json:"order_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Notifier publishes order lifecycle events to Kafka. Produces are
// asynchronous: a broker outage never blocks or fails the mutation that
// produced the event, failed deliveries are only logged.
type Notifier struct {
	client *kgo.Client
	logger *slog.Logger
}

// NewNotifier creates a Kafka-backed notifier producing to the given topic.
func NewNotifier(brokers []string, topic string, logger *slog.Logger) (*Notifier, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
		kgo.ProduceRequestTimeout(10*time.Second),
		kgo.ClientID("fulfillment"),
	)
	if err != nil {
		return nil, err
	}

	return &Notifier{
		client: client,
		logger: logger,
	}, nil
}

// OrderStatusChanged announces a canonical status transition.
func (n *Notifier) OrderStatusChanged(ctx context.Context, orderID kernel.UUID, from, to order.Status) {
	n.produce(ctx, orderID, statusChangedEvent{
		Event:      eventOrderStatusChanged,
		OrderID:    orderID.String(),
		FromStatus: from.String(),
		ToStatus:   to.String(),
		OccurredAt: time.Now().UTC(),
	})
}

// InventoryReleaseRequested asks inventory to release stock held for a
// cancelled catalog order.
func (n *Notifier) InventoryReleaseRequested(ctx context.Context, orderID kernel.UUID) {
	n.produce(ctx, orderID, inventoryReleaseEvent{
		Event:      eventInventoryReleaseRequired,
		OrderID:    orderID.String(),
		OccurredAt: time.Now().UTC(),
	})
}

func (n *Notifier) produce(ctx context.Context, orderID kernel.UUID, event any) {
	payload, err := json.Marshal(event)
	if err != nil {
		n.logger.Error("marshal event", "order_id", orderID.String(), "error", err)
		return
	}

	record := &kgo.Record{
		Key:   []byte(orderID.String()),
		Value: payload,
	}
	n.client.Produce(ctx, record, func(_ *kgo.Record, err error) {
		if err != nil {
			n.logger.Error("produce event", "order_id", orderID.String(), "error", err)
		}
	})
}

// Close flushes buffered records and closes the underlying client.
func (n *Notifier) Close() {
	n.client.Close()
}

// Package kafka publishes order lifecycle events to a Kafka topic as Avro records.
package kafka

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"wandshop/internal/core/domain/model/order"

	"github.com/twmb/franz-go/pkg/kgo"
)

type producer interface {
	ProduceSync(ctx context.Context, rs ...*kgo.Record) kgo.ProduceResults
}

// Publisher implements ports.EventPublisher. Records are keyed by order ID so the
// events of one order stay on one partition, in order.
type Publisher struct {
	client  producer
	closer  func()
	topic   string
	encoder *Encoder
	logger  *slog.Logger
}

func NewPublisher(brokers []string, topic string, logger *slog.Logger) (*Publisher, error) {
	if len(brokers) == 0 {
		return nil, errors.New("no kafka brokers")
	}
	if topic == "" {
		return nil, errors.New("kafka topic is empty")
	}

	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
		kgo.RequiredAcks(kgo.AllISRAcks()),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}

	p, err := newPublisher(client, topic, logger)
	if err != nil {
		client.Close()
		return nil, err
	}
	p.closer = client.Close
	return p, nil
}

func newPublisher(client producer, topic string, logger *slog.Logger) (*Publisher, error) {
	encoder, err := NewEncoder()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{
		client:  client,
		closer:  func() {},
		topic:   topic,
		encoder: encoder,
		logger:  logger.With("component", "kafka_publisher", "topic", topic),
	}, nil
}

func (p *Publisher) Publish(ctx context.Context, events ...order.ChangedEvent) error {
	if len(events) == 0 {
		return nil
	}

	records := make([]*kgo.Record, 0, len(events))
	for _, event := range events {
		value, err := p.encoder.Encode(event)
		if err != nil {
			return err
		}
		records = append(records, &kgo.Record{
			Topic:     p.topic,
			Key:       []byte(event.OrderID.String()),
			Value:     value,
			Timestamp: time.Now().UTC(),
		})
	}

	if err := p.client.ProduceSync(ctx, records...).FirstErr(); err != nil {
		return fmt.Errorf("publish to kafka topic %s: %w", p.topic, err)
	}
	p.logger.DebugContext(ctx, "order events published", "count", len(records))
	return nil
}

func (p *Publisher) Close() {
	p.logger.Info("closing producer")
	p.closer()
}

package kafka

import (
	"context"
	"log/slog"

	"github.com/twmb/franz-go/pkg/kgo"
)

type Producer interface {
	ProduceSync(ctx context.Context, rs ...*kgo.Record) kgo.ProduceResults
}

func NewPublisherWithProducer(client Producer, topic string, logger *slog.Logger) (*Publisher, error) {
	return newPublisher(client, topic, logger)
}

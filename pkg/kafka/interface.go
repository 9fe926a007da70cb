package kafka

import (
	"context"

	"github.com/IBM/sarama"
)

// IProducer publishes to one topic. Implementations are safe for concurrent use.
type IProducer interface {
	Publish(key, value []byte) error
	Close() error
	HealthCheck() error
}

// IConsumer wraps sarama.ConsumerGroup.
type IConsumer interface {
	// ConsumeWithContext consumes topics until ctx is cancelled, rejoining after every rebalance.
	ConsumeWithContext(ctx context.Context, topics []string, handler sarama.ConsumerGroupHandler) error
	Close() error
	Errors() <-chan error
}

// NewProducer creates a new Kafka producer.
func NewProducer(cfg Config) (IProducer, error) {
	if err := validateProducerConfig(cfg); err != nil {
		return nil, err
	}
	return newProducerImpl(cfg)
}

// NewConsumer creates a new Kafka consumer group.
func NewConsumer(cfg ConsumerConfig) (IConsumer, error) {
	if err := validateConsumerConfig(cfg); err != nil {
		return nil, err
	}
	return newConsumerImpl(cfg)
}

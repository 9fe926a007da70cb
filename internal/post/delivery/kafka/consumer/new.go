package consumer

import (
	"errors"
	"fmt"

	"content-srv/config"
	"content-srv/internal/post"
	kafkaDelivery "content-srv/internal/post/delivery/kafka"
	pkgKafka "content-srv/pkg/kafka"
	"content-srv/pkg/log"
)

// Config holds the configuration for the post indexing consumer
type Config struct {
	Logger      log.Logger
	KafkaConfig config.KafkaConfig
	UseCase     post.UseCase
}

// Consumer feeds post events into the search index.
type Consumer struct {
	l           log.Logger
	kafkaConfig config.KafkaConfig
	uc          post.UseCase

	indexingGroup pkgKafka.IConsumer
}

// New creates a new post indexing consumer
func New(cfg Config) (*Consumer, error) {
	if cfg.Logger == nil {
		return nil, errors.New("logger is required")
	}
	if cfg.UseCase == nil {
		return nil, errors.New("usecase is required")
	}
	if len(cfg.KafkaConfig.Brokers) == 0 {
		return nil, errors.New("kafka brokers are required")
	}

	return &Consumer{
		l:           cfg.Logger,
		kafkaConfig: cfg.KafkaConfig,
		uc:          cfg.UseCase,
	}, nil
}

// Close closes all consumer groups
func (c *Consumer) Close() error {
	if c.indexingGroup != nil {
		if err := c.indexingGroup.Close(); err != nil {
			return fmt.Errorf("failed to close post indexing group: %w", err)
		}
	}
	return nil
}

func (c *Consumer) groupID() string {
	if c.kafkaConfig.GroupID != "" {
		return c.kafkaConfig.GroupID
	}
	return kafkaDelivery.ConsumerGroupPostIndexing
}

func (c *Consumer) topic() string {
	if c.kafkaConfig.Topic != "" {
		return c.kafkaConfig.Topic
	}
	return kafkaDelivery.TopicPostEvents
}

// createConsumerGroup creates a new Kafka consumer group
func (c *Consumer) createConsumerGroup(groupID string) (pkgKafka.IConsumer, error) {
	group, err := pkgKafka.NewConsumer(pkgKafka.ConsumerConfig{
		Brokers:      c.kafkaConfig.Brokers,
		GroupID:      groupID,
		OldestOffset: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group %s: %w", groupID, err)
	}
	return group, nil
}

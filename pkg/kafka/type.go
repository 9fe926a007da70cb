package kafka

import "github.com/IBM/sarama"

// Config holds configuration for Kafka producer.
type Config struct {
	Brokers []string
	Topic   string
}

// ConsumerConfig holds configuration for Kafka consumer group.
type ConsumerConfig struct {
	Brokers []string
	GroupID string
	// OldestOffset starts a new group from the oldest offset instead of the newest.
	OldestOffset bool
}

type producerImpl struct {
	producer sarama.SyncProducer
	topic    string
}

type consumerImpl struct {
	group sarama.ConsumerGroup
}

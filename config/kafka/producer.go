package kafka

import (
	"fmt"
	"sync"

	"content-srv/config"
	"content-srv/pkg/kafka"
)

var (
	producerInstance kafka.IProducer
	producerMu       sync.RWMutex
)

// ConnectProducer opens the shared producer. Returns the existing one if already connected.
func ConnectProducer(cfg config.KafkaConfig) (kafka.IProducer, error) {
	producerMu.Lock()
	defer producerMu.Unlock()

	if producerInstance != nil {
		return producerInstance, nil
	}

	client, err := kafka.NewProducer(kafka.Config{
		Brokers: cfg.Brokers,
		Topic:   cfg.Topic,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Kafka producer: %w", err)
	}

	producerInstance = client
	return producerInstance, nil
}

// DisconnectProducer closes the shared producer.
func DisconnectProducer() error {
	producerMu.Lock()
	defer producerMu.Unlock()

	if producerInstance == nil {
		return nil
	}
	if err := producerInstance.Close(); err != nil {
		return err
	}
	producerInstance = nil
	return nil
}

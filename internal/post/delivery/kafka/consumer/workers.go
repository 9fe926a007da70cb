package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"

	kafkaDelivery "content-srv/internal/post/delivery/kafka"
	"content-srv/pkg/scope"
)

// handlePostEventMessage decodes the event and hands it to the usecase. Malformed messages are skipped.
func (c *Consumer) handlePostEventMessage(ctx context.Context, msg *sarama.ConsumerMessage) error {
	c.l.Debugf(ctx, "post.delivery.kafka.consumer.handlePostEventMessage: partition %d, offset %d", msg.Partition, msg.Offset)

	var message kafkaDelivery.PostEventMessage
	if err := json.Unmarshal(msg.Value, &message); err != nil {
		c.l.Warnf(ctx, "post.delivery.kafka.consumer.handlePostEventMessage: invalid message format (skipping): %v", err)
		return nil
	}

	input, ok := toSyncIndexInput(message)
	if !ok {
		c.l.Warnf(ctx, "post.delivery.kafka.consumer.handlePostEventMessage: invalid message %+v (skipping)", message)
		return nil
	}

	ctx = scope.SetScopeToContext(ctx, scope.SystemScope())
	if err := c.uc.SyncIndex(ctx, input); err != nil {
		c.l.Errorf(ctx, "post.delivery.kafka.consumer.handlePostEventMessage: usecase SyncIndex failed: %v", err)
		return fmt.Errorf("usecase error: %w", err)
	}
	return nil
}

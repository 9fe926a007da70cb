package producer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"content-srv/internal/model"
	kafkaDelivery "content-srv/internal/post/delivery/kafka"
)

// Index publishes an upserted event for the post.
func (p *implProducer) Index(ctx context.Context, post model.Post) error {
	return p.publish(ctx, kafkaDelivery.EventTypePostUpserted, post.ID)
}

// Remove publishes a deleted event per id.
func (p *implProducer) Remove(ctx context.Context, ids []string) error {
	for _, id := range ids {
		if err := p.publish(ctx, kafkaDelivery.EventTypePostDeleted, id); err != nil {
			return err
		}
	}
	return nil
}

func (p *implProducer) publish(ctx context.Context, eventType, postID string) error {
	msg := kafkaDelivery.PostEventMessage{
		Type:       eventType,
		PostID:     postID,
		OccurredAt: time.Now().UTC(),
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal post event: %w", err)
	}

	// Keyed by post id so events of one post stay ordered within a partition.
	if err := p.producer.Publish([]byte(postID), body); err != nil {
		return fmt.Errorf("failed to publish post event: %w", err)
	}

	p.l.Debugf(ctx, "Published %s for post %s", eventType, postID)
	return nil
}

package kafka

import (
	"time"
)

// PostEventMessage - Kafka message for content.post.events. The consumer reloads the post by id.
type PostEventMessage struct {
	Type       string    `json:"type"`
	PostID     string    `json:"post_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

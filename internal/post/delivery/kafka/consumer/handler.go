package consumer

import (
	"context"

	"github.com/IBM/sarama"
)

type postEventsHandler struct {
	consumer *Consumer
}

func (h *postEventsHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *postEventsHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

// ConsumeClaim marks every handled message. A failed one is logged and left unmarked,
// it is skipped once a later offset of the partition is marked.
func (h *postEventsHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for msg := range claim.Messages() {
		if err := h.consumer.handlePostEventMessage(session.Context(), msg); err != nil {
			h.consumer.l.Errorf(context.Background(), "post.delivery.kafka.consumer.ConsumeClaim: failed to process post event: %v", err)
			continue
		}
		session.MarkMessage(msg, "")
	}
	return nil
}

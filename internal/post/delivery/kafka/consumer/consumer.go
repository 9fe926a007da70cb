package consumer

import (
	"context"
)

// ConsumePostEvents starts consuming post events. It returns once the group is running.
func (c *Consumer) ConsumePostEvents(ctx context.Context) error {
	group, err := c.createConsumerGroup(c.groupID())
	if err != nil {
		return err
	}
	c.indexingGroup = group

	handler := &postEventsHandler{consumer: c}
	topics := []string{c.topic()}

	go func() {
		if err := group.ConsumeWithContext(ctx, topics, handler); err != nil {
			c.l.Errorf(ctx, "post.delivery.kafka.consumer.ConsumePostEvents: consumer stopped: %v", err)
		}
	}()

	go func() {
		for err := range group.Errors() {
			c.l.Errorf(ctx, "post.delivery.kafka.consumer.ConsumePostEvents: consumer group error: %v", err)
		}
	}()

	c.l.Infof(ctx, "Consuming %s as %s", topics[0], c.groupID())
	return nil
}

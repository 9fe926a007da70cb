package consumer

import (
	"content-srv/internal/post"
	kafkaDelivery "content-srv/internal/post/delivery/kafka"
)

func toSyncIndexInput(m kafkaDelivery.PostEventMessage) (post.SyncIndexInput, bool) {
	if m.PostID == "" {
		return post.SyncIndexInput{}, false
	}
	switch m.Type {
	case kafkaDelivery.EventTypePostUpserted:
		return post.SyncIndexInput{ID: m.PostID}, true
	case kafkaDelivery.EventTypePostDeleted:
		return post.SyncIndexInput{ID: m.PostID, Deleted: true}, true
	default:
		return post.SyncIndexInput{}, false
	}
}

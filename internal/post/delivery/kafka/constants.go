package kafka

// ============================================
// Kafka Topics
// ============================================

const (
	// TopicPostEvents carries post write events for the search indexer.
	TopicPostEvents = "content.post.events"
)

// ============================================
// Consumer Group IDs
// ============================================

const (
	ConsumerGroupPostIndexing = "content-consumer-post-indexing"
)

// ============================================
// Event Types
// ============================================

const (
	EventTypePostUpserted = "post.upserted"
	EventTypePostDeleted  = "post.deleted"
)

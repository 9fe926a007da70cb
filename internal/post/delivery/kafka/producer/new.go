package producer

import (
	"content-srv/internal/post"
	pkgKafka "content-srv/pkg/kafka"
	"content-srv/pkg/log"
)

type implProducer struct {
	l        log.Logger
	producer pkgKafka.IProducer
}

// New creates a post indexer that publishes post events instead of indexing inline.
func New(l log.Logger, producer pkgKafka.IProducer) post.Indexer {
	return &implProducer{
		l:        l,
		producer: producer,
	}
}

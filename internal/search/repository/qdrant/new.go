package qdrant

import (
	"content-srv/internal/search/repository"
	"content-srv/pkg/log"
	pkgQdrant "content-srv/pkg/qdrant"
)

type implRepository struct {
	client     pkgQdrant.IQdrant
	collection string
	l          log.Logger
}

func New(client pkgQdrant.IQdrant, collection string, l log.Logger) repository.PointRepository {
	return &implRepository{
		client:     client,
		collection: collection,
		l:          l,
	}
}

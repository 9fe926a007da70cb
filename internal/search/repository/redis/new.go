package redis

import (
	"content-srv/internal/search/repository"
	"content-srv/pkg/log"
	pkgRedis "content-srv/pkg/redis"
)

type implRepository struct {
	redis pkgRedis.IRedis
	l     log.Logger
}

func New(redis pkgRedis.IRedis, l log.Logger) repository.EmbeddingCache {
	return &implRepository{
		redis: redis,
		l:     l,
	}
}

package usecase

import (
	"content-srv/internal/search"
	"content-srv/internal/search/repository"
	"content-srv/pkg/log"
	"content-srv/pkg/voyage"
)

const defaultLimit = 100

type implUseCase struct {
	l      log.Logger
	points repository.PointRepository
	cache  repository.EmbeddingCache
	voyage voyage.IVoyage
	cfg    search.Config
}

func New(l log.Logger, points repository.PointRepository, cache repository.EmbeddingCache, voyage voyage.IVoyage, cfg search.Config) search.UseCase {
	if cfg.Limit == 0 {
		cfg.Limit = defaultLimit
	}
	return &implUseCase{
		l:      l,
		points: points,
		cache:  cache,
		voyage: voyage,
		cfg:    cfg,
	}
}

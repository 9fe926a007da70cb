package usecase

import (
	"content-srv/internal/category"
	"content-srv/internal/category/repository"
	"content-srv/pkg/log"
	"content-srv/pkg/postgre"
)

type implUseCase struct {
	l    log.Logger
	repo repository.Repository
	tx   postgre.TxManager
}

func New(l log.Logger, repo repository.Repository, tx postgre.TxManager) category.UseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
		tx:   tx,
	}
}

package usecase

import (
	"content-srv/internal/comment"
	"content-srv/internal/comment/repository"
	postRepo "content-srv/internal/post/repository"
	"content-srv/pkg/log"
)

type implUseCase struct {
	l        log.Logger
	repo     repository.Repository
	postRepo postRepo.Repository
}

func New(l log.Logger, repo repository.Repository, postRepo postRepo.Repository) comment.UseCase {
	return &implUseCase{
		l:        l,
		repo:     repo,
		postRepo: postRepo,
	}
}

package usecase

import (
	categoryRepo "content-srv/internal/category/repository"
	"content-srv/internal/post"
	"content-srv/internal/post/repository"
	"content-srv/internal/search"
	"content-srv/pkg/log"
	"content-srv/pkg/postgre"
)

const (
	SearchTypeLike     = "like"
	SearchTypeFulltext = "fulltext"
	SearchTypeVector   = "vector"
)

// Config holds the dependencies of the post usecase. Indexer and Searcher are optional.
type Config struct {
	Logger       log.Logger
	Repo         repository.Repository
	CategoryRepo categoryRepo.Repository
	TxManager    postgre.TxManager
	Indexer      post.Indexer
	Searcher     search.UseCase
	SearchType   string
}

type implUseCase struct {
	l            log.Logger
	repo         repository.Repository
	categoryRepo categoryRepo.Repository
	tx           postgre.TxManager
	indexer      post.Indexer
	searcher     search.UseCase
	searchType   string
}

func New(cfg Config) post.UseCase {
	searchType := cfg.SearchType
	if searchType == "" {
		searchType = SearchTypeLike
	}
	return &implUseCase{
		l:            cfg.Logger,
		repo:         cfg.Repo,
		categoryRepo: cfg.CategoryRepo,
		tx:           cfg.TxManager,
		indexer:      cfg.Indexer,
		searcher:     cfg.Searcher,
		searchType:   searchType,
	}
}

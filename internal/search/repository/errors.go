package repository

import "errors"

var (
	ErrUpsertFailed = errors.New("repository: failed to upsert point")
	ErrDeleteFailed = errors.New("repository: failed to delete points")
	ErrSearchFailed = errors.New("repository: failed to search points")
)

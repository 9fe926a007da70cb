package repository

import "errors"

var (
	ErrPostNotFound   = errors.New("repository: post not found")
	ErrCreateFailed   = errors.New("repository: failed to create post")
	ErrUpdateFailed   = errors.New("repository: failed to update post")
	ErrDeleteFailed   = errors.New("repository: failed to delete post")
	ErrRelationFailed = errors.New("repository: failed to update post categories")
)

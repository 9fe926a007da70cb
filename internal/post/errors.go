package post

import "errors"

var (
	ErrPostNotFound     = errors.New("post: post not found")
	ErrCategoryNotFound = errors.New("post: category not found")
	ErrIDsRequired      = errors.New("post: at least one id is required")
	ErrTitleRequired    = errors.New("post: title is required")
	ErrInvalidType      = errors.New("post: invalid post type")
	ErrInvalidOrder     = errors.New("post: invalid order")
	ErrIndexFailed      = errors.New("post: search index update failed")
	ErrSearchFailed     = errors.New("post: search failed")
)

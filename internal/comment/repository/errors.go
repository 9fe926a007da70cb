package repository

import "errors"

var (
	ErrCommentNotFound = errors.New("comment not found")
	ErrCreateFailed    = errors.New("failed to create comment")
	ErrDeleteFailed    = errors.New("failed to delete comments")
)

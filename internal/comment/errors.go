package comment

import "errors"

var (
	ErrCommentNotFound = errors.New("comment: comment not found")
	ErrPostNotFound    = errors.New("comment: post not found")
	ErrParentNotFound  = errors.New("comment: parent comment not found")
	ErrParentMismatch  = errors.New("comment: parent belongs to another post")
	ErrIDsRequired     = errors.New("comment: at least one id is required")
	ErrBodyRequired    = errors.New("comment: body is required")
	ErrUnauthenticated = errors.New("comment: author is required")
)

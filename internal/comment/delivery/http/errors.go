package http

import (
	"errors"

	"content-srv/internal/comment"
	pkgErrors "content-srv/pkg/errors"
	"content-srv/pkg/paginator"
)

var (
	errCommentNotFound = pkgErrors.NewHTTPError(404, "Comment not found")
	errPostNotFound    = pkgErrors.NewHTTPError(400, "Post not found")
	errParentNotFound  = pkgErrors.NewHTTPError(400, "Parent comment not found")
	errParentMismatch  = pkgErrors.NewHTTPError(400, "Parent comment belongs to another post")
	errIDsRequired     = pkgErrors.NewHTTPError(400, "At least one id is required")
	errBodyRequired    = pkgErrors.NewHTTPError(400, "Body is required")
	errUnauthenticated = pkgErrors.NewHTTPError(401, "Unauthorized")
	errInvalidPaginate = pkgErrors.NewHTTPError(400, "Invalid page or limit")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, comment.ErrCommentNotFound):
		return errCommentNotFound
	case errors.Is(err, comment.ErrPostNotFound):
		return errPostNotFound
	case errors.Is(err, comment.ErrParentNotFound):
		return errParentNotFound
	case errors.Is(err, comment.ErrParentMismatch):
		return errParentMismatch
	case errors.Is(err, comment.ErrIDsRequired):
		return errIDsRequired
	case errors.Is(err, comment.ErrBodyRequired):
		return errBodyRequired
	case errors.Is(err, comment.ErrUnauthenticated):
		return errUnauthenticated
	case errors.Is(err, paginator.ErrInvalidArgument):
		return errInvalidPaginate
	default:
		panic(err)
	}
}

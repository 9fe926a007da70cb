package http

import (
	"errors"

	"content-srv/internal/post"
	pkgErrors "content-srv/pkg/errors"
	"content-srv/pkg/paginator"
)

var (
	errPostNotFound     = pkgErrors.NewHTTPError(404, "Post not found")
	errCategoryNotFound = pkgErrors.NewHTTPError(400, "Category not found")
	errIDsRequired      = pkgErrors.NewHTTPError(400, "At least one id is required")
	errTitleRequired    = pkgErrors.NewHTTPError(400, "Title is required")
	errInvalidType      = pkgErrors.NewHTTPError(400, "Type must be html or markdown")
	errInvalidOrder     = pkgErrors.NewHTTPError(400, "Unknown order")
	errInvalidPaginate  = pkgErrors.NewHTTPError(400, "Invalid page or limit")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, post.ErrPostNotFound):
		return errPostNotFound
	case errors.Is(err, post.ErrCategoryNotFound):
		return errCategoryNotFound
	case errors.Is(err, post.ErrIDsRequired):
		return errIDsRequired
	case errors.Is(err, post.ErrTitleRequired):
		return errTitleRequired
	case errors.Is(err, post.ErrInvalidType):
		return errInvalidType
	case errors.Is(err, post.ErrInvalidOrder):
		return errInvalidOrder
	case errors.Is(err, paginator.ErrInvalidArgument):
		return errInvalidPaginate
	default:
		panic(err)
	}
}

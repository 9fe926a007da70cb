package http

import (
	"errors"

	"content-srv/internal/category"
	pkgErrors "content-srv/pkg/errors"
	"content-srv/pkg/paginator"
)

var (
	errCategoryNotFound = pkgErrors.NewHTTPError(404, "Category not found")
	errParentNotFound   = pkgErrors.NewHTTPError(400, "Parent category not found")
	errInvalidParent    = pkgErrors.NewHTTPError(400, "Category cannot be moved under itself or a descendant")
	errIDsRequired      = pkgErrors.NewHTTPError(400, "At least one id is required")
	errNameRequired     = pkgErrors.NewHTTPError(400, "Name is required")
	errInvalidPaginate  = pkgErrors.NewHTTPError(400, "Invalid page or limit")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, category.ErrCategoryNotFound):
		return errCategoryNotFound
	case errors.Is(err, category.ErrParentNotFound):
		return errParentNotFound
	case errors.Is(err, category.ErrInvalidParent):
		return errInvalidParent
	case errors.Is(err, category.ErrIDsRequired):
		return errIDsRequired
	case errors.Is(err, category.ErrNameRequired):
		return errNameRequired
	case errors.Is(err, paginator.ErrInvalidArgument):
		return errInvalidPaginate
	default:
		panic(err)
	}
}

package repository

import "errors"

var (
	ErrCategoryNotFound = errors.New("repository: category not found")
	ErrCreateFailed     = errors.New("repository: failed to create category")
	ErrUpdateFailed     = errors.New("repository: failed to update category")
	ErrDeleteFailed     = errors.New("repository: failed to delete category")
)

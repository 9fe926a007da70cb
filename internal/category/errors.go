package category

import "errors"

var (
	ErrCategoryNotFound = errors.New("category: category not found")
	ErrParentNotFound   = errors.New("category: parent category not found")
	ErrInvalidParent    = errors.New("category: category cannot be moved under itself or a descendant")
	ErrIDsRequired      = errors.New("category: at least one id is required")
	ErrNameRequired     = errors.New("category: name is required")
)

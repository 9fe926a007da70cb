package repository

import "content-srv/internal/model"

type ListOptions struct {
	Trashed model.TrashMode
	IDs     []string
}

type DetailOptions struct {
	ID          string
	WithTrashed bool
}

type CreateOptions struct {
	ID          string
	Name        string
	CustomOrder int
	ParentID    *string
	MPath       string
}

type UpdateOptions struct {
	ID          string
	Name        *string
	CustomOrder *int
	ParentSet   bool
	ParentID    *string
}

type MovePathsOptions struct {
	OldPrefix string
	NewPrefix string
	// ExcludeID keeps the row owning OldPrefix unchanged.
	ExcludeID string
}

type ReparentChildrenOptions struct {
	ID       string
	ParentID *string
}

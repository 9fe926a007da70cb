package model

import (
	"strings"
	"time"
)

// MPathSeparator terminates every segment of a materialized path.
const MPathSeparator = "."

// Category is a node of the category tree. MPath is the chain of ancestor ids
// ending with the category's own id, each followed by MPathSeparator.
type Category struct {
	ID          string
	Name        string
	CustomOrder int
	ParentID    *string
	MPath       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

// IsTrashed reports whether the category is soft-deleted.
func (c Category) IsTrashed() bool {
	return c.DeletedAt != nil
}

// ChildMPath returns the path of a direct child with the given id.
func (c Category) ChildMPath(childID string) string {
	return c.MPath + childID + MPathSeparator
}

// IsAncestorOf reports whether c is a strict ancestor of other.
func (c Category) IsAncestorOf(other Category) bool {
	return c.ID != other.ID && strings.HasPrefix(other.MPath, c.MPath)
}

// RootMPath returns the path of a root node.
func RootMPath(id string) string {
	return id + MPathSeparator
}

// AncestorIDs returns the ids encoded in a path, root first, excluding the last one.
func AncestorIDs(mpath string) []string {
	parts := strings.Split(strings.TrimSuffix(mpath, MPathSeparator), MPathSeparator)
	if len(parts) <= 1 {
		return nil
	}
	return parts[:len(parts)-1]
}

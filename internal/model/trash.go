package model

// TrashMode selects how soft-deleted rows are treated by a query.
type TrashMode string

const (
	// TrashNone excludes soft-deleted rows.
	TrashNone TrashMode = "none"
	// TrashAll includes soft-deleted rows.
	TrashAll TrashMode = "all"
	// TrashOnly returns soft-deleted rows only.
	TrashOnly TrashMode = "only"
)

// ParseTrashMode returns the mode for s, and false for unknown values. Empty means TrashNone.
func ParseTrashMode(s string) (TrashMode, bool) {
	switch TrashMode(s) {
	case "", TrashNone:
		return TrashNone, true
	case TrashAll:
		return TrashAll, true
	case TrashOnly:
		return TrashOnly, true
	default:
		return "", false
	}
}

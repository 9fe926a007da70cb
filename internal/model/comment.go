package model

import "time"

// Comment is a reply to a post or to another comment of the same post.
type Comment struct {
	ID        string
	Body      string
	PostID    string
	ParentID  *string
	MPath     string
	AuthorID  string
	CreatedAt time.Time
}

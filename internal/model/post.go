package model

import "time"

// PostType is the markup format of a post body.
type PostType string

const (
	PostTypeHTML     PostType = "html"
	PostTypeMarkdown PostType = "markdown"
)

// IsValid reports whether t is a known post type.
func (t PostType) IsValid() bool {
	return t == PostTypeHTML || t == PostTypeMarkdown
}

// PostOrder is a list ordering for posts.
type PostOrder string

const (
	PostOrderDefault      PostOrder = ""
	PostOrderCreated      PostOrder = "created"
	PostOrderUpdated      PostOrder = "updated"
	PostOrderPublished    PostOrder = "published"
	PostOrderCommentCount PostOrder = "commentCount"
	PostOrderCustom       PostOrder = "custom"
)

// IsValid reports whether o is a known ordering.
func (o PostOrder) IsValid() bool {
	switch o {
	case PostOrderDefault, PostOrderCreated, PostOrderUpdated, PostOrderPublished, PostOrderCommentCount, PostOrderCustom:
		return true
	}
	return false
}

// Post is a blog article.
type Post struct {
	ID           string
	Title        string
	Body         string
	Summary      string
	Keywords     []string
	Type         PostType
	PublishedAt  *time.Time
	CustomOrder  int
	CommentCount int64
	Categories   []Category
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}

// IsPublished reports whether the post has a publish time.
func (p Post) IsPublished() bool {
	return p.PublishedAt != nil
}

// IsTrashed reports whether the post is soft-deleted.
func (p Post) IsTrashed() bool {
	return p.DeletedAt != nil
}

// CategoryIDs returns the ids of the post's categories.
func (p Post) CategoryIDs() []string {
	ids := make([]string, 0, len(p.Categories))
	for _, c := range p.Categories {
		ids = append(ids, c.ID)
	}
	return ids
}

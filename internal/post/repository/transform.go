package repository

import (
	"content-srv/internal/model"
	"content-srv/pkg/sanitize"
)

// PostTransform is applied to every post the repository loads.
type PostTransform func(p model.Post) model.Post

// SanitizeHTML cleans the body of html posts.
func SanitizeHTML(s sanitize.ISanitizer) PostTransform {
	return func(p model.Post) model.Post {
		if p.Type == model.PostTypeHTML {
			p.Body = s.Sanitize(p.Body)
		}
		return p
	}
}

// Apply runs transforms on p in order.
func Apply(p model.Post, transforms ...PostTransform) model.Post {
	for _, t := range transforms {
		if t != nil {
			p = t(p)
		}
	}
	return p
}

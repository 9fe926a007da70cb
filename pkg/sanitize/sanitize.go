// Package sanitize strips unsafe markup from user supplied HTML.
package sanitize

import (
	"github.com/microcosm-cc/bluemonday"
)

// ISanitizer cleans HTML. Implementations are safe for concurrent use.
type ISanitizer interface {
	Sanitize(html string) string
}

type sanitizerImpl struct {
	policy *bluemonday.Policy
}

// New returns a sanitizer based on the UGC policy, extended with the
// attributes the editor emits for code blocks and images.
func New() ISanitizer {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements("code", "pre", "span", "div")
	p.AllowAttrs("width", "height").Matching(bluemonday.Integer).OnElements("img")
	p.AllowAttrs("alt", "title").OnElements("img")
	p.RequireNoFollowOnLinks(true)
	p.AddTargetBlankToFullyQualifiedLinks(true)
	return &sanitizerImpl{policy: p}
}

func (s *sanitizerImpl) Sanitize(html string) string {
	return s.policy.Sanitize(html)
}

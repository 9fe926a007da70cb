package qdrant

import (
	pb "github.com/qdrant/go-client/qdrant"

	"content-srv/internal/search/repository"
	pkgQdrant "content-srv/pkg/qdrant"
)

const (
	payloadPostID    = "post_id"
	payloadTitle     = "title"
	payloadPublished = "published"
)

func buildPoint(opts repository.UpsertOptions) pkgQdrant.Point {
	return pkgQdrant.Point{
		ID:     opts.ID,
		Vector: opts.Vector,
		Payload: map[string]interface{}{
			payloadPostID:    opts.Payload.PostID,
			payloadTitle:     opts.Payload.Title,
			payloadPublished: opts.Payload.Published,
		},
	}
}

func buildFilter(opts repository.SearchOptions) *pb.Filter {
	if !opts.PublishedOnly {
		return nil
	}
	return &pb.Filter{
		Must: []*pb.Condition{pkgQdrant.MatchBool(payloadPublished, true)},
	}
}

// postID - Prefer the payload id; point ids come back in canonical uuid form.
func postID(r pkgQdrant.SearchResult) string {
	if id, ok := r.Payload[payloadPostID].(string); ok && id != "" {
		return id
	}
	return r.ID
}

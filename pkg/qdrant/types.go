package qdrant

import (
	"time"

	pb "github.com/qdrant/go-client/qdrant"
	"google.golang.org/grpc"
)

// QdrantConfig holds Qdrant connection settings.
type QdrantConfig struct {
	Host    string
	Port    int
	UseTLS  bool
	APIKey  string
	Timeout time.Duration
}

// Point is a vector with its payload. ID must be a UUID.
type Point struct {
	ID      string
	Vector  []float32
	Payload map[string]interface{}
}

// SearchResult is one scored hit.
type SearchResult struct {
	ID      string
	Score   float32
	Payload map[string]interface{}
}

type qdrantImpl struct {
	conn              *grpc.ClientConn
	pointsClient      pb.PointsClient
	collectionsClient pb.CollectionsClient
	defaultTimeout    time.Duration
}

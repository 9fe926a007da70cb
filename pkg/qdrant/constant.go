package qdrant

import "time"

const (
	// DefaultTimeout is the default timeout for Qdrant operations.
	DefaultTimeout = 30 * time.Second

	// DefaultPingTimeout bounds the ping done by NewQdrant.
	DefaultPingTimeout = 5 * time.Second

	// DefaultSearchLimit is used when a search passes limit 0.
	DefaultSearchLimit = 10

	DistanceCosine    = "cosine"
	DistanceEuclidean = "euclidean"
	DistanceDot       = "dot"
	DistanceManhattan = "manhattan"

	apiKeyHeader = "api-key"
)

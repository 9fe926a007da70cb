package repository

type EnsureCollectionOptions struct {
	VectorSize uint64
	Distance   string
}

type UpsertOptions struct {
	ID      string
	Vector  []float32
	Payload PostPayload
}

// PostPayload is stored with every point.
type PostPayload struct {
	PostID    string
	Title     string
	Published bool
}

type SearchOptions struct {
	Vector        []float32
	Limit         uint64
	PublishedOnly bool
}

type ScoredPoint struct {
	ID    string
	Score float32
}

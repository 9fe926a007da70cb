package paginator

const (
	// DefaultPage is used by delivery when the page query param is absent.
	DefaultPage = 1
	// DefaultLimit is used by delivery when the limit query param is absent.
	DefaultLimit = 15
	// MaxLimit is the largest page size accepted from clients.
	MaxLimit = 100
)

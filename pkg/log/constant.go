package log

const (
	ModeProduction  = "production"
	ModeDevelopment = "development"

	EncodingJSON    = "json"
	EncodingConsole = "console"

	// RequestIDField is the field name carrying the request id.
	RequestIDField = "request_id"
)

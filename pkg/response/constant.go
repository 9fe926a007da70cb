package response

const (
	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04:05"

	messageSuccess      = "Success"
	messageUnauthorized = "Unauthorized"
	messageForbidden    = "Forbidden"
	messageInternal     = "Something went wrong"
	messageValidation   = "Validation failed"
)

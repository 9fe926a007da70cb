package locale

const (
	// EN is English.
	EN = "en"
	// VI is Vietnamese.
	VI = "vi"

	// HeaderName is the request header carrying the preferred language.
	HeaderName = "lang"
)

// LangList contains all supported language codes.
var LangList = []string{EN, VI}

// DefaultLang is the default language when no valid locale is provided.
var DefaultLang = EN

// Locale is the context key of the request language.
type Locale struct{}

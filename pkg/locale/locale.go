package locale

import (
	"context"
	"strings"
)

// ParseLang normalises a language code. Unsupported values give DefaultLang.
func ParseLang(lang string) string {
	lang = strings.TrimSpace(strings.ToLower(lang))
	if i := strings.IndexAny(lang, "-_,;"); i > 0 {
		lang = lang[:i]
	}
	if IsValidLang(lang) {
		return lang
	}
	return DefaultLang
}

// IsValidLang reports whether the language code is supported.
func IsValidLang(lang string) bool {
	for _, supported := range LangList {
		if lang == supported {
			return true
		}
	}
	return false
}

// GetLang returns the locale from context, or DefaultLang if not set.
func GetLang(ctx context.Context) string {
	lang, ok := ctx.Value(Locale{}).(string)
	if !ok || lang == "" {
		return DefaultLang
	}
	return lang
}

// SetLocaleToContext stores the parsed lang in ctx.
func SetLocaleToContext(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, Locale{}, ParseLang(lang))
}

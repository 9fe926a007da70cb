package middleware

import (
	"content-srv/pkg/locale"

	"github.com/gin-gonic/gin"
)

// Locale stores the language from the lang header, falling back to Accept-Language.
func (m Middleware) Locale() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := c.GetHeader(locale.HeaderName)
		if lang == "" {
			lang = c.GetHeader("Accept-Language")
		}

		ctx := locale.SetLocaleToContext(c.Request.Context(), lang)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

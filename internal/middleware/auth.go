package middleware

import (
	"strings"

	"content-srv/pkg/response"
	"content-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

const bearerPrefix = "Bearer "

// Auth rejects requests without a valid token and stores the caller scope on the request context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := m.token(c)
		if tokenString == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		payload, err := m.jwtManager.Verify(tokenString)
		if err != nil {
			m.l.Debugf(c.Request.Context(), "middleware.Auth: Invalid token: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		ctx := c.Request.Context()
		ctx = scope.SetPayloadToContext(ctx, payload)
		ctx = scope.SetScopeToContext(ctx, scope.NewScope(payload))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// token reads the Authorization header first, then the auth cookie.
func (m Middleware) token(c *gin.Context) string {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
	}
	if m.cookieName == "" {
		return ""
	}
	tokenString, err := c.Cookie(m.cookieName)
	if err != nil {
		return ""
	}
	return tokenString
}

package response

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"content-srv/pkg/discord"
	pkgErrors "content-srv/pkg/errors"

	"github.com/gin-gonic/gin"
)

// OK writes a 200 response with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: 0,
		Message:   messageSuccess,
		Data:      data,
	})
}

// Error writes err as a JSON response. HTTPError and ValidationError keep their status.
// Anything else becomes a 500 and, when d is set, is reported.
func Error(c *gin.Context, err error, d discord.IDiscord) {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		c.JSON(httpErr.StatusCode, Resp{
			ErrorCode: httpErr.Code,
			Message:   httpErr.Message,
		})
		return
	}

	var valErr *pkgErrors.ValidationError
	if errors.As(err, &valErr) {
		c.JSON(http.StatusBadRequest, Resp{
			ErrorCode: http.StatusBadRequest,
			Message:   messageValidation,
			Errors:    valErr.Fields,
		})
		return
	}

	if d != nil {
		report(c.Request.Context(), d, fmt.Sprintf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err))
	}
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   messageInternal,
	})
}

// Unauthorized writes a 401 response.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Resp{
		ErrorCode: http.StatusUnauthorized,
		Message:   messageUnauthorized,
	})
}

// Forbidden writes a 403 response.
func Forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, Resp{
		ErrorCode: http.StatusForbidden,
		Message:   messageForbidden,
	})
}

// PanicError writes a 500 response for a recovered panic and reports the stack.
func PanicError(c *gin.Context, err any, d discord.IDiscord) {
	if d != nil {
		report(c.Request.Context(), d, fmt.Sprintf("panic on %s %s: %v\n%s",
			c.Request.Method, c.Request.URL.Path, err, debug.Stack()))
	}
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   messageInternal,
	})
}

func report(ctx context.Context, d discord.IDiscord, msg string) {
	go func() {
		_ = d.ReportBug(context.WithoutCancel(ctx), msg)
	}()
}

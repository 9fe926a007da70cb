package http

import (
	"content-srv/internal/crud"
	"content-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) error {
	return crud.Register(r.Group("/api/v1/posts"), h, crud.All, mw.Auth())
}

package http

import (
	"content-srv/internal/crud"
	"content-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) error {
	api := r.Group("/api/v1/categories")
	api.GET("/tree", h.Tree)
	return crud.Register(api, h, crud.All, mw.Auth())
}

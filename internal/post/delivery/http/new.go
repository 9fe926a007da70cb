package http

import (
	"content-srv/internal/middleware"
	"content-srv/internal/post"
	"content-srv/pkg/discord"
	"content-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) error
}

type handler struct {
	l       log.Logger
	uc      post.UseCase
	discord discord.IDiscord
}

func New(l log.Logger, uc post.UseCase, discord discord.IDiscord) Handler {
	return &handler{
		l:       l,
		uc:      uc,
		discord: discord,
	}
}

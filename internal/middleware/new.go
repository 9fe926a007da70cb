package middleware

import (
	"content-srv/pkg/log"
	"content-srv/pkg/scope"
)

type Middleware struct {
	l          log.Logger
	jwtManager scope.Manager
	cookieName string
}

func New(l log.Logger, jwtManager scope.Manager, cookieName string) Middleware {
	return Middleware{
		l:          l,
		jwtManager: jwtManager,
		cookieName: cookieName,
	}
}

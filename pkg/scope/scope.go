package scope

import (
	"context"

	"content-srv/internal/model"
)

// Manager verifies an access token and returns its payload.
type Manager interface {
	Verify(token string) (Payload, error)
}

// Payload is the verified content of an access token.
type Payload struct {
	UserID    string
	Username  string
	Role      string
	Subject   string
	ID        string
	Issuer    string
	ExpiresAt int64
	IssuedAt  int64
}

type (
	payloadKey struct{}
	scopeKey   struct{}
)

// NewScope creates a scope from a token payload. Subject is used when UserID is empty.
func NewScope(payload Payload) model.Scope {
	userID := payload.UserID
	if userID == "" {
		userID = payload.Subject
	}

	return model.Scope{
		UserID:   userID,
		Username: payload.Username,
		Role:     payload.Role,
	}
}

// SystemScope is the scope used by background workers.
func SystemScope() model.Scope {
	return model.Scope{
		UserID: model.SystemUserID,
		Role:   model.RoleSystem,
	}
}

func SetPayloadToContext(ctx context.Context, payload Payload) context.Context {
	return context.WithValue(ctx, payloadKey{}, payload)
}

func GetPayloadFromContext(ctx context.Context) (Payload, bool) {
	p, ok := ctx.Value(payloadKey{}).(Payload)
	return p, ok
}

func SetScopeToContext(ctx context.Context, sc model.Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, sc)
}

// GetScopeFromContext returns the request scope, or the zero scope for anonymous requests.
func GetScopeFromContext(ctx context.Context) model.Scope {
	sc, _ := ctx.Value(scopeKey{}).(model.Scope)
	return sc
}

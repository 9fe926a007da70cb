package jwt

import (
	"fmt"

	"content-srv/pkg/scope"
)

// IManager verifies HS256 tokens. GenerateToken exists for tests and local tooling;
// production tokens are issued by the identity service.
type IManager interface {
	scope.Manager
	GenerateToken(userID, email, role string, groups []string) (string, error)
	VerifyToken(tokenString string) (*Claims, error)
}

// New creates a new JWT manager.
func New(cfg Config) (IManager, error) {
	if len(cfg.SecretKey) < MinSecretKeyLen {
		return nil, fmt.Errorf("jwt: secret key must be at least %d characters long, got %d", MinSecretKeyLen, len(cfg.SecretKey))
	}
	return &managerImpl{
		secretKey: []byte(cfg.SecretKey),
		issuer:    cfg.Issuer,
		audience:  cfg.Audience,
		ttl:       cfg.TTL,
	}, nil
}

package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Config holds JWT manager configuration.
type Config struct {
	SecretKey string
	Issuer    string
	Audience  []string
	TTL       time.Duration
}

type managerImpl struct {
	secretKey []byte
	issuer    string
	audience  []string
	ttl       time.Duration
}

// Claims represents the JWT claims issued by the identity service.
type Claims struct {
	Email  string   `json:"email"`
	Role   string   `json:"role"`
	Groups []string `json:"groups,omitempty"`
	jwt.RegisteredClaims
}

package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "0123456789abcdef0123456789abcdef"

func TestNew_ShortSecret(t *testing.T) {
	_, err := New(Config{SecretKey: "short"})
	assert.Error(t, err)
}

func TestVerify(t *testing.T) {
	m, err := New(Config{SecretKey: secret, Issuer: "identity", Audience: []string{"content"}, TTL: time.Hour})
	require.NoError(t, err)

	token, err := m.GenerateToken("user-1", "a@b.c", "admin", nil)
	require.NoError(t, err)

	p, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", p.UserID)
	assert.Equal(t, "a@b.c", p.Username)
	assert.Equal(t, "admin", p.Role)
	assert.NotEmpty(t, p.ID)
	assert.Greater(t, p.ExpiresAt, p.IssuedAt)
}

func TestVerify_Rejects(t *testing.T) {
	m, err := New(Config{SecretKey: secret, Issuer: "identity", Audience: []string{"content"}, TTL: time.Hour})
	require.NoError(t, err)

	other, err := New(Config{SecretKey: secret + "x", Issuer: "identity", Audience: []string{"content"}, TTL: time.Hour})
	require.NoError(t, err)
	wrongKey, err := other.GenerateToken("u", "", "", nil)
	require.NoError(t, err)

	expiredMgr, err := New(Config{SecretKey: secret, Issuer: "identity", Audience: []string{"content"}, TTL: -time.Minute})
	require.NoError(t, err)
	expired, err := expiredMgr.GenerateToken("u", "", "", nil)
	require.NoError(t, err)

	otherIssuer, err := New(Config{SecretKey: secret, Issuer: "someone", Audience: []string{"content"}, TTL: time.Hour})
	require.NoError(t, err)
	wrongIssuer, err := otherIssuer.GenerateToken("u", "", "", nil)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-token"},
		{name: "wrong key", token: wrongKey},
		{name: "expired", token: expired},
		{name: "wrong issuer", token: wrongIssuer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.Verify(tt.token)
			assert.Error(t, err)
		})
	}
}

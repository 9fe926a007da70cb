package jwt

const (
	// MinSecretKeyLen is the minimum length for the HS256 secret key.
	MinSecretKeyLen = 32
)

package redis

import "errors"

var (
	ErrHostRequired = errors.New("redis: host is required")
	ErrInvalidPort  = errors.New("redis: port must be between 1 and 65535")
	// ErrKeyNotFound is returned by Get for a missing key.
	ErrKeyNotFound = errors.New("redis: key not found")
)

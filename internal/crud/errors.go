package crud

import "errors"

var (
	ErrCapabilityMissing = errors.New("crud: handler does not implement capability")
	ErrUnknownCapability = errors.New("crud: unknown capability")
)

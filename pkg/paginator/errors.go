package paginator

import "errors"

var (
	ErrInvalidArgument = errors.New("paginator: invalid argument")
)

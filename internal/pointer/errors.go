package pointer

import "errors"

var (
	ErrUnknownDriver     = errors.New("unknown pointer driver")
	ErrDriverRegistered  = errors.New("pointer driver already registered")
	ErrBackend           = errors.New("pointer backend failed")
	ErrInvalidBounds     = errors.New("invalid screen bounds")
	ErrInvalidClickCount = errors.New("click count must be positive")
)

package config

import "errors"

var (
	ErrConfigUnmarshal  = errors.New("failed to unmarshal config")
	ErrConfigNotPointer = errors.New("config must be a non-nil pointer")
)

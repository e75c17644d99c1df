package button

import "errors"

var (
	ErrInvalidPinSpec = errors.New("invalid pin specification")
	ErrUnknownDriver  = errors.New("unknown button driver")
	ErrPinNotFound    = errors.New("GPIO pin not found")
	ErrPinConfig      = errors.New("failed to configure GPIO pin")
	ErrPeriphInit     = errors.New("failed to initialize periph.io")
	ErrChipOpen       = errors.New("failed to open GPIO chip")
	ErrRead           = errors.New("failed to read button")
)

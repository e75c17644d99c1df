package adc

import "errors"

// Channel and frame errors
var (
	ErrInvalidChannel = errors.New("invalid adc channel")
	ErrShortRead      = errors.New("short read from adc")
)

// Transport errors
var (
	ErrPeriphInitFailed = errors.New("failed to initialize periph.io")
	ErrSPIPortOpen      = errors.New("failed to open SPI port")
	ErrSPIConnect       = errors.New("failed to connect to SPI")
	ErrTransfer         = errors.New("adc transfer failed")
)

package joystick

import (
	"errors"

	"github.com/larsks/joymouse/internal/adc"
	"github.com/larsks/joymouse/internal/axis"
)

// Configuration errors
var (
	ErrInvalidMode         = errors.New("invalid mode")
	ErrInvalidEdgeMode     = errors.New("invalid edge mode")
	ErrInvalidScreen       = errors.New("invalid screen dimensions")
	ErrInvalidSensitivity  = errors.New("sensitivity must be positive")
	ErrInvalidPollInterval = errors.New("poll interval must be positive")
	ErrInvalidDebounce     = errors.New("debounce window must not be negative")
	ErrInvalidCenter       = errors.New("center must lie strictly inside the sample range")
	ErrInvalidMaxFailures  = errors.New("max failures must not be negative")
	ErrSameChannel         = errors.New("x and y must use different channels")
	ErrInvalidButtonDriver = errors.New("invalid button driver")
	ErrNoPointer           = errors.New("no pointer backend")
	ErrNoADC               = errors.New("no adc transport")
)

// Runtime errors
var (
	ErrTooManyFailures = errors.New("too many consecutive failures")
)

// IsFatal reports whether err should stop the control loop rather than
// abort a single cycle.
func IsFatal(err error) bool {
	return errors.Is(err, adc.ErrInvalidChannel) ||
		errors.Is(err, axis.ErrDegenerateRange) ||
		errors.Is(err, ErrTooManyFailures)
}

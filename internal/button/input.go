// Package button reads a push-button from a GPIO line and debounces it
// into click events.
package button

import (
	"fmt"
	"strings"
)

// Input reports the logical state of a button (true = pressed).
type Input interface {
	Read() (bool, error)
	Close() error
}

const (
	DriverGPIOCDev = "gpiocdev"
	DriverPeriph   = "periph"
	DriverNone     = "none"

	DefaultChip = "gpiochip0"
)

// Drivers lists the accepted driver names.
func Drivers() []string {
	return []string{DriverGPIOCDev, DriverPeriph, DriverNone}
}

// Open opens the button described by spec using the named driver. The
// "none" driver returns a nil Input and no error.
func Open(driver, chip, spec string) (Input, error) {
	if strings.ToLower(driver) == DriverNone {
		return nil, nil
	}

	ps, err := ParsePin(spec)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(driver) {
	case DriverGPIOCDev:
		in, err := OpenCDev(chip, ps)
		if err != nil {
			return nil, err
		}
		return in, nil
	case DriverPeriph:
		in, err := OpenPeriph(ps)
		if err != nil {
			return nil, err
		}
		return in, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownDriver, driver)
	}
}

package button

import (
	"fmt"
	"strconv"
	"strings"
)

// Polarity is the electrical level that means "pressed".
type Polarity int

const (
	ActiveHigh Polarity = iota
	ActiveLow
)

// PullMode is the bias applied to the input line.
type PullMode int

const (
	PullNone PullMode = iota
	PullUp
	PullDown
)

// DefaultPinSpec matches the usual joystick module wiring: the switch
// line is biased down and a low reading triggers the click. A switch that
// shorts the line to ground needs ":pull-up" instead, otherwise the idle
// line reads low and clicks once per debounce window.
const DefaultPinSpec = "GPIO23:active-low:pull-down"

// PinSpec is a parsed button pin specification.
type PinSpec struct {
	Name     string
	LineNum  int
	Polarity Polarity
	PullMode PullMode
}

// ParsePin parses "pin[:active-high|active-low][:pull-none|pull-up|pull-down]".
// The pin may be given as "GPIO23" or "23". Unspecified options default to
// active-high with a pull-down.
func ParsePin(spec string) (*PinSpec, error) {
	parts := strings.Split(spec, ":")
	name := strings.TrimSpace(parts[0])
	if name == "" {
		return nil, fmt.Errorf("%w: %q: empty pin", ErrInvalidPinSpec, spec)
	}

	lineNum, err := ParsePinNumber(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidPinSpec, spec, err)
	}

	ps := &PinSpec{
		Name:     name,
		LineNum:  lineNum,
		Polarity: ActiveHigh,
		PullMode: PullDown,
	}

	for _, part := range parts[1:] {
		switch strings.ToLower(strings.TrimSpace(part)) {
		case "active-high":
			ps.Polarity = ActiveHigh
		case "active-low":
			ps.Polarity = ActiveLow
		case "pull-none":
			ps.PullMode = PullNone
		case "pull-up":
			ps.PullMode = PullUp
		case "pull-down":
			ps.PullMode = PullDown
		default:
			return nil, fmt.Errorf("%w: %q: unknown parameter %q", ErrInvalidPinSpec, spec, part)
		}
	}

	return ps, nil
}

// ParsePinNumber accepts "GPIO<n>" (any case) or "<n>".
func ParsePinNumber(name string) (int, error) {
	num := name
	if upper := strings.ToUpper(name); strings.HasPrefix(upper, "GPIO") {
		num = upper[len("GPIO"):]
	}
	lineNum, err := strconv.Atoi(num)
	if err != nil || lineNum < 0 {
		return 0, fmt.Errorf("invalid GPIO pin format: %s (expected GPIO<number> or <number>)", name)
	}
	return lineNum, nil
}

// Active reports whether an electrical level (true = high) means pressed.
func (ps *PinSpec) Active(high bool) bool {
	return high == (ps.Polarity == ActiveHigh)
}

func (p Polarity) String() string {
	switch p {
	case ActiveHigh:
		return "active-high"
	case ActiveLow:
		return "active-low"
	default:
		return "unknown"
	}
}

func (pm PullMode) String() string {
	switch pm {
	case PullNone:
		return "pull-none"
	case PullUp:
		return "pull-up"
	case PullDown:
		return "pull-down"
	default:
		return "unknown"
	}
}

func (ps *PinSpec) String() string {
	return fmt.Sprintf("GPIO%d:%s:%s", ps.LineNum, ps.Polarity, ps.PullMode)
}

package button

import (
	"time"
)

// State is the debounced state of a button.
type State int

const (
	Released State = iota
	PressedDebounced
)

// Debouncer turns raw active samples into click events. A click is
// emitted on an active sample only when no click has been emitted within
// the last window, so a held button produces one click per window.
type Debouncer struct {
	window    time.Duration
	lastClick time.Time
	clicked   bool
}

func NewDebouncer(window time.Duration) *Debouncer {
	return &Debouncer{window: window}
}

// Poll records a sample taken at now and reports whether it produced a
// click.
func (d *Debouncer) Poll(active bool, now time.Time) bool {
	if !active || d.State(now) != Released {
		return false
	}
	d.lastClick = now
	d.clicked = true
	return true
}

// State reports PressedDebounced while now is inside the window opened by
// the last click.
func (d *Debouncer) State(now time.Time) State {
	if d.clicked && now.Sub(d.lastClick) < d.window {
		return PressedDebounced
	}
	return Released
}

func (d *Debouncer) Window() time.Duration {
	return d.window
}

// Reset forgets the last click.
func (d *Debouncer) Reset() {
	d.clicked = false
	d.lastClick = time.Time{}
}

func (s State) String() string {
	switch s {
	case Released:
		return "released"
	case PressedDebounced:
		return "pressed"
	default:
		return "unknown"
	}
}

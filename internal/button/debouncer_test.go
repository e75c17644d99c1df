package button

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDebouncerSingleClickPerWindow(t *testing.T) {
	d := NewDebouncer(200 * time.Millisecond)
	start := time.Unix(1000, 0)

	clicks := 0
	// Three active polls 10ms apart, all within one window.
	for i := 0; i < 3; i++ {
		if d.Poll(true, start.Add(time.Duration(i)*10*time.Millisecond)) {
			clicks++
		}
	}
	assert.Equal(t, 1, clicks)
	assert.Equal(t, PressedDebounced, d.State(start.Add(20*time.Millisecond)))
}

func TestDebouncerHeldButton(t *testing.T) {
	window := 200 * time.Millisecond
	d := NewDebouncer(window)
	start := time.Unix(1000, 0)

	// Hold for one second, sampling every 10ms.
	var clickTimes []time.Duration
	for elapsed := time.Duration(0); elapsed < time.Second; elapsed += 10 * time.Millisecond {
		if d.Poll(true, start.Add(elapsed)) {
			clickTimes = append(clickTimes, elapsed)
		}
	}

	assert.Equal(t, []time.Duration{
		0,
		200 * time.Millisecond,
		400 * time.Millisecond,
		600 * time.Millisecond,
		800 * time.Millisecond,
	}, clickTimes)
}

func TestDebouncerInactive(t *testing.T) {
	d := NewDebouncer(200 * time.Millisecond)
	now := time.Unix(1000, 0)

	assert.False(t, d.Poll(false, now))
	assert.Equal(t, Released, d.State(now))

	assert.True(t, d.Poll(true, now.Add(time.Millisecond)))
	assert.False(t, d.Poll(false, now.Add(2*time.Millisecond)))
	assert.False(t, d.Poll(true, now.Add(3*time.Millisecond)))
	assert.Equal(t, Released, d.State(now.Add(201*time.Millisecond)))
	assert.True(t, d.Poll(true, now.Add(201*time.Millisecond)))
}

func TestDebouncerReset(t *testing.T) {
	d := NewDebouncer(time.Second)
	now := time.Unix(1000, 0)

	assert.True(t, d.Poll(true, now))
	d.Reset()
	assert.True(t, d.Poll(true, now.Add(time.Millisecond)))
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "released", Released.String())
	assert.Equal(t, "pressed", PressedDebounced.String())
	assert.Equal(t, "unknown", State(42).String())
}

package button

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePin(t *testing.T) {
	tests := []struct {
		input    string
		line     int
		polarity Polarity
		pull     PullMode
	}{
		{"GPIO23", 23, ActiveHigh, PullDown},
		{"23", 23, ActiveHigh, PullDown},
		{"gpio18:active-low", 18, ActiveLow, PullDown},
		{"GPIO23:active-low:pull-down", 23, ActiveLow, PullDown},
		{"GPIO5:pull-up:active-low", 5, ActiveLow, PullUp},
		{"GPIO6:PULL-NONE", 6, ActiveHigh, PullNone},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			ps, err := ParsePin(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.line, ps.LineNum)
			assert.Equal(t, tt.polarity, ps.Polarity)
			assert.Equal(t, tt.pull, ps.PullMode)
		})
	}
}

func TestParsePinErrors(t *testing.T) {
	for _, input := range []string{"", "GPIO", "GPIOx", "-1", "GPIO23:sideways"} {
		_, err := ParsePin(input)
		assert.ErrorIs(t, err, ErrInvalidPinSpec, "input %q", input)
	}
}

func TestDefaultPinSpec(t *testing.T) {
	ps, err := ParsePin(DefaultPinSpec)
	require.NoError(t, err)
	assert.Equal(t, "GPIO23:active-low:pull-down", ps.String())

	// A low line is a press.
	assert.True(t, ps.Active(false))
	assert.False(t, ps.Active(true))
}

func TestOpenNone(t *testing.T) {
	in, err := Open("none", "", "")
	assert.NoError(t, err)
	assert.Nil(t, in)
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := Open("carrier-pigeon", "", "GPIO23")
	assert.ErrorIs(t, err, ErrUnknownDriver)
}

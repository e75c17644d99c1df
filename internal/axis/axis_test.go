package axis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilter(t *testing.T) {
	tests := []struct {
		name   string
		sample uint16
		radius uint16
		expect uint16
	}{
		{"at center", 512, 100, 512},
		{"inside below", 413, 100, 512},
		{"inside above", 611, 100, 512},
		{"on lower edge", 412, 100, 412},
		{"on upper edge", 612, 100, 612},
		{"far low", 0, 100, 0},
		{"far high", 1023, 100, 1023},
		{"disabled", 513, 0, 513},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, Filter(tt.sample, 512, tt.radius))
		})
	}
}

func TestFilterProperties(t *testing.T) {
	const center, radius = 512, 100
	for s := uint16(0); s <= 1023; s++ {
		out := Filter(s, center, radius)
		d := int(s) - center
		if d < 0 {
			d = -d
		}
		if d < radius {
			assert.Equal(t, uint16(center), out, "sample %d", s)
		} else {
			assert.Equal(t, s, out, "sample %d", s)
		}
		assert.Equal(t, out, Filter(out, center, radius), "idempotent at %d", s)
		assert.LessOrEqual(t, out, uint16(1023))
	}
}

func TestMapperEndpoints(t *testing.T) {
	m, err := NewMapper(0, 1023, -51.2, 51.2)
	require.NoError(t, err)

	assert.InDelta(t, -51.2, m.Map(0), 1e-9)
	assert.InDelta(t, 51.2, m.Map(1023), 1e-9)
}

func TestMapperMonotonic(t *testing.T) {
	m, err := Symmetric(0, 1023, 30)
	require.NoError(t, err)

	prev := m.Map(0)
	for v := 1; v <= 1023; v++ {
		cur := m.Map(float64(v))
		assert.Greater(t, cur, prev, "value %d", v)
		prev = cur
	}
}

func TestMapperLinear(t *testing.T) {
	m, err := NewMapper(0, 1023, -1, 1)
	require.NoError(t, err)

	a, b := 100.0, 900.0
	assert.InDelta(t, (m.Map(a)+m.Map(b))/2, m.Map((a+b)/2), 1e-9)
}

func TestDegenerateRange(t *testing.T) {
	_, err := NewMapper(5, 5, 0, 1)
	assert.ErrorIs(t, err, ErrDegenerateRange)

	_, err = Map(5, 5, 5, 0, 1)
	assert.ErrorIs(t, err, ErrDegenerateRange)
}

func TestCentered(t *testing.T) {
	c, err := NewCentered(0, 600, 1023, 30)
	require.NoError(t, err)

	assert.InDelta(t, -30, c.Map(0), 1e-9)
	assert.InDelta(t, 0, c.Map(600), 1e-9)
	assert.InDelta(t, 30, c.Map(1023), 1e-9)
	assert.InDelta(t, -15, c.Map(300), 1e-9)

	prev := c.Map(0)
	for v := 1; v <= 1023; v++ {
		cur := c.Map(float64(v))
		assert.Greater(t, cur, prev, "value %d", v)
		prev = cur
	}
}

func TestCenteredDegenerate(t *testing.T) {
	for _, center := range []float64{0, 1023, -1, 2000} {
		_, err := NewCentered(0, center, 1023, 30)
		assert.ErrorIs(t, err, ErrDegenerateRange, "center %g", center)
	}
}

func TestMap(t *testing.T) {
	v, err := Map(512, 0, 1023, 0, 1023)
	require.NoError(t, err)
	assert.InDelta(t, 512, v, 1e-9)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, 51, Truncate(51.2))
	assert.Equal(t, -51, Truncate(-51.2))
	assert.Equal(t, 0, Truncate(0.05))
	assert.Equal(t, 0, Truncate(-0.99))
}

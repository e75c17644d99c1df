package pointer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDummy(t *testing.T) {
	d := NewDummy(1024, 600)
	d.SetQuiet(true)

	x, y, err := d.Position()
	require.NoError(t, err)
	assert.Equal(t, 512, x)
	assert.Equal(t, 300, y)

	require.NoError(t, d.SetPosition(10, 20))
	require.NoError(t, d.MoveRelative(5, -5))
	x, y, _ = d.Position()
	assert.Equal(t, 15, x)
	assert.Equal(t, 15, y)

	require.NoError(t, d.Click(Left, 1))
	require.NoError(t, d.Click(Left, 2))
	assert.Equal(t, 3, d.Clicks(Left))
	assert.Equal(t, 0, d.Clicks(Right))
	assert.ErrorIs(t, d.Click(Left, 0), ErrInvalidClickCount)

	require.NoError(t, d.Scroll(0, 2))
	sx, sy := d.Scrolled()
	assert.Equal(t, 0, sx)
	assert.Equal(t, 2, sy)

	w, h, err := d.ScreenSize()
	require.NoError(t, err)
	assert.Equal(t, 1024, w)
	assert.Equal(t, 600, h)

	assert.NoError(t, d.Close())
}

func TestRegistry(t *testing.T) {
	assert.Contains(t, ListDrivers(), "dummy")

	b, err := Open("dummy")
	require.NoError(t, err)
	assert.IsType(t, &Dummy{}, b)

	_, err = Open("nonexistent")
	assert.ErrorIs(t, err, ErrUnknownDriver)

	r := NewRegistry()
	require.NoError(t, r.Register("a", func() (Backend, error) { return NewDummy(1, 1), nil }))
	assert.ErrorIs(t, r.Register("a", nil), ErrDriverRegistered)
	assert.Equal(t, []string{"a"}, r.ListDrivers())
}

func TestButton(t *testing.T) {
	assert.Equal(t, "left", Left.String())
	assert.Equal(t, "center", Middle.String())

	b, err := ParseButton("middle")
	require.NoError(t, err)
	assert.Equal(t, Middle, b)

	_, err = ParseButton("thumb")
	assert.Error(t, err)
}

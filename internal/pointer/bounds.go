package pointer

import (
	"fmt"
	"strings"
)

// EdgeMode selects what happens when a move would leave the screen.
type EdgeMode int

const (
	EdgeClamp EdgeMode = iota
	EdgeWrap
)

// Bounds is the on-screen area [0, Width-1] x [0, Height-1].
type Bounds struct {
	Width  int
	Height int
}

func NewBounds(width, height int) (Bounds, error) {
	if width <= 0 || height <= 0 {
		return Bounds{}, fmt.Errorf("%w: %dx%d", ErrInvalidBounds, width, height)
	}
	return Bounds{Width: width, Height: height}, nil
}

// Apply brings (x, y) inside the bounds according to mode.
func (b Bounds) Apply(mode EdgeMode, x, y int) (int, int) {
	if mode == EdgeWrap {
		return wrap(x, b.Width), wrap(y, b.Height)
	}
	return clamp(x, b.Width-1), clamp(y, b.Height-1)
}

func (b Bounds) Contains(x, y int) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

func (b Bounds) String() string {
	return fmt.Sprintf("%dx%d", b.Width, b.Height)
}

func clamp(v, maxVal int) int {
	return max(0, min(maxVal, v))
}

func wrap(v, size int) int {
	return ((v % size) + size) % size
}

func ParseEdgeMode(s string) (EdgeMode, error) {
	switch strings.ToLower(s) {
	case "clamp", "":
		return EdgeClamp, nil
	case "wrap":
		return EdgeWrap, nil
	default:
		return 0, fmt.Errorf("unknown edge mode: %s (must be clamp or wrap)", s)
	}
}

func (m EdgeMode) String() string {
	switch m {
	case EdgeClamp:
		return "clamp"
	case EdgeWrap:
		return "wrap"
	default:
		return "unknown"
	}
}

// Package pointer abstracts the host cursor: reading and setting its
// position, relative moves, clicks and scrolling.
package pointer

import "fmt"

// Button identifies a pointer button.
type Button int

const (
	Left Button = iota
	Right
	Middle
)

// Backend drives the host pointer. Calls are synchronous and their effect
// is visible to the next Position call.
type Backend interface {
	Position() (x, y int, err error)
	SetPosition(x, y int) error
	MoveRelative(dx, dy int) error
	Click(button Button, count int) error
	Scroll(dx, dy int) error
	ScreenSize() (width, height int, err error)
	Close() error
}

func (b Button) String() string {
	switch b {
	case Left:
		return "left"
	case Right:
		return "right"
	case Middle:
		return "center"
	default:
		return fmt.Sprintf("button%d", int(b))
	}
}

// ParseButton accepts "left", "right", "middle" or "center".
func ParseButton(name string) (Button, error) {
	switch name {
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	case "middle", "center":
		return Middle, nil
	default:
		return 0, fmt.Errorf("unknown button: %s", name)
	}
}

// Package robotgo drives the host pointer through go-vgo/robotgo. Importing
// it registers the "robotgo" pointer driver.
package robotgo

import (
	"fmt"
	"log"

	"github.com/go-vgo/robotgo"

	"github.com/larsks/joymouse/internal/pointer"
)

// Backend is the host pointer as seen by robotgo.
type Backend struct{}

func New() *Backend {
	return &Backend{}
}

func (b *Backend) Position() (int, int, error) {
	x, y := robotgo.Location()
	return x, y, nil
}

func (b *Backend) SetPosition(x, y int) error {
	robotgo.Move(x, y)
	return nil
}

func (b *Backend) MoveRelative(dx, dy int) error {
	robotgo.MoveRelative(dx, dy)
	return nil
}

func (b *Backend) Click(button pointer.Button, count int) error {
	if count <= 0 {
		return fmt.Errorf("%w: %d", pointer.ErrInvalidClickCount, count)
	}

	name := button.String()
	for count > 0 {
		if count >= 2 {
			robotgo.Click(name, true)
			count -= 2
			continue
		}
		robotgo.Click(name, false)
		count--
	}
	return nil
}

func (b *Backend) Scroll(dx, dy int) error {
	robotgo.Scroll(dx, dy)
	return nil
}

func (b *Backend) ScreenSize() (int, int, error) {
	w, h := robotgo.GetScreenSize()
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("%w: robotgo reported screen size %dx%d", pointer.ErrBackend, w, h)
	}
	return w, h, nil
}

func (b *Backend) Close() error {
	log.Printf("closing robotgo pointer")
	return nil
}

func (b *Backend) String() string {
	return "robotgo pointer"
}

var _ pointer.Backend = (*Backend)(nil)

func init() {
	pointer.MustRegister("robotgo", func() (pointer.Backend, error) {
		return New(), nil
	})
}

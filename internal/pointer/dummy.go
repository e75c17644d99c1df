package pointer

import (
	"fmt"
	"log"
	"sync"
)

// Dummy is an in-memory pointer for running without a display. It logs
// every actuation.
type Dummy struct {
	bounds Bounds
	x, y   int
	clicks map[Button]int
	scroll [2]int
	quiet  bool
	mutex  sync.RWMutex
}

func NewDummy(width, height int) *Dummy {
	return &Dummy{
		bounds: Bounds{Width: width, Height: height},
		x:      width / 2,
		y:      height / 2,
		clicks: make(map[Button]int),
	}
}

// SetQuiet disables logging.
func (d *Dummy) SetQuiet(quiet bool) {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	d.quiet = quiet
}

func (d *Dummy) logf(format string, v ...any) {
	if !d.quiet {
		log.Printf(format, v...)
	}
}

func (d *Dummy) Position() (int, int, error) {
	d.mutex.RLock()
	defer d.mutex.RUnlock()
	return d.x, d.y, nil
}

func (d *Dummy) SetPosition(x, y int) error {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.logf("dummy pointer: move to (%d, %d)", x, y)
	d.x, d.y = x, y
	return nil
}

func (d *Dummy) MoveRelative(dx, dy int) error {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.logf("dummy pointer: move by (%d, %d)", dx, dy)
	d.x += dx
	d.y += dy
	return nil
}

func (d *Dummy) Click(button Button, count int) error {
	if count <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidClickCount, count)
	}

	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.logf("dummy pointer: %s click x%d at (%d, %d)", button, count, d.x, d.y)
	d.clicks[button] += count
	return nil
}

func (d *Dummy) Scroll(dx, dy int) error {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.logf("dummy pointer: scroll (%d, %d)", dx, dy)
	d.scroll[0] += dx
	d.scroll[1] += dy
	return nil
}

func (d *Dummy) ScreenSize() (int, int, error) {
	return d.bounds.Width, d.bounds.Height, nil
}

// Clicks returns the number of clicks delivered for button.
func (d *Dummy) Clicks(button Button) int {
	d.mutex.RLock()
	defer d.mutex.RUnlock()
	return d.clicks[button]
}

// Scrolled returns the accumulated scroll offsets.
func (d *Dummy) Scrolled() (int, int) {
	d.mutex.RLock()
	defer d.mutex.RUnlock()
	return d.scroll[0], d.scroll[1]
}

func (d *Dummy) Close() error {
	d.logf("closing dummy pointer")
	return nil
}

func (d *Dummy) String() string {
	return fmt.Sprintf("dummy pointer %s", d.bounds)
}

// DummyWidth and DummyHeight size the registered "dummy" driver.
const (
	DummyWidth  = 1024
	DummyHeight = 600
)

func init() {
	MustRegister("dummy", func() (Backend, error) {
		return NewDummy(DummyWidth, DummyHeight), nil
	})
}

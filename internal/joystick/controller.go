// Package joystick turns analog stick samples into pointer movement and
// button samples into clicks.
package joystick

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.uber.org/multierr"

	"github.com/larsks/joymouse/internal/adc"
	"github.com/larsks/joymouse/internal/axis"
	"github.com/larsks/joymouse/internal/button"
	"github.com/larsks/joymouse/internal/pointer"
)

// RunState is the state of the control loop.
type RunState int

const (
	Stopped RunState = iota
	Running
)

// Controller runs the sample, filter, map, actuate cycle.
type Controller struct {
	cfg       *Config
	mode      Mode
	edge      pointer.EdgeMode
	bounds    pointer.Bounds
	reader    *adc.Reader
	dev       Devices
	debouncer *button.Debouncer
	xMap      *axis.Centered
	yMap      *axis.Centered
	state     RunState
	failures  int
	now       func() time.Time
}

// NewController validates cfg and prepares the controller. A screen
// dimension of 0 is filled in from the pointer backend.
func NewController(cfg *Config, dev Devices) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if dev.ADC == nil {
		return nil, ErrNoADC
	}
	if dev.Pointer == nil {
		return nil, ErrNoPointer
	}

	mode, _ := ParseMode(cfg.Mode)
	edge, _ := pointer.ParseEdgeMode(cfg.EdgeMode)

	width, height := cfg.ScreenWidth, cfg.ScreenHeight
	if width == 0 || height == 0 {
		w, h, err := dev.Pointer.ScreenSize()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidScreen, err)
		}
		if width == 0 {
			width = w
		}
		if height == 0 {
			height = h
		}
	}
	bounds, err := pointer.NewBounds(width, height)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScreen, err)
	}

	xLimit := cfg.Sensitivity * float64(width)
	yLimit := cfg.Sensitivity * float64(height)
	if mode == Velocity && cfg.VelocityScale > 0 {
		xLimit, yLimit = cfg.VelocityScale, cfg.VelocityScale
	}

	center := float64(cfg.Center)
	xMap, err := axis.NewCentered(0, center, float64(adc.MaxSample), xLimit)
	if err != nil {
		return nil, err
	}
	yMap, err := axis.NewCentered(0, center, float64(adc.MaxSample), yLimit)
	if err != nil {
		return nil, err
	}

	return &Controller{
		cfg:       cfg,
		mode:      mode,
		edge:      edge,
		bounds:    bounds,
		reader:    adc.NewReader(dev.ADC),
		dev:       dev,
		debouncer: button.NewDebouncer(cfg.DebounceWindow),
		xMap:      xMap,
		yMap:      yMap,
		now:       time.Now,
	}, nil
}

// Run polls until ctx is cancelled or a fatal error occurs. Cancellation
// is not an error. The devices are closed on every return path.
func (c *Controller) Run(ctx context.Context) (err error) {
	defer func() {
		c.state = Stopped
		if cerr := c.dev.Close(); cerr != nil {
			err = multierr.Append(err, fmt.Errorf("failed to release devices: %w", cerr))
		}
	}()

	c.state = Running
	log.Printf("joystick control running: %s mode, screen %s, polling every %s", c.mode, c.bounds, c.cfg.PollInterval)

	ticker := time.NewTicker(c.cfg.PollInterval)
	defer ticker.Stop()

	for {
		if ctx.Err() != nil {
			return nil
		}

		if err := c.Step(c.now()); err != nil {
			if fatal := c.handleError(err); fatal != nil {
				return fatal
			}
		} else {
			c.failures = 0
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (c *Controller) handleError(err error) error {
	if IsFatal(err) {
		return err
	}

	c.failures++
	log.Printf("cycle aborted (%d/%d): %v", c.failures, c.cfg.MaxFailures, err)
	if c.failures > c.cfg.MaxFailures {
		return fmt.Errorf("%w (%d): %v", ErrTooManyFailures, c.failures, err)
	}
	return nil
}

// Step runs a single cycle at time now. An error aborts the rest of the
// cycle.
func (c *Controller) Step(now time.Time) error {
	x, err := c.readAxis(adc.Channel(c.cfg.XChannel))
	if err != nil {
		return err
	}
	y, err := c.readAxis(adc.Channel(c.cfg.YChannel))
	if err != nil {
		return err
	}

	dx := axis.Truncate(c.xMap.Map(float64(x)))
	dy := axis.Truncate(c.yMap.Map(float64(y)))
	if c.cfg.InvertY {
		dy = -dy
	}

	if c.cfg.Debug {
		log.Printf("sample x=%d y=%d delta=(%d, %d)", x, y, dx, dy)
	}

	if err := c.actuate(dx, dy); err != nil {
		return err
	}

	return c.pollButton(now)
}

func (c *Controller) readAxis(ch adc.Channel) (uint16, error) {
	sample, err := c.reader.Read(ch)
	if err != nil {
		return 0, err
	}
	return axis.Filter(uint16(sample), c.cfg.Center, c.cfg.DeadzoneRadius), nil
}

func (c *Controller) actuate(dx, dy int) error {
	if c.mode == Velocity {
		if dx == 0 && dy == 0 {
			return nil
		}
		if err := c.dev.Pointer.MoveRelative(dx, dy); err != nil {
			return fmt.Errorf("%w: move: %v", pointer.ErrBackend, err)
		}
		return nil
	}

	curX, curY, err := c.dev.Pointer.Position()
	if err != nil {
		return fmt.Errorf("%w: position: %v", pointer.ErrBackend, err)
	}

	newX, newY := c.bounds.Apply(c.edge, curX+dx, curY+dy)
	if c.cfg.Debug {
		log.Printf("pointer (%d, %d) -> (%d, %d)", curX, curY, newX, newY)
	}
	if newX == curX && newY == curY {
		return nil
	}

	if err := c.dev.Pointer.SetPosition(newX, newY); err != nil {
		return fmt.Errorf("%w: set position: %v", pointer.ErrBackend, err)
	}
	return nil
}

func (c *Controller) pollButton(now time.Time) error {
	if c.dev.Button == nil {
		return nil
	}

	active, err := c.dev.Button.Read()
	if err != nil {
		return err
	}

	if !c.debouncer.Poll(active, now) {
		return nil
	}

	if c.cfg.Debug {
		log.Printf("click")
	}
	if err := c.dev.Pointer.Click(pointer.Left, 1); err != nil {
		return fmt.Errorf("%w: click: %v", pointer.ErrBackend, err)
	}
	return nil
}

func (c *Controller) State() RunState {
	return c.state
}

// Bounds returns the screen area used in absolute mode.
func (c *Controller) Bounds() pointer.Bounds {
	return c.bounds
}

func (s RunState) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Running:
		return "running"
	default:
		return "unknown"
	}
}

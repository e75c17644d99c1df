package joystick

import (
	"fmt"
	"strings"
	"time"

	"github.com/larsks/joymouse/internal/adc"
	"github.com/larsks/joymouse/internal/button"
	"github.com/larsks/joymouse/internal/config"
	"github.com/larsks/joymouse/internal/pointer"
	"github.com/spf13/pflag"
	"periph.io/x/conn/v3/physic"
)

// EnvPrefix prefixes environment overrides, e.g. JOYMOUSE_POLL_INTERVAL.
const EnvPrefix = "joymouse"

// Mode selects how stick deflection drives the pointer.
type Mode int

const (
	// Absolute adds the mapped deflection to the current position and keeps
	// the result on screen.
	Absolute Mode = iota
	// Velocity issues the mapped deflection as a relative move.
	Velocity
)

type Config struct {
	XChannel       uint8         `mapstructure:"x_channel"`
	YChannel       uint8         `mapstructure:"y_channel"`
	ScreenWidth    int           `mapstructure:"screen_width"`
	ScreenHeight   int           `mapstructure:"screen_height"`
	Sensitivity    float64       `mapstructure:"sensitivity"`
	DeadzoneRadius uint16        `mapstructure:"deadzone_radius"`
	Center         uint16        `mapstructure:"center"`
	DebounceWindow time.Duration `mapstructure:"debounce_window"`
	PollInterval   time.Duration `mapstructure:"poll_interval"`
	Mode           string        `mapstructure:"mode"`
	VelocityScale  float64       `mapstructure:"velocity_scale"`
	InvertY        bool          `mapstructure:"invert_y"`
	EdgeMode       string        `mapstructure:"edge_mode"`
	MaxFailures    int           `mapstructure:"max_failures"`

	SPIPort       string `mapstructure:"spi_port"`
	SPISpeed      int64  `mapstructure:"spi_speed"`
	ButtonDriver  string `mapstructure:"button_driver"`
	ButtonChip    string `mapstructure:"button_chip"`
	ButtonPin     string `mapstructure:"button_pin"`
	PointerDriver string `mapstructure:"pointer_driver"`

	Debug bool `mapstructure:"debug"`
}

// NewConfig returns the configuration of the reference hardware: stick on
// channels 0 and 1 of an MCP3008 on /dev/spidev0.0, button on GPIO23,
// 1024x600 display.
func NewConfig() *Config {
	return &Config{
		XChannel:       0,
		YChannel:       1,
		ScreenWidth:    1024,
		ScreenHeight:   600,
		Sensitivity:    0.05,
		DeadzoneRadius: 100,
		Center:         uint16(adc.Center),
		DebounceWindow: 200 * time.Millisecond,
		PollInterval:   10 * time.Millisecond,
		Mode:           "absolute",
		InvertY:        true,
		EdgeMode:       "clamp",
		MaxFailures:    10,
		SPIPort:        adc.DefaultSPIPort,
		SPISpeed:       int64(adc.DefaultSPISpeed / physic.Hertz),
		ButtonDriver:   button.DriverGPIOCDev,
		ButtonChip:     button.DefaultChip,
		ButtonPin:      button.DefaultPinSpec,
		PointerDriver:  "robotgo",
	}
}

func (c *Config) AddFlags(fs *pflag.FlagSet) {
	fs.Uint8Var(&c.XChannel, "x-channel", c.XChannel, "ADC channel for the X axis (0-7)")
	fs.Uint8Var(&c.YChannel, "y-channel", c.YChannel, "ADC channel for the Y axis (0-7)")
	fs.IntVar(&c.ScreenWidth, "screen-width", c.ScreenWidth, "Screen width in pixels (0 asks the pointer backend)")
	fs.IntVar(&c.ScreenHeight, "screen-height", c.ScreenHeight, "Screen height in pixels (0 asks the pointer backend)")
	fs.Float64Var(&c.Sensitivity, "sensitivity", c.Sensitivity, "Fraction of the screen moved per cycle at full deflection")
	fs.Uint16Var(&c.DeadzoneRadius, "deadzone-radius", c.DeadzoneRadius, "Samples closer than this to center are treated as centered")
	fs.Uint16Var(&c.Center, "center", c.Center, "Sample value of the stick at rest")
	fs.DurationVar(&c.DebounceWindow, "debounce-window", c.DebounceWindow, "Minimum time between clicks")
	fs.DurationVar(&c.PollInterval, "poll-interval", c.PollInterval, "Time between polling cycles")
	fs.StringVar(&c.Mode, "mode", c.Mode, "Pointer mode: absolute or velocity")
	fs.Float64Var(&c.VelocityScale, "velocity-scale", c.VelocityScale, "Velocity mode: pixels per cycle at full deflection (0 uses sensitivity * screen size)")
	fs.BoolVar(&c.InvertY, "invert-y", c.InvertY, "Pushing the stick up moves the pointer up")
	fs.StringVar(&c.EdgeMode, "edge-mode", c.EdgeMode, "Absolute mode screen edge behavior: clamp or wrap")
	fs.IntVar(&c.MaxFailures, "max-failures", c.MaxFailures, "Consecutive failed cycles tolerated before exiting")
	fs.StringVar(&c.SPIPort, "spi-port", c.SPIPort, "SPI port of the ADC")
	fs.Int64Var(&c.SPISpeed, "spi-speed", c.SPISpeed, "SPI clock in Hz")
	fs.StringVar(&c.ButtonDriver, "button-driver", c.ButtonDriver, "Button driver: gpiocdev, periph or none")
	fs.StringVar(&c.ButtonChip, "button-chip", c.ButtonChip, "GPIO chip for the gpiocdev button driver")
	fs.StringVar(&c.ButtonPin, "button-pin", c.ButtonPin, "Button pin spec: pin[:active-high|active-low][:pull-none|pull-up|pull-down]")
	fs.StringVar(&c.PointerDriver, "pointer-driver", c.PointerDriver, "Pointer driver: "+strings.Join(pointer.ListDrivers(), ", "))
	fs.BoolVar(&c.Debug, "debug", c.Debug, "Log samples and pointer updates every cycle")
}

// settings returns c as a map of configuration keys.
func (c *Config) settings() map[string]any {
	return map[string]any{
		"x_channel":       c.XChannel,
		"y_channel":       c.YChannel,
		"screen_width":    c.ScreenWidth,
		"screen_height":   c.ScreenHeight,
		"sensitivity":     c.Sensitivity,
		"deadzone_radius": c.DeadzoneRadius,
		"center":          c.Center,
		"debounce_window": c.DebounceWindow,
		"poll_interval":   c.PollInterval,
		"mode":            c.Mode,
		"velocity_scale":  c.VelocityScale,
		"invert_y":        c.InvertY,
		"edge_mode":       c.EdgeMode,
		"max_failures":    c.MaxFailures,
		"spi_port":        c.SPIPort,
		"spi_speed":       c.SPISpeed,
		"button_driver":   c.ButtonDriver,
		"button_chip":     c.ButtonChip,
		"button_pin":      c.ButtonPin,
		"pointer_driver":  c.PointerDriver,
		"debug":           c.Debug,
	}
}

// LoadConfigWithFlagSet fills c from defaults, JOYMOUSE_* environment
// variables and the flags explicitly set in fs, in increasing precedence.
func (c *Config) LoadConfigWithFlagSet(fs *pflag.FlagSet) error {
	loader := config.NewLoader()
	loader.SetEnvPrefix(EnvPrefix)
	loader.SetDefaults(NewConfig().settings())
	return loader.LoadConfigWithFlagSet(c, fs)
}

func (c *Config) Validate() error {
	for _, ch := range []uint8{c.XChannel, c.YChannel} {
		if err := adc.Channel(ch).Validate(); err != nil {
			return err
		}
	}
	if c.XChannel == c.YChannel {
		return fmt.Errorf("%w: both are %d", ErrSameChannel, c.XChannel)
	}
	if c.ScreenWidth < 0 || c.ScreenHeight < 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidScreen, c.ScreenWidth, c.ScreenHeight)
	}
	if c.Sensitivity <= 0 {
		return fmt.Errorf("%w: %g", ErrInvalidSensitivity, c.Sensitivity)
	}
	if c.VelocityScale < 0 {
		return fmt.Errorf("%w: velocity scale %g", ErrInvalidSensitivity, c.VelocityScale)
	}
	if c.Center == 0 || c.Center >= uint16(adc.MaxSample) {
		return fmt.Errorf("%w: %d", ErrInvalidCenter, c.Center)
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidPollInterval, c.PollInterval)
	}
	if c.DebounceWindow < 0 {
		return fmt.Errorf("%w: %s", ErrInvalidDebounce, c.DebounceWindow)
	}
	if c.MaxFailures < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidMaxFailures, c.MaxFailures)
	}
	if _, err := ParseMode(c.Mode); err != nil {
		return err
	}
	if _, err := pointer.ParseEdgeMode(c.EdgeMode); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidEdgeMode, err)
	}

	validDriver := false
	for _, d := range button.Drivers() {
		if strings.EqualFold(c.ButtonDriver, d) {
			validDriver = true
		}
	}
	if !validDriver {
		return fmt.Errorf("%w: %s (must be one of: %s)", ErrInvalidButtonDriver, c.ButtonDriver, strings.Join(button.Drivers(), ", "))
	}

	return nil
}

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "absolute", "position":
		return Absolute, nil
	case "velocity", "relative":
		return Velocity, nil
	default:
		return 0, fmt.Errorf("%w: %s (must be absolute or velocity)", ErrInvalidMode, s)
	}
}

func (m Mode) String() string {
	switch m {
	case Absolute:
		return "absolute"
	case Velocity:
		return "velocity"
	default:
		return "unknown"
	}
}

package joystick

import (
	"fmt"
	"io"
	"log"

	"go.uber.org/multierr"
	"periph.io/x/conn/v3/physic"

	"github.com/larsks/joymouse/internal/adc"
	"github.com/larsks/joymouse/internal/button"
	"github.com/larsks/joymouse/internal/pointer"
)

// Devices are the peripherals driven by a Controller. Button is optional.
// The Controller closes all of them when Run returns.
type Devices struct {
	ADC     adc.Transport
	Button  button.Input
	Pointer pointer.Backend
}

// OpenDevices opens the peripherals named by cfg. Anything already opened
// is closed again if a later device fails to open.
func OpenDevices(cfg *Config) (dev Devices, err error) {
	defer func() {
		if err != nil {
			if cerr := dev.Close(); cerr != nil {
				log.Printf("failed to release devices: %v", cerr)
			}
			dev = Devices{}
		}
	}()

	spiDev, err := adc.OpenSPI(cfg.SPIPort, physic.Frequency(cfg.SPISpeed)*physic.Hertz)
	if err != nil {
		return dev, err
	}
	dev.ADC = spiDev

	dev.Button, err = button.Open(cfg.ButtonDriver, cfg.ButtonChip, cfg.ButtonPin)
	if err != nil {
		return dev, fmt.Errorf("failed to open button: %w", err)
	}

	dev.Pointer, err = pointer.Open(cfg.PointerDriver)
	if err != nil {
		return dev, fmt.Errorf("failed to open pointer: %w", err)
	}

	return dev, nil
}

// Close releases every device, returning all close errors combined.
func (d Devices) Close() error {
	var err error
	if closer, ok := d.ADC.(io.Closer); ok {
		err = multierr.Append(err, closer.Close())
	}
	if d.Button != nil {
		err = multierr.Append(err, d.Button.Close())
	}
	if d.Pointer != nil {
		err = multierr.Append(err, d.Pointer.Close())
	}
	return err
}

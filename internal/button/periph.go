package button

import (
	"fmt"
	"log"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

// PeriphInput is a button on a pin from the periph.io registry.
type PeriphInput struct {
	pin  gpio.PinIO
	spec *PinSpec
}

func OpenPeriph(spec *PinSpec) (*PeriphInput, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPeriphInit, err)
	}

	pin := gpioreg.ByName(fmt.Sprintf("GPIO%d", spec.LineNum))
	if pin == nil {
		return nil, fmt.Errorf("%w: %s", ErrPinNotFound, spec.Name)
	}

	pull := gpio.Float
	switch spec.PullMode {
	case PullUp:
		pull = gpio.PullUp
	case PullDown:
		pull = gpio.PullDown
	}

	if err := pin.In(pull, gpio.NoEdge); err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrPinConfig, spec.Name, err)
	}
	log.Printf("opened button %s via periph", spec)

	return &PeriphInput{pin: pin, spec: spec}, nil
}

func (in *PeriphInput) Read() (bool, error) {
	return in.spec.Active(in.pin.Read() == gpio.High), nil
}

func (in *PeriphInput) Close() error {
	log.Printf("closing button %s", in.spec.Name)
	return in.pin.Halt()
}

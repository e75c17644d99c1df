package button

import (
	"fmt"
	"log"

	"github.com/warthog618/go-gpiocdev"
)

// CDevInput is a button on a GPIO character device line.
type CDevInput struct {
	chip *gpiocdev.Chip
	line *gpiocdev.Line
	spec *PinSpec
}

// OpenCDev requests spec's line on chip as a biased input.
func OpenCDev(chip string, spec *PinSpec) (*CDevInput, error) {
	if chip == "" {
		chip = DefaultChip
	}

	c, err := gpiocdev.NewChip(chip)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrChipOpen, chip, err)
	}

	opts := []gpiocdev.LineReqOption{gpiocdev.AsInput}
	switch spec.PullMode {
	case PullUp:
		opts = append(opts, gpiocdev.WithPullUp)
	case PullDown:
		opts = append(opts, gpiocdev.WithPullDown)
	case PullNone:
		opts = append(opts, gpiocdev.WithBiasDisabled)
	}

	line, err := c.RequestLine(spec.LineNum, opts...)
	if err != nil {
		c.Close() //nolint:errcheck
		return nil, fmt.Errorf("%w %s: %v", ErrPinConfig, spec.Name, err)
	}
	log.Printf("opened button %s on %s", spec, chip)

	return &CDevInput{chip: c, line: line, spec: spec}, nil
}

func (in *CDevInput) Read() (bool, error) {
	level, err := in.line.Value()
	if err != nil {
		return false, fmt.Errorf("%w %s: %v", ErrRead, in.spec.Name, err)
	}
	return in.spec.Active(level != 0), nil
}

func (in *CDevInput) Close() error {
	log.Printf("closing button %s", in.spec.Name)
	lineErr := in.line.Close()
	if err := in.chip.Close(); err != nil {
		return err
	}
	return lineErr
}

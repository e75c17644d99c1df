package joystick

import (
	"context"
	"fmt"
	"log"

	"github.com/larsks/joymouse/internal/cli"
)

// Handler implements cli.CommandHandler for the joystick pointer.
type Handler struct {
	open func(*Config) (Devices, error)
}

func NewHandler() *Handler {
	return &Handler{open: OpenDevices}
}

// Start opens the devices and runs the control loop until ctx is done.
func (h *Handler) Start(ctx context.Context, config cli.Configurable) error {
	cfg, ok := config.(*Config)
	if !ok {
		return fmt.Errorf("invalid config type for joystick")
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	dev, err := h.open(cfg)
	if err != nil {
		return err
	}

	ctrl, err := NewController(cfg, dev)
	if err != nil {
		if cerr := dev.Close(); cerr != nil {
			log.Printf("failed to release devices: %v", cerr)
		}
		return fmt.Errorf("configuration error: %w", err)
	}

	log.Printf("use the joystick to control the pointer, press Ctrl+C to exit")
	if err := ctrl.Run(ctx); err != nil {
		return err
	}

	log.Printf("shutting down")
	return nil
}

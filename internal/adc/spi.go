package adc

import (
	"fmt"
	"log"

	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
)

const (
	DefaultSPIPort  = "/dev/spidev0.0"
	DefaultSPISpeed = 1350 * physic.KiloHertz
)

// SPIDevice is an open SPI connection to the converter.
type SPIDevice struct {
	portName string
	port     spi.PortCloser
	conn     spi.Conn
}

// OpenSPI opens portName and configures it for the converter (mode 0,
// 8 bit words). A port name of "" selects the first available port.
func OpenSPI(portName string, speed physic.Frequency) (*SPIDevice, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPeriphInitFailed, err)
	}

	port, err := spireg.Open(portName)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrSPIPortOpen, portName, err)
	}

	conn, err := port.Connect(speed, spi.Mode0, 8)
	if err != nil {
		port.Close() //nolint:errcheck
		return nil, fmt.Errorf("%w: %v", ErrSPIConnect, err)
	}
	log.Printf("opened adc at %s (%s)", portName, speed)

	return &SPIDevice{
		portName: portName,
		port:     port,
		conn:     conn,
	}, nil
}

func (d *SPIDevice) Tx(w, r []byte) error {
	return d.conn.Tx(w, r)
}

func (d *SPIDevice) Close() error {
	log.Printf("closing adc at %s", d.portName)
	return d.port.Close()
}

func (d *SPIDevice) String() string {
	return fmt.Sprintf("mcp3008:%s", d.portName)
}

// Package adc reads single-ended conversions from an MCP3008-style
// 10-bit, 8-channel analog-to-digital converter.
package adc

import (
	"fmt"
)

const (
	// NumChannels is the number of single-ended inputs on the converter.
	NumChannels = 8

	// MaxChannel is the highest valid channel number.
	MaxChannel Channel = NumChannels - 1

	// MaxSample is the largest value a 10-bit conversion can produce.
	MaxSample Sample = 1023

	// Center is the electrical midpoint of the sample range.
	Center Sample = 512

	frameSize = 3
)

type (
	// Channel selects one of the converter inputs.
	Channel uint8

	// Sample is a raw 10-bit conversion result.
	Sample uint16

	// Transport exchanges a full-duplex frame with the converter. It is
	// satisfied by a periph.io spi.Conn.
	Transport interface {
		Tx(w, r []byte) error
	}

	// Reader reads samples from a converter over a Transport.
	Reader struct {
		tx Transport
	}
)

// Validate returns ErrInvalidChannel if ch is not a converter input.
func (ch Channel) Validate() error {
	if ch > MaxChannel {
		return fmt.Errorf("%w: %d (must be 0-%d)", ErrInvalidChannel, ch, MaxChannel)
	}
	return nil
}

// Frame builds the command frame requesting a single-ended conversion
// on ch: start bit, single/diff + channel select, and padding clocks.
func Frame(ch Channel) ([]byte, error) {
	if err := ch.Validate(); err != nil {
		return nil, err
	}
	return []byte{0x01, byte((0x08 | ch) << 4), 0x00}, nil
}

// Decode reassembles the 10-bit result from a response frame.
func Decode(resp []byte) (Sample, error) {
	if len(resp) < frameSize {
		return 0, fmt.Errorf("%w: got %d bytes, want %d", ErrShortRead, len(resp), frameSize)
	}
	return Sample(resp[1]&0x03)<<8 | Sample(resp[2]), nil
}

func NewReader(tx Transport) *Reader {
	return &Reader{tx: tx}
}

// Read performs one conversion on ch. The channel is validated before the
// bus is touched; transfer failures are not retried.
func (r *Reader) Read(ch Channel) (Sample, error) {
	write, err := Frame(ch)
	if err != nil {
		return 0, err
	}
	read := make([]byte, len(write))

	if err := r.tx.Tx(write, read); err != nil {
		return 0, fmt.Errorf("%w on channel %d: %v", ErrTransfer, ch, err)
	}

	return Decode(read)
}

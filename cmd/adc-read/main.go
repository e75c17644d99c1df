package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	flag "github.com/spf13/pflag"
	"periph.io/x/conn/v3/physic"

	"github.com/larsks/joymouse/internal/adc"
	"github.com/larsks/joymouse/internal/axis"
	"github.com/larsks/joymouse/internal/version"
)

func main() {
	var (
		port        = flag.String("spi-port", adc.DefaultSPIPort, "SPI port of the ADC")
		speed       = flag.Int64("spi-speed", int64(adc.DefaultSPISpeed/physic.Hertz), "SPI clock in Hz")
		channels    = flag.UintSlice("channels", []uint{0, 1}, "ADC channels to read")
		interval    = flag.Duration("interval", 100*time.Millisecond, "Time between readings")
		normalize   = flag.Bool("normalize", false, "Also print readings mapped to [-1, 1]")
		showVersion = flag.Bool("version", false, "Show version and exit")
	)
	flag.Parse()

	if *showVersion {
		version.ShowVersion()
		return
	}

	chans := make([]adc.Channel, len(*channels))
	for i, ch := range *channels {
		if ch > uint(adc.MaxChannel) {
			log.Fatalf("channel %d: %v", ch, adc.ErrInvalidChannel)
		}
		chans[i] = adc.Channel(ch)
	}

	norm, err := axis.Symmetric(0, float64(adc.MaxSample), 1)
	if err != nil {
		log.Fatalf("failed to create mapper: %v", err)
	}

	dev, err := adc.OpenSPI(*port, physic.Frequency(*speed)*physic.Hertz)
	if err != nil {
		log.Fatalf("failed to open adc: %v", err)
	}
	defer dev.Close() //nolint:errcheck

	reader := adc.NewReader(dev)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()

	for {
		for _, ch := range chans {
			val, err := reader.Read(ch)
			if err != nil {
				log.Printf("read failed: %v", err)
				continue
			}
			if *normalize {
				fmt.Printf("CH%d: %4d (%+.3f)  ", ch, val, norm.Map(float64(val)))
			} else {
				fmt.Printf("CH%d: %4d  ", ch, val)
			}
		}
		fmt.Println()

		select {
		case <-ctx.Done():
			fmt.Println("exiting...")
			return
		case <-ticker.C:
		}
	}
}

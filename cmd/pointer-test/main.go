package main

import (
	"fmt"
	"log"
	"strings"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/larsks/joymouse/internal/pointer"
	_ "github.com/larsks/joymouse/internal/pointer/robotgo"
)

func main() {
	var (
		driver = flag.String("driver", "robotgo", "Pointer driver: "+strings.Join(pointer.ListDrivers(), ", "))
		pause  = flag.Duration("pause", 3*time.Second, "Pause between steps")
		btn    = flag.String("button", "left", "Button to click: left, right or middle")
	)
	flag.Parse()

	button, err := pointer.ParseButton(*btn)
	if err != nil {
		log.Fatalf("invalid button: %v", err)
	}

	p, err := pointer.Open(*driver)
	if err != nil {
		log.Fatalf("failed to open pointer: %v", err)
	}
	defer p.Close() //nolint:errcheck

	steps := []struct {
		desc string
		run  func() error
	}{
		{"set position to (10, 20)", func() error { return p.SetPosition(10, 20) }},
		{"move by (5, -5)", func() error { return p.MoveRelative(5, -5) }},
		{"single click", func() error { return p.Click(button, 1) }},
		{"double click", func() error { return p.Click(button, 2) }},
		{"scroll down two steps", func() error { return p.Scroll(0, 2) }},
	}

	if w, h, err := p.ScreenSize(); err == nil {
		fmt.Printf("screen size is %dx%d\n", w, h)
	}

	for _, step := range steps {
		x, y, err := p.Position()
		if err != nil {
			log.Fatalf("failed to read position: %v", err)
		}
		fmt.Printf("pointer at (%d, %d): %s\n", x, y, step.desc)

		if err := step.run(); err != nil {
			log.Fatalf("%s failed: %v", step.desc, err)
		}
		time.Sleep(*pause)
	}

	x, y, _ := p.Position()
	fmt.Printf("pointer finished at (%d, %d)\n", x, y)
}

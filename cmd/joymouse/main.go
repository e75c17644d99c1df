package main

import (
	"github.com/larsks/joymouse/internal/cli"
	"github.com/larsks/joymouse/internal/joystick"
	_ "github.com/larsks/joymouse/internal/pointer/robotgo"
)

func main() {
	cli.StandardMain(
		func() cli.Configurable { return joystick.NewConfig() },
		joystick.NewHandler(),
	)
}

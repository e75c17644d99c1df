// Package version reports build information.
package version

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/debug"
)

// Set at build time with -ldflags "-X github.com/larsks/joymouse/internal/version.Version=..."
var (
	Version   = "dev"
	BuildDate = "unknown"
)

// String returns a one-line version description.
func String() string {
	rev := "unknown"
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" {
				rev = s.Value
			}
		}
	}
	return fmt.Sprintf("joymouse %s (revision %s, built %s, %s)", Version, rev, BuildDate, runtime.Version())
}

func Fprint(w io.Writer) {
	fmt.Fprintln(w, String())
}

func ShowVersion() {
	Fprint(os.Stdout)
}

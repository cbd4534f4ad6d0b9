// Package verflag defines the --version flag and prints version info when set.
package verflag

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/kiosk404/saos-mcp/pkg/version"
)

const versionFlagName = "version"

var versionFlag bool

// AddFlags registers the version flag on fs.
func AddFlags(fs *pflag.FlagSet) {
	fs.BoolVar(&versionFlag, versionFlagName, false, "Print version information and quit.")
}

// PrintAndExitIfRequested prints version info and exits if --version was passed.
func PrintAndExitIfRequested(out io.Writer) {
	if versionFlag {
		fmt.Fprintln(out, version.Get().String())
		os.Exit(0)
	}
}

// Command treescan ranks the subdirectories of a tree by recursive disk usage.
package main

import (
	"fmt"
	"os"

	"github.com/idelchi/treescan/internal/cli"
)

// version is set at build time.
//
//nolint:gochecknoglobals // Set by linker flags
var version = "unknown - unofficial & generated by unknown"

func main() {
	if err := cli.New(version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)

		os.Exit(cli.ExitCode(err))
	}
}

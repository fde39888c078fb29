package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/idelchi/treescan/internal/treescan"
)

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)

	return ok && isatty.IsTerminal(f.Fd())
}

func logic(ctx context.Context, version string, args Arguments, stdout, stderr io.Writer) error {
	enableProgress := !args.Verbose && isTerminal(stderr)

	// Redraws a single status line; the scan calls it synchronously between directories.
	var progressHook treescan.ProgressFunc

	if enableProgress {
		// The cursor stays hidden until the report is printed.
		fmt.Fprint(stderr, "\033[?25l")
		defer fmt.Fprint(stderr, "\033[?25h")

		progressHook = func(dirs, files, bytes int64) {
			msg := fmt.Sprintf("Scanning… %d folders, %d files, %s",
				dirs, files, humanize.IBytes(uint64(bytes))) //nolint:gosec // Bytes is always positive
			fmt.Fprintf(stderr, "\r\033[2K%s\r", msg)
		}
	}

	result, err := treescan.Aggregate(ctx, treescan.Options{
		Path:          args.Path,
		IncludeHidden: args.Full,
		SkipSymlinks:  args.NoFollow,
		Verbose:       args.Verbose,
		Trace:         stderr,
		Progress:      progressHook,
	})

	// Clear the status line before the report
	if enableProgress {
		fmt.Fprint(stderr, "\r\033[2K\r")
	}

	if err != nil {
		return err
	}

	return PrintReport(stdout, Report{
		Version:    version,
		Root:       result.Root.Path,
		Resolution: args.Resolution,
		Limit:      args.Limit,
		Full:       args.Full,
		Verbose:    args.Verbose,
		Ranking:    treescan.Rank(result.Records, args.Resolution.Threshold(args.Limit)),
		Elapsed:    result.Elapsed,
	})
}

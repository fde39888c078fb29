package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/idelchi/treescan/internal/treescan"
)

const (
	// TabSpacing is the number of spaces between tabwriter columns.
	TabSpacing = 2
)

// Report holds everything printed after a successful scan.
type Report struct {
	// Version is shown in the banner.
	Version string
	// Root is the absolute path of the scanned directory.
	Root string
	// Resolution is the unit of the limit and displayed sizes.
	Resolution treescan.Resolution
	// Limit is the threshold in Resolution units.
	Limit int64
	// Full indicates hidden directories were descended into.
	Full bool
	// Verbose indicates the trace was enabled.
	Verbose bool
	// Ranking is the sorted set of directory records.
	Ranking treescan.Ranking
	// Elapsed is the scan duration.
	Elapsed time.Duration
}

// modes returns the enabled mode flags for the header.
func (r Report) modes() string {
	var modes []string
	if r.Full {
		modes = append(modes, "full")
	}

	if r.Verbose {
		modes = append(modes, "verbose")
	}

	if len(modes) == 0 {
		return ""
	}

	return " (" + strings.Join(modes, ", ") + ")"
}

// relativePath renders path relative to root, with the root itself as "./".
func relativePath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}

	if rel == "." {
		return "./"
	}

	return "./" + filepath.ToSlash(rel)
}

// PrintReport outputs the ranked directories in human-readable table format.
//
//nolint:forbidigo // This function prints output to the console.
func PrintReport(writer io.Writer, report Report) error {
	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)
	unit := report.Resolution.String()
	ranking := report.Ranking

	fmt.Fprintf(w, "\n>>> treescan %s <<<\n\n", report.Version)
	fmt.Fprintf(w, "scan: %s%s\n", report.Root, report.modes())
	fmt.Fprintf(w, "threshold: %d %s (%s)\n", report.Limit, unit,
		humanize.IBytes(uint64(ranking.Threshold))) //nolint:gosec // Threshold is never negative
	fmt.Fprintf(w, "directories: %s\n\n", humanize.Comma(int64(len(ranking.Records))))

	for _, record := range ranking.Listed() {
		fmt.Fprintf(w, "%s\t=> %s %s\t(%d folders, %d files)\n",
			relativePath(report.Root, record.Path),
			report.Resolution.Format(record.TotalSize), unit,
			record.FolderCount, record.FileCount)
	}

	if below := ranking.Below(); below > 0 {
		fmt.Fprintf(w, "=> %d items below %d %s\n", below, report.Limit, unit)
	}

	fmt.Fprintf(w, "\nElapsed: %v\n", report.Elapsed)
	fmt.Fprintln(w, "\n>>> done <<<")

	return w.Flush()
}

package treescan

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charlievieth/fastwalk"
)

// DefaultProgressInterval is the default interval for progress updates.
const DefaultProgressInterval = 500 * time.Millisecond

// readDir lists a directory. Replaced in tests.
//
//nolint:gochecknoglobals // Test seam
var readDir = os.ReadDir

// HiddenPrefix marks directories that are not descended into unless hidden entries are included.
const HiddenPrefix = "."

// logger provides conditional trace output.
type logger struct {
	enabled bool
	w       io.Writer
}

// printf prints trace output if logging is enabled.
func (l logger) printf(format string, args ...any) {
	if l.enabled && l.w != nil {
		fmt.Fprintf(l.w, format, args...)
	}
}

// aggregator holds the state of a single depth-first scan.
type aggregator struct {
	ctx      context.Context //nolint:containedctx // Scoped to a single Aggregate call
	opt      Options
	log      logger
	records  []Record
	skipped  int64
	files    int64
	bytes    int64
	interval time.Duration
	lastTick time.Time
}

// isAccessError reports whether err is a per-entry failure that should not abort the scan.
func isAccessError(err error) bool {
	return errors.Is(err, fs.ErrPermission) || errors.Is(err, fs.ErrNotExist)
}

// Aggregate scans the directory tree at opt.Path and returns one record per
// visited directory, each holding the recursive totals of everything beneath it.
//
// Children are visited depth-first and folded into their parent only once
// their own subtree is complete. Directories whose name starts with
// HiddenPrefix are counted as a single file-sized entry instead of being
// descended into, unless opt.IncludeHidden is set. The root is always descended into.
// Symbolic links to directories are followed unless opt.SkipSymlinks is set.
//
// Entries that cannot be stat'ed, and subdirectories that cannot be listed
// because of permission or existence errors, are skipped and do not
// contribute to any total. Any other failure aborts the scan.
func Aggregate(ctx context.Context, opt Options) (*Result, error) {
	if opt.Path == "" {
		opt.Path = "."
	}

	root, err := filepath.Abs(filepath.Clean(opt.Path))
	if err != nil {
		return nil, fmt.Errorf("resolving absolute path: %w", err)
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("accessing path %q: %w: %w", root, ErrNotADirectory, err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("path %q: %w", root, ErrNotADirectory)
	}

	interval := opt.ProgressInterval
	if interval <= 0 {
		interval = DefaultProgressInterval
	}

	start := time.Now()

	agg := &aggregator{
		ctx:      ctx,
		opt:      opt,
		log:      logger{enabled: opt.Verbose, w: opt.Trace},
		interval: interval,
		lastTick: start,
	}

	rootRecord, err := agg.scanDir(root, 0)
	if err != nil {
		return nil, err
	}

	return &Result{
		Root:    rootRecord,
		Records: agg.records,
		Skipped: agg.skipped,
		Elapsed: time.Since(start),
	}, nil
}

// scanDir aggregates the directory at path and appends its record once all
// children have been folded in.
func (a *aggregator) scanDir(path string, depth int) (Record, error) {
	if err := a.ctx.Err(); err != nil {
		return Record{}, err
	}

	if depth < TraceDepth {
		a.log.printf("[trace]: %s%s\n", strings.Repeat("  ", depth), path)
	}

	entries, err := readDir(path)
	if err != nil {
		return Record{}, fmt.Errorf("reading directory %q: %w", path, err)
	}

	record := Record{Path: path, Depth: depth}

	for _, entry := range entries {
		childPath := filepath.Join(path, entry.Name())

		info, err := fastwalk.StatDirEntry(childPath, entry)
		if err != nil {
			a.skip(childPath, err)

			continue
		}

		if info.IsDir() && a.descend(entry) {
			child, err := a.scanDir(childPath, depth+1)
			if err != nil {
				if isAccessError(err) {
					a.skip(childPath, err)

					continue
				}

				return Record{}, err
			}

			record.add(child)

			continue
		}

		record.addLeaf(info.Size())

		a.files++
		a.bytes += info.Size()
	}

	a.records = append(a.records, record)
	a.tick()

	return record, nil
}

// descend reports whether a directory entry is traversed rather than counted as a leaf.
func (a *aggregator) descend(entry fs.DirEntry) bool {
	if !a.opt.IncludeHidden && strings.HasPrefix(entry.Name(), HiddenPrefix) {
		return false
	}

	if entry.Type()&fs.ModeSymlink != 0 && a.opt.SkipSymlinks {
		return false
	}

	return true
}

// skip records an inaccessible entry.
func (a *aggregator) skip(path string, err error) {
	a.skipped++
	a.log.printf("[trace]: skipping %s: %v\n", path, err)
}

// tick invokes the progress callback at most once per interval.
func (a *aggregator) tick() {
	if a.opt.Progress == nil {
		return
	}

	now := time.Now()
	if now.Sub(a.lastTick) < a.interval {
		return
	}

	a.lastTick = now
	a.opt.Progress(int64(len(a.records)), a.files, a.bytes)
}

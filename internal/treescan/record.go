package treescan

import (
	"io"
	"time"
)

// TraceDepth is the number of directory levels reported in verbose mode.
const TraceDepth = 3

// Record holds the aggregate totals of a single directory.
type Record struct {
	// Path is the absolute path of the directory.
	Path string
	// TotalSize is the cumulative size in bytes of everything beneath the directory.
	TotalSize int64
	// FileCount is the number of leaf entries beneath the directory.
	FileCount int64
	// FolderCount is the number of traversed subdirectories beneath the directory.
	FolderCount int64
	// Depth is the distance from the scan root (0 for the root itself).
	Depth int
}

// add folds a completed child record into r.
func (r *Record) add(child Record) {
	r.FolderCount += 1 + child.FolderCount
	r.FileCount += child.FileCount
	r.TotalSize += child.TotalSize
}

// addLeaf accounts for a single file-like entry.
func (r *Record) addLeaf(size int64) {
	r.FileCount++
	r.TotalSize += size
}

// Result is the outcome of a completed scan.
type Result struct {
	// Root is the record of the scanned directory.
	Root Record
	// Records contains one record per visited directory, in post-order.
	Records []Record
	// Skipped is the number of entries that could not be accessed.
	Skipped int64
	// Elapsed is the total time taken by the scan.
	Elapsed time.Duration
}

// ProgressFunc receives the number of directories, files and bytes scanned so far.
type ProgressFunc func(dirs, files, bytes int64)

// Options configures a scan.
type Options struct {
	// Path is the directory to scan.
	Path string
	// IncludeHidden disables the exclusion of directories whose name starts with a dot.
	IncludeHidden bool
	// SkipSymlinks counts symbolic links to directories as single entries
	// instead of descending into them. Links are not checked for cycles.
	SkipSymlinks bool
	// Verbose enables the trace of the first TraceDepth directory levels.
	Verbose bool
	// Trace receives verbose output. Nil discards it.
	Trace io.Writer
	// Progress is called periodically during the scan. Nil disables it.
	Progress ProgressFunc
	// ProgressInterval controls the progress callback cadence.
	ProgressInterval time.Duration
}

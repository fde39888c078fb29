// Package treescan provides recursive directory size aggregation and ranking.
//
// It walks a directory tree depth-first, folds the totals of every
// subdirectory into its parent (post-order), and ranks the resulting
// per-directory records by size against a minimum-size threshold.
package treescan

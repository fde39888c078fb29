package treescan

import (
	"cmp"
	"slices"
)

// Ranking is a set of records ordered for display.
type Ranking struct {
	// Records are sorted by size (largest first), ties by path.
	Records []Record
	// Cutoff is the index of the first record below the threshold,
	// or len(Records) when every record reaches it.
	Cutoff int
	// Threshold is the minimum size in bytes of a listed record.
	Threshold int64
}

// Rank sorts a copy of records by size, largest first, and locates the first
// record whose size falls strictly below threshold. Records of equal size are
// ordered by path so results are reproducible.
func Rank(records []Record, threshold int64) Ranking {
	sorted := slices.Clone(records)

	slices.SortFunc(sorted, func(a, b Record) int {
		if c := cmp.Compare(b.TotalSize, a.TotalSize); c != 0 {
			return c
		}

		return cmp.Compare(a.Path, b.Path)
	})

	cutoff := len(sorted)

	for i, record := range sorted {
		if record.TotalSize < threshold {
			cutoff = i

			break
		}
	}

	return Ranking{
		Records:   sorted,
		Cutoff:    cutoff,
		Threshold: threshold,
	}
}

// Listed returns the records at or above the threshold.
func (r Ranking) Listed() []Record {
	return r.Records[:r.Cutoff]
}

// Below returns the number of records that fell below the threshold.
func (r Ranking) Below() int {
	return len(r.Records) - r.Cutoff
}

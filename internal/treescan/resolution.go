package treescan

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// Resolution is the unit used for threshold comparison and size display.
type Resolution int

// Supported resolutions, in powers of 1024.
const (
	Bytes Resolution = iota
	Kibibytes
	Mebibytes
	Gibibytes
)

// DefaultResolution is used when no resolution is given.
const DefaultResolution = Kibibytes

//nolint:gochecknoglobals // Lookup table
var resolutionLabels = [...]string{
	Bytes:     "B",
	Kibibytes: "KB",
	Mebibytes: "MB",
	Gibibytes: "GB",
}

// ParseResolution parses a case-insensitive resolution token (B, KB, MB or GB).
func ParseResolution(s string) (Resolution, error) {
	for res, label := range resolutionLabels {
		if strings.EqualFold(s, label) {
			return Resolution(res), nil
		}
	}

	return 0, fmt.Errorf("%w: %q (must be one of %v)", ErrInvalidResolution, s, resolutionLabels)
}

// String returns the unit label.
func (r Resolution) String() string {
	if r < Bytes || r > Gibibytes {
		return fmt.Sprintf("Resolution(%d)", int(r))
	}

	return resolutionLabels[r]
}

// Unit returns the number of bytes in one unit of r.
func (r Resolution) Unit() int64 {
	return int64(1) << (10 * int64(r)) //nolint:mnd // 1024^r
}

// Threshold converts a limit expressed in units of r to bytes, saturating at math.MaxInt64.
func (r Resolution) Threshold(limit int64) int64 {
	if limit <= 0 {
		return 0
	}

	unit := r.Unit()
	if limit > math.MaxInt64/unit {
		return math.MaxInt64
	}

	return limit * unit
}

// Format renders size in units of r, rounded half to even to at most two
// decimal places, without trailing zeros.
func (r Resolution) Format(size int64) string {
	value := float64(size) / float64(r.Unit())

	// FtoaWithDigits truncates, so round first.
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(value, 'f', 2, 64), 64) //nolint:mnd // Two decimal places
	if err != nil {
		rounded = value
	}

	return humanize.FtoaWithDigits(rounded, 2) //nolint:mnd // Two decimal places
}

package treescan

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResolution(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want Resolution
	}{
		{"B", Bytes},
		{"b", Bytes},
		{"KB", Kibibytes},
		{"kb", Kibibytes},
		{"Mb", Mebibytes},
		{"gB", Gibibytes},
	}

	for _, tt := range tests {
		got, err := ParseResolution(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	for _, bad := range []string{"", "TB", "KiB", "k"} {
		_, err := ParseResolution(bad)
		assert.ErrorIs(t, err, ErrInvalidResolution, bad)
	}
}

func TestResolution_Unit(t *testing.T) {
	t.Parallel()
	assert.Equal(t, int64(1), Bytes.Unit())
	assert.Equal(t, int64(1024), Kibibytes.Unit())
	assert.Equal(t, int64(1024*1024), Mebibytes.Unit())
	assert.Equal(t, int64(1024*1024*1024), Gibibytes.Unit())
}

func TestResolution_String(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "B", Bytes.String())
	assert.Equal(t, "KB", Kibibytes.String())
	assert.Equal(t, "MB", Mebibytes.String())
	assert.Equal(t, "GB", Gibibytes.String())
	assert.Equal(t, "Resolution(9)", Resolution(9).String())
}

func TestResolution_Threshold(t *testing.T) {
	t.Parallel()
	assert.Equal(t, int64(0), Kibibytes.Threshold(0))
	assert.Equal(t, int64(0), Kibibytes.Threshold(-5))
	assert.Equal(t, int64(10240), Kibibytes.Threshold(10))
	assert.Equal(t, int64(3), Bytes.Threshold(3))
	assert.Equal(t, int64(math.MaxInt64), Gibibytes.Threshold(math.MaxInt64/2))
}

func TestResolution_Format(t *testing.T) {
	t.Parallel()
	tests := []struct {
		res  Resolution
		size int64
		want string
	}{
		{Kibibytes, 2048, "2"},
		{Mebibytes, 2048, "0"},
		{Bytes, 2048, "2048"},
		{Kibibytes, 1536, "1.5"},
		{Mebibytes, 1234567, "1.18"},
		{Kibibytes, 1023, "1"},
		{Kibibytes, 0, "0"},
		{Kibibytes, 128, "0.12"},
		{Kibibytes, 384, "0.38"},
		{Kibibytes, 640, "0.62"},
		{Kibibytes, 1018, "0.99"},
		{Bytes, 5, "5"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.res.Format(tt.size), "%d in %s", tt.size, tt.res)
	}
}

// Package compression wraps zstd stream encoding for the CLI's compressed
// dumps. The array engine itself always stores raw bytes.
package compression

import (
	"io"

	"github.com/klauspost/compress/zstd"
)

// NewWriter returns a zstd-compressing WriteCloser around w. Level 1 maps to
// fastest, 2 to default, 3 to better compression; anything else falls back
// to default.
func NewWriter(w io.Writer, level int) (io.WriteCloser, error) {
	var encoderLevel zstd.EncoderLevel
	switch level {
	case 1:
		encoderLevel = zstd.SpeedFastest
	case 2:
		encoderLevel = zstd.SpeedDefault
	case 3:
		encoderLevel = zstd.SpeedBetterCompression
	default:
		encoderLevel = zstd.SpeedDefault
	}

	return zstd.NewWriter(w,
		zstd.WithEncoderLevel(encoderLevel),
		zstd.WithEncoderConcurrency(1),
	)
}

package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bigbyte/bigbyte/internal/compression"
)

func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("zstd", false, "zstd-compress the output")
	cmd.Flags().Int("zstd-level", 2, "zstd level (1=fastest, 3=best)")
}

// outputWriter returns stdout, optionally wrapped in a zstd encoder, and a
// close func that flushes the encoder.
func outputWriter(cmd *cobra.Command) (io.Writer, func() error, error) {
	zstdOn, _ := cmd.Flags().GetBool("zstd")
	if !zstdOn {
		return os.Stdout, func() error { return nil }, nil
	}

	level, _ := cmd.Flags().GetInt("zstd-level")
	zw, err := compression.NewWriter(os.Stdout, level)
	if err != nil {
		return nil, nil, err
	}
	return zw, zw.Close, nil
}

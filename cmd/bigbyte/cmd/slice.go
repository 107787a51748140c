package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bigbyte/bigbyte"
)

var sliceCmd = &cobra.Command{
	Use:   "slice <file> <offset> <length>",
	Short: "Extract a byte range to stdout",
	Long:  "Load a file into a block array and stream the range [offset, offset+length) to stdout.",
	Args:  cobra.ExactArgs(3),
	RunE:  runSlice,
}

func init() {
	addOutputFlags(sliceCmd)
	rootCmd.AddCommand(sliceCmd)
}

func runSlice(cmd *cobra.Command, args []string) (err error) {
	off, err := strconv.ParseUint(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("offset %q: %w", args[1], err)
	}
	length, err := strconv.ParseUint(args[2], 10, 64)
	if err != nil {
		return fmt.Errorf("length %q: %w", args[2], err)
	}

	arr, err := loadArray(cmd, args[0])
	if err != nil {
		return err
	}

	view, err := bigbyte.NewView(arr, off, length)
	if err != nil {
		return err
	}

	out, closeOut, err := outputWriter(cmd)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeOut(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if _, err := view.WriteTo(out); err != nil {
		return fmt.Errorf("slice failed: %w", err)
	}
	return nil
}

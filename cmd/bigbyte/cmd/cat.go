package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var catCmd = &cobra.Command{
	Use:   "cat <file>",
	Short: "Stream the whole array to stdout",
	Long:  "Load a file into a block array and stream every byte to stdout in order.",
	Args:  cobra.ExactArgs(1),
	RunE:  runCat,
}

func init() {
	addOutputFlags(catCmd)
	rootCmd.AddCommand(catCmd)
}

func runCat(cmd *cobra.Command, args []string) (err error) {
	arr, err := loadArray(cmd, args[0])
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

	if _, err := arr.WriteTo(out); err != nil {
		return fmt.Errorf("cat failed: %w", err)
	}
	return nil
}

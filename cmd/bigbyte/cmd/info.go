package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Show array layout for a file",
	Long:  "Load a file into a block array and report its length, block size, materialized block count, and fill factor.",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	arr, err := loadArray(cmd, args[0])
	if err != nil {
		return err
	}

	fmt.Printf("length:      %d\n", arr.Length())
	fmt.Printf("block size:  %d\n", arr.BlockSize())
	fmt.Printf("blocks:      %d\n", arr.Blocks())
	fmt.Printf("fill factor: %.3f\n", arr.FillFactor())
	return nil
}

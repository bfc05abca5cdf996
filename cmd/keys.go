package cmd

import (
	"context"
	"fmt"
	"io"

	"json-diff/core/source"

	"github.com/spf13/cobra"
)

var keysCmd = &cobra.Command{
	Use:   "keys <file>",
	Short: "Print the keys of one file",
	Long:  `Loads and validates one file of the source and prints the keys shared by its records, in document order.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup()
		if err != nil {
			return err
		}
		defer e.close()

		return runKeys(cmd.Context(), e.source, args[0], cmd.OutOrStdout())
	},
}

// runKeys prints the schema of one collection, one key per line.
func runKeys(ctx context.Context, src source.Source, name string, out io.Writer) error {
	col, err := src.Load(ctx, name)
	if err != nil {
		return err
	}
	for _, k := range col.Schema() {
		fmt.Fprintln(out, k)
	}
	return nil
}

func init() {
	RootCmd.AddCommand(keysCmd)
}

package cmd

import (
	"context"
	"fmt"
	"io"

	"json-diff/core/source"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the files offered by the source",
	Long:  `Prints the JSON files, bucket objects or tables of the configured source in natural order.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup()
		if err != nil {
			return err
		}
		defer e.close()

		return runList(cmd.Context(), e.source, cmd.OutOrStdout())
	},
}

// runList prints one source name per line.
func runList(ctx context.Context, src source.Source, out io.Writer) error {
	files, err := src.List(ctx)
	if err != nil {
		return err
	}
	for _, f := range files {
		fmt.Fprintln(out, f)
	}
	return nil
}

func init() {
	RootCmd.AddCommand(listCmd)
}

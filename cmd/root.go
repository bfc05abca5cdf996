package cmd

import (
	"fmt"
	"os"

	"json-diff/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	sourceKind string
	sourceDir  string
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "json-diff",
	Short: "Compare two JSON tables",
	Long: `json-diff compares two JSON arrays of objects that share the same keys.
Records are matched on a user-chosen identifier field and the tool reports
the rows found on one side only and the fields that differ between matched rows.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console at debug level gives readable ISO8601 timestamps.
		l, logErr := logger.New(&logger.Config{Level: "debug", Format: "console"})
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&sourceKind, "source", "", "Source kind: directory, bucket or table (default from SOURCE_KIND)")
	RootCmd.PersistentFlags().StringVar(&sourceDir, "dir", "", "Directory scanned by the directory source (default from SOURCE_DIRECTORY)")
}

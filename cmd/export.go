package cmd

import (
	"github.com/spf13/cobra"
	"github.com/threesixty-dev/threesixty/core"
	"github.com/threesixty-dev/threesixty/internal/contract"
)

// exportCmd writes the collection to Parquet files.
var exportCmd = &cobra.Command{
	Use:   "export [source]",
	Short: "Export responses and summaries to Parquet files.",
	Long: `Write the filtered responses and the ranked manager summaries to a
pair of Parquet files for downstream analysis with Spark, Pandas, DuckDB
or any other Parquet-compatible tool.

The --output-file value is used as the file prefix:
<prefix>_summaries.parquet and <prefix>_responses.parquet.

Examples:
  threesixty export reviews.xlsx --output-file q3_reviews`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteExport(rootCtx, cfg, workbookLoader, cacheManager); err != nil {
			contract.LogFatal("Cannot export data", err)
		}
	},
}

package cmd

import (
	"github.com/spf13/cobra"
	"github.com/threesixty-dev/threesixty/core"
	"github.com/threesixty-dev/threesixty/internal/contract"
)

// digestCmd produces the plain-text summary used as assistant context.
var digestCmd = &cobra.Command{
	Use:   "digest [source]",
	Short: "Produce a plain-text digest of the review data.",
	Long: `Summarize the response collection as plain text: headline stats, top
and bottom performers and competency averages. The digest is shaped to be
pasted into an AI assistant as context.

Examples:
  threesixty digest reviews.xlsx
  threesixty digest reviews.xlsx --output-file digest.txt`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteDigest(rootCtx, cfg, workbookLoader, cacheManager); err != nil {
			contract.LogFatal("Cannot build digest", err)
		}
	},
}

package cmd

import (
	"github.com/spf13/cobra"
	"github.com/threesixty-dev/threesixty/core"
	"github.com/threesixty-dev/threesixty/internal/contract"
)

// scoresCmd shows the rating frequency histogram.
var scoresCmd = &cobra.Command{
	Use:   "scores [source]",
	Short: "Show the score frequency histogram.",
	Long: `Count how often each rating (1 to 4) was given across the twelve
normal-scale survey questions.

Examples:
  # Histogram over all responses
  threesixty scores reviews.xlsx

  # Histogram for peer reviews only
  threesixty scores reviews.xlsx --relationships Peer`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteScores(rootCtx, cfg, workbookLoader, cacheManager); err != nil {
			contract.LogFatal("Cannot build score histogram", err)
		}
	},
}

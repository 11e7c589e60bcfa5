package cmd

import (
	"github.com/spf13/cobra"
	"github.com/threesixty-dev/threesixty/core"
	"github.com/threesixty-dev/threesixty/internal/contract"
)

// feedbackCmd lists the free-text feedback themes.
var feedbackCmd = &cobra.Command{
	Use:   "feedback [source]",
	Short: "List stop/start/continue feedback.",
	Long: `Collect the free-text stop-doing, start-doing and continue-doing
feedback across the response collection.

Examples:
  # All feedback
  threesixty feedback reviews.xlsx

  # Feedback for one manager as JSON
  threesixty feedback reviews.xlsx --managers "Jordan Example" --output json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteFeedback(rootCtx, cfg, workbookLoader, cacheManager); err != nil {
			contract.LogFatal("Cannot collect feedback", err)
		}
	},
}

package cmd

import (
	"github.com/spf13/cobra"
	"github.com/threesixty-dev/threesixty/core"
	"github.com/threesixty-dev/threesixty/internal/contract"
)

// competenciesCmd breaks down average scores per survey question.
var competenciesCmd = &cobra.Command{
	Use:   "competencies [source]",
	Short: "Show average scores per survey question.",
	Long: `Compute the mean score for each rated survey question across the
response collection, with the percentage of the scale maximum.

Examples:
  # Breakdown over all responses
  threesixty competencies reviews.xlsx

  # Breakdown for a single manager
  threesixty competencies reviews.xlsx --managers "Jordan Example"`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteCompetencies(rootCtx, cfg, workbookLoader, cacheManager); err != nil {
			contract.LogFatal("Cannot build competency breakdown", err)
		}
	},
}

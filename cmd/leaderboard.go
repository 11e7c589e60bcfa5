package cmd

import (
	"github.com/spf13/cobra"
	"github.com/threesixty-dev/threesixty/core"
	"github.com/threesixty-dev/threesixty/internal/contract"
)

// leaderboardCmd ranks managers by their overall review score.
var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard [source]",
	Short: "Rank managers by overall 360-review score.",
	Long: `Aggregate every survey response per manager and rank managers by their
overall score, averaged over team leadership, results orientation and
cultural fit.

Examples:
  # Rank all managers from a local workbook
  threesixty leaderboard reviews.xlsx

  # Top 10 managers as seen by direct reports only
  threesixty leaderboard reviews.xlsx --relationships "Direct report" --limit 10

  # Export the full ranking to CSV
  threesixty leaderboard reviews.xlsx --output csv --output-file ranking.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteLeaderboard(rootCtx, cfg, workbookLoader, cacheManager); err != nil {
			contract.LogFatal("Cannot build leaderboard", err)
		}
	},
}

package cmd

import (
	"github.com/spf13/cobra"
	"github.com/threesixty-dev/threesixty/core"
	"github.com/threesixty-dev/threesixty/internal/contract"
)

// relationshipsCmd shows who is reviewing the managers.
var relationshipsCmd = &cobra.Command{
	Use:   "relationships [source]",
	Short: "Show the reviewer relationship distribution.",
	Long: `Count responses per reviewer relationship (direct report, peer,
skip-level and so on). Responses without a relationship fall into the
Unknown bucket.

Examples:
  # Distribution over all responses
  threesixty relationships reviews.xlsx

  # Distribution for one manager
  threesixty relationships reviews.xlsx --managers "Jordan Example"`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteRelationships(rootCtx, cfg, workbookLoader, cacheManager); err != nil {
			contract.LogFatal("Cannot build relationship distribution", err)
		}
	},
}

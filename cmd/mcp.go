package cmd

import (
	"github.com/spf13/cobra"
	"github.com/threesixty-dev/threesixty/internal/mcp"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the review analytics MCP server",
	Long:  `Launch an MCP server that allows AI agents to query the review data via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Suppress any extra logging when running in MCP mode to avoid
		// polluting stdio which is used for the protocol.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, workbookLoader, cacheManager)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

package cmd

import (
	"github.com/huangsam/heatgrid/internal/contract"
	"github.com/huangsam/heatgrid/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the heatgrid MCP server",
	Long:  `Launch an MCP server on stdio that allows AI agents to fetch contribution heatmaps via standard tools.`,
	Args:  cobra.NoArgs,
	PreRunE: func(_ *cobra.Command, _ []string) error {
		// The slug comes with every tool call, so only shared settings are validated here
		if err := readConfig(); err != nil {
			return err
		}
		if err := contract.ProcessServerInputs(cfg, input); err != nil {
			return err
		}
		logger = contract.NewLogger(cfg.Verbose)
		return nil
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, newProfileClient())
	},
}

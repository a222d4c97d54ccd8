// Package cmd defines the command-line interface for heatgrid.
package cmd

import (
	"github.com/huangsam/heatgrid/internal/contract"
	"github.com/huangsam/heatgrid/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(mcpCmd)

	// Settings shared by the root command and the MCP server
	rootCmd.PersistentFlags().String("color", string(contract.DefaultHue), "Glyph color: red or green or blue")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().String("base-url", contract.DefaultBaseURL, "GitHub site root to fetch profiles from")
	rootCmd.PersistentFlags().String("timeout", contract.DefaultTimeout.String(), "Timeout for fetching a profile page")
	rootCmd.PersistentFlags().String("color-output", contract.DefaultColorOut, "Enable colored glyphs in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Trace profile requests on stderr")
	rootCmd.PersistentFlags().String("profile", "", "Enable profiling and write profiles to files with this prefix")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Rendering flags only make sense for a single profile
	rootCmd.Flags().StringP("year", "y", "", "Calendar year to render, e.g. 2022 (default: last twelve months)")
	rootCmd.Flags().Bool("detail", false, "Print an activity summary table after the grid")
	rootCmd.Flags().Bool("fit", false, "Drop the oldest weeks so the grid fits the terminal")
	rootCmd.Flags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	if err := viper.BindPFlags(rootCmd.Flags()); err != nil {
		contract.LogFatal("Error binding render flags", err)
	}
}

package commands

import (
	"github.com/spf13/cobra"

	"github.com/rakuda/seriesgen/cmd/seriesgen/handlers"
)

// Series returns the command that lists the configured series.
func Series() *cobra.Command {
	var (
		configPath string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "series",
		Short: "List the configured series",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Series(cmd.Context(), configPath, jsonOutput)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: seriesgen.yaml)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

package commands

import (
	"github.com/spf13/cobra"

	"github.com/rakuda/seriesgen/cmd/seriesgen/handlers"
)

// Plan returns the command that previews a series.
func Plan() *cobra.Command {
	var (
		configPath string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "plan [series] [start-phase]",
		Short: "Show the identifiers of a series without writing",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				name     string
				start    int
				hasStart bool
			)
			if len(args) > 0 {
				name = args[0]
			}
			if len(args) > 1 {
				n, err := parsePhase("start phase", args[1])
				if err != nil {
					return err
				}
				start, hasStart = n, true
			}
			return handlers.Plan(cmd.Context(), configPath, name, start, hasStart, jsonOutput)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: seriesgen.yaml)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

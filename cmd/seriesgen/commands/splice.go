package commands

import (
	"github.com/spf13/cobra"

	"github.com/rakuda/seriesgen/cmd/seriesgen/handlers"
)

// Splice returns the command that re-applies saved fragments.
func Splice() *cobra.Command {
	var opts handlers.SpliceOptions

	cmd := &cobra.Command{
		Use:   "splice <series> <start-phase> <end-phase>",
		Short: "Splice saved fragment files into the route aggregator",
		Long: `Insert the import and registration fragments of a series into the
route aggregator without regenerating anything.

The fragments are read from <output_dir>/<series>-imports.txt and
<output_dir>/<series>-registrations.txt as written by "generate".`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Series = args[0]
			start, err := parsePhase("start phase", args[1])
			if err != nil {
				return err
			}
			end, err := parsePhase("end phase", args[2])
			if err != nil {
				return err
			}
			opts.StartPhase, opts.EndPhase = start, end
			return handlers.Splice(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to configuration file (default: seriesgen.yaml)")
	cmd.Flags().StringVar(&opts.Mode, "mode", "", "Splice mode: anchored or structured (default: from config)")
	cmd.Flags().BoolVar(&opts.Lenient, "lenient", false, "Skip the import block when the entry anchor is missing")
	cmd.Flags().BoolVar(&opts.AllowDuplicate, "allow-duplicate", false, "Splice even if this series and phase range is already present")

	return cmd
}

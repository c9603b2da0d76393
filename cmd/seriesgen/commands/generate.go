package commands

import (
	"github.com/spf13/cobra"

	"github.com/rakuda/seriesgen/cmd/seriesgen/handlers"
)

// Generate returns the command that writes one series.
//
// Arguments:
//
//	[series]       Series name (default: default_series from config)
//	[start-phase]  Phase number of the first identifier
//
// Flags:
//
//	--config, -c:       Path to configuration file (default: seriesgen.yaml)
//	--dry-run:          Render and list artifacts without writing
//	--no-ui:            Skip the page artifacts
//	--no-splice:        Leave the aggregator file untouched
//	--mode:             Splice mode, anchored or structured
//	--lenient:          Skip imports instead of failing on a missing anchor
//	--allow-duplicate:  Splice even if the series banner is present
//	--metrics-file:     Write Prometheus metrics to a textfile
//	--watch, -w:        Regenerate when config or templates change
//	--s3-bucket:        Mirror artifacts to this bucket
//	--s3-prefix:        Object key prefix inside the bucket
func Generate() *cobra.Command {
	var opts handlers.GenerateOptions

	cmd := &cobra.Command{
		Use:   "generate [series] [start-phase]",
		Short: "Generate the route modules and pages of a series",
		Long: `Generate one series of identifiers.

Every adjective of the series is combined with every category. Each
combination becomes an API route module and a UI page, and the matching
import and registration lines are written as fragment files and spliced
into the route aggregator.

Without arguments the series and start phase come from default_series and
default_start_phase in seriesgen.yaml. If those are unset and the session
is interactive, you are asked to pick one.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.Series = args[0]
			}
			if len(args) > 1 {
				n, err := parsePhase("start phase", args[1])
				if err != nil {
					return err
				}
				opts.StartPhase = n
				opts.HasStartPhase = true
			}
			return handlers.Generate(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to configuration file (default: seriesgen.yaml)")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Render and list artifacts without writing anything")
	cmd.Flags().BoolVar(&opts.NoUI, "no-ui", false, "Skip the UI page artifacts")
	cmd.Flags().BoolVar(&opts.NoSplice, "no-splice", false, "Do not update the route aggregator")
	cmd.Flags().StringVar(&opts.Mode, "mode", "", "Splice mode: anchored or structured (default: from config)")
	cmd.Flags().BoolVar(&opts.Lenient, "lenient", false, "Skip the import block when the entry anchor is missing")
	cmd.Flags().BoolVar(&opts.AllowDuplicate, "allow-duplicate", false, "Splice even if this series and phase range is already present")
	cmd.Flags().StringVar(&opts.MetricsFile, "metrics-file", "", "Write Prometheus metrics to this textfile")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Regenerate artifacts when the config or templates change")
	cmd.Flags().StringVar(&opts.S3Bucket, "s3-bucket", "", "Mirror artifacts to this S3 bucket")
	cmd.Flags().StringVar(&opts.S3Prefix, "s3-prefix", "", "Object key prefix inside the S3 bucket")

	return cmd
}

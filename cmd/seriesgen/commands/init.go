package commands

import (
	"github.com/spf13/cobra"

	"github.com/rakuda/seriesgen/cmd/seriesgen/handlers"
)

// Init returns the command that writes a starter configuration.
//
// Flags:
//
//	--output, -o: Path to output file (default "seriesgen.yaml")
//	--interactive, -i: Ask for the prefix, paths and default series
//	--force, -f: Overwrite an existing file without asking
func Init() *cobra.Command {
	var (
		outputPath  string
		interactive bool
		force       bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a seriesgen.yaml with the built-in defaults",
		Long: `Write a configuration file holding the built-in word lists, colours,
category tabs and paths, ready to be edited.

Use --interactive to be asked for the identifier prefix, the output
directories, the aggregator file and an optional default series.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), outputPath, interactive, force)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "seriesgen.yaml", "Output file path")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Ask for paths and defaults")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file without asking")

	return cmd
}

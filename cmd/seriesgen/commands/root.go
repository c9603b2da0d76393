// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument parsing,
// flag binding, and validation. Command execution is delegated to handler
// functions in the handlers package.
package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rakuda/seriesgen/internal/logging"
)

// logger is built per invocation and synced when the command returns.
var logger *zap.Logger

// Root returns the root command for the seriesgen CLI.
func Root() *cobra.Command {
	var (
		verbose bool
		logJSON bool
	)

	cmd := &cobra.Command{
		Use:           "seriesgen",
		Short:         "Generate route and page series from word lists",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			logger, err = logging.New(logging.Options{Verbose: verbose, JSON: logJSON})
			if err != nil {
				return err
			}
			cmd.SetContext(logging.NewContext(cmd.Context(), logging.Logr(logger)))
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "Log in JSON instead of console format")

	// Core commands
	cmd.AddCommand(Generate())
	cmd.AddCommand(Splice())
	cmd.AddCommand(Plan())
	cmd.AddCommand(Series())
	cmd.AddCommand(Init())

	// Utility commands
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}

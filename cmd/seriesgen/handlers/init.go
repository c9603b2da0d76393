package handlers

import (
	"context"
	"fmt"

	"github.com/rakuda/seriesgen/internal/config"
	"github.com/rakuda/seriesgen/internal/config/wizard"
)

// Factory function variables for init - can be replaced in tests.
var (
	// fileExists checks if a file exists.
	fileExists = wizard.FileExists

	// confirmOverwrite asks before replacing an existing file.
	confirmOverwrite = wizard.ConfirmOverwrite

	// runInitWizard runs the init prompts.
	runInitWizard = wizard.RunInit

	// writeSpec writes the config to a file.
	writeSpec = wizard.WriteSpec
)

// Init writes a seriesgen.yaml holding the built-in defaults, optionally
// adjusted through prompts.
func Init(ctx context.Context, outputPath string, interactive, force bool) error {
	if fileExists(outputPath) && !force {
		ok, err := confirmOverwrite(outputPath)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Aborted.")
			return nil
		}
	}

	cfg := config.Default()
	if interactive {
		printWelcome()
		result, err := runInitWizard(ctx, cfg)
		if err != nil {
			return fmt.Errorf("wizard canceled: %w", err)
		}
		cfg = wizard.BuildSpec(result, cfg)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	if err := writeSpec(cfg, outputPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	printInitSuccess(outputPath, cfg)
	return nil
}

func printWelcome() {
	fmt.Println()
	fmt.Println("seriesgen - route and page series generator")
	fmt.Println("===========================================")
	fmt.Println()
	fmt.Println("Answer a few questions about where generated files go.")
	fmt.Println("Word lists, colours and templates keep their defaults and can be edited in the file.")
	fmt.Println()
}

func printInitSuccess(outputPath string, cfg *config.Spec) {
	fmt.Println()
	fmt.Println("Configuration saved!")
	fmt.Println()
	fmt.Printf("  File: %s\n", outputPath)
	fmt.Println()

	fmt.Println("Project Summary")
	fmt.Println("---------------")
	fmt.Printf("  Prefix:      %s\n", cfg.Prefix)
	fmt.Printf("  Routes:      %s\n", cfg.Paths.RoutesDir)
	fmt.Printf("  Pages:       %s\n", cfg.Paths.PagesDir)
	fmt.Printf("  Fragments:   %s\n", cfg.Paths.OutputDir)
	fmt.Printf("  Aggregator:  %s\n", cfg.Paths.RoutesFile)
	fmt.Printf("  Series:      %d\n", len(cfg.Series))
	if cfg.DefaultSeries != "" {
		fmt.Printf("  Default:     %s from phase %d\n", cfg.DefaultSeries, cfg.DefaultStartPhase)
	}
	fmt.Println()

	fmt.Println("Next steps:")
	if cfg.DefaultSeries != "" {
		fmt.Println("  seriesgen generate")
	} else {
		fmt.Println("  seriesgen series")
		fmt.Println("  seriesgen generate <series> <start-phase>")
	}
	fmt.Println()
}

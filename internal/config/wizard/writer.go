package wizard

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rakuda/seriesgen/internal/config"
)

// Function variable for dependency injection in tests.
var confirmOverwrite = defaultConfirmOverwrite

// WriteSpec writes the config to a YAML file with a descriptive header.
func WriteSpec(cfg *config.Spec, outputPath string) error {
	yamlBytes, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(generateHeader(outputPath))
	sb.WriteString("\n")
	sb.Write(yamlBytes)

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	if err := os.WriteFile(outputPath, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

// generateHeader creates the YAML file header comment.
func generateHeader(outputPath string) string {
	return fmt.Sprintf(`# seriesgen configuration
# Generated by: seriesgen init
# Generated at: %s
#
# Optional environment overrides:
#   SERIESGEN_ROUTES_FILE, SERIESGEN_OUTPUT_DIR, SERIESGEN_S3_BUCKET, ...
#
# Usage:
#   seriesgen generate <series> <start-phase> -c %s
`, time.Now().Format(time.RFC3339), outputPath)
}

// FileExists checks if a file exists at the given path.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ConfirmOverwrite prompts the user to confirm overwriting an existing file.
func ConfirmOverwrite(path string) (bool, error) {
	return confirmOverwrite(path)
}

// defaultConfirmOverwrite is the default implementation that prompts via stdin.
func defaultConfirmOverwrite(path string) (bool, error) {
	fmt.Printf("\nFile already exists: %s\n", path)
	fmt.Print("Overwrite? (y/n): ")

	var response string
	if _, err := fmt.Scanln(&response); err != nil {
		return false, err
	}

	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes", nil
}

package splice

import (
	"fmt"
	"os"

	"github.com/rakuda/seriesgen/internal/config"
)

// Func is the signature shared by Anchored and Structured.
type Func func(content string, f Fragments, opts Options) (string, *Result, error)

// ForMode returns the splice function of a configured mode.
func ForMode(mode config.SpliceMode) (Func, error) {
	switch mode {
	case "", config.SpliceAnchored:
		return Anchored, nil
	case config.SpliceStructured:
		return Structured, nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrInvalidSpliceMode, mode)
	}
}

// File applies fn to the file at path and writes the result back in place,
// keeping the file mode. The file is left untouched when fn fails or
// changes nothing.
func File(path string, fn Func, f Fragments, opts Options) (*Result, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat aggregator: %w", err)
	}
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read aggregator: %w", err)
	}

	out, res, err := fn(string(data), f, opts)
	if err != nil {
		return res, err
	}
	if !res.Changed() {
		return res, nil
	}

	if err := os.WriteFile(path, []byte(out), info.Mode().Perm()); err != nil {
		return res, fmt.Errorf("failed to write aggregator: %w", err)
	}
	return res, nil
}

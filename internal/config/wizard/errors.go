package wizard

import "errors"

// Validation errors for the interactive prompts.
var (
	errStartPhaseRequired = errors.New("start phase is required")
	errStartPhaseInvalid  = errors.New("start phase must be a positive integer")
	errPrefixRequired     = errors.New("prefix is required")
	errPathRequired       = errors.New("path is required")
	errPathAbsolute       = errors.New("path must be relative to the project root")
	errNoSeries           = errors.New("no series configured")
)

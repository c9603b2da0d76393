// Package logging builds the zap logger of the CLI and exposes it as a
// logr.Logger to the internal packages.
package logging

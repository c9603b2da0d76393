package config

import (
	"errors"
	"fmt"
)

// Configuration error causes. Callers match them with errors.Is.
var (
	ErrUnknownSeries      = errors.New("unknown series")
	ErrUnknownCategory    = errors.New("unknown category")
	ErrMissingTabs        = errors.New("no tab metadata registered for category")
	ErrInvalidToken       = errors.New("invalid word-list token")
	ErrDuplicateToken     = errors.New("duplicate word-list token")
	ErrEmptyColors        = errors.New("color palette is empty")
	ErrListLengthMismatch = errors.New("word lists have mismatched lengths")
	ErrInvalidLayout      = errors.New("invalid series layout")
	ErrInvalidSpliceMode  = errors.New("invalid splice mode")
)

// ConfigError is returned for every problem found in the configuration
// before any file is written.
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s: %v", e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func configErr(field string, cause error, format string, args ...any) error {
	if format == "" {
		return &ConfigError{Field: field, Err: cause}
	}
	return &ConfigError{Field: field, Err: fmt.Errorf("%w: %s", cause, fmt.Sprintf(format, args...))}
}

// IsConfigError reports whether err is (or wraps) a *ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

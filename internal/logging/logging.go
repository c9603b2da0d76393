package logging

import (
	"context"
	"fmt"
	"io"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options configure New.
type Options struct {
	// Verbose enables debug output, which includes logr V(1) messages.
	Verbose bool
	// JSON selects the production JSON encoder instead of the console one.
	JSON bool
	// Output receives log lines. Defaults to os.Stderr.
	Output io.Writer
}

// New builds a zap logger. The caller syncs it when the command returns.
func New(opts Options) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if opts.Verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if !opts.JSON {
		config.Encoding = "console"
		config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	if opts.Output == nil {
		logger, err := config.Build()
		if err != nil {
			return nil, fmt.Errorf("failed to initialize logger: %w", err)
		}
		return logger, nil
	}

	var enc zapcore.Encoder
	if opts.JSON {
		enc = zapcore.NewJSONEncoder(config.EncoderConfig)
	} else {
		enc = zapcore.NewConsoleEncoder(config.EncoderConfig)
	}
	core := zapcore.NewCore(enc, zapcore.AddSync(opts.Output), config.Level)
	return zap.New(core), nil
}

// Logr wraps a zap logger.
func Logr(z *zap.Logger) logr.Logger {
	if z == nil {
		return logr.Discard()
	}
	return zapr.NewLogger(z)
}

// NewContext returns a context carrying log.
func NewContext(ctx context.Context, log logr.Logger) context.Context {
	return logr.NewContext(ctx, log)
}

// FromContext returns the logger of ctx, or a discarding logger.
func FromContext(ctx context.Context) logr.Logger {
	if log, err := logr.FromContext(ctx); err == nil {
		return log
	}
	return logr.Discard()
}

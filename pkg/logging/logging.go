// Package logging builds the zap logger. The dashboard owns the terminal, so
// logs only ever go to a file.
package logging

import (
	"github.com/m-mizutani/goerr/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options selects where and how much to log.
type Options struct {
	// File receives JSON log lines. Empty disables logging.
	File    string
	Level   zapcore.Level
	Verbose bool
}

// New returns a logger writing to opts.File, or a no-op logger when no file
// is configured. Verbose forces debug level.
func New(opts Options) (*zap.Logger, error) {
	if opts.File == "" {
		return zap.NewNop(), nil
	}
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(opts.Level)
	if opts.Verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	config.OutputPaths = []string{opts.File}
	config.ErrorOutputPaths = []string{opts.File}
	config.Sampling = nil

	logger, err := config.Build()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to initialize logger", goerr.V("file", opts.File))
	}
	return logger, nil
}

// Package logging builds the zap logger shared by all commands.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options controls logger construction.
type Options struct {
	// Verbosity 0 logs warnings and errors, 1 adds info, 2 adds debug.
	Verbosity int
	// LogFile, when set, receives JSON logs at debug level in addition to
	// the console output.
	LogFile string
	// Console defaults to stderr.
	Console io.Writer
}

// Level maps a -v count to a zap level.
func Level(verbosity int) zapcore.Level {
	switch {
	case verbosity >= 2:
		return zapcore.DebugLevel
	case verbosity == 1:
		return zapcore.InfoLevel
	default:
		return zapcore.WarnLevel
	}
}

// New returns a logger and a cleanup func that syncs and closes the log file.
func New(opts Options) (*zap.Logger, *zap.AtomicLevel, func(), error) {
	console := opts.Console
	if console == nil {
		console = os.Stderr
	}
	level := zap.NewAtomicLevelAt(Level(opts.Verbosity))

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout(time.TimeOnly)
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(console), level),
	}

	var file *os.File
	if opts.LogFile != "" {
		f, err := openLogFile(opts.LogFile)
		if err != nil {
			return nil, nil, nil, err
		}
		file = f
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.Lock(f),
			zapcore.DebugLevel,
		))
	}

	logger := zap.New(zapcore.NewTee(cores...)).Named("wintitle")
	cleanup := func() {
		_ = logger.Sync()
		if file != nil {
			_ = file.Close()
		}
	}
	return logger, &level, cleanup, nil
}

func openLogFile(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		_ = os.MkdirAll(dir, 0o755)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

// Package logging builds the console logger used across the tool. Output is
// plain console lines on stdout: every rename, anomaly and skipped no-op is
// user-facing, so there are no timestamps or caller annotations.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns the run logger. verbose enables debug lines (per-file
// classification detail); quiet restricts output to warnings and errors.
// verbose loses against quiet when both are set.
func New(verbose, quiet bool) *zap.SugaredLogger {
	level := zapcore.InfoLevel
	switch {
	case quiet:
		level = zapcore.WarnLevel
	case verbose:
		level = zapcore.DebugLevel
	}

	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = ""
	enc.CallerKey = ""
	enc.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(enc),
		zapcore.Lock(os.Stdout),
		level,
	)
	return zap.New(core).Sugar()
}

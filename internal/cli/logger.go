// SPDX-License-Identifier: MIT

package cli

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/symeig/tridiag"
)

// newLogger builds the diagnostics logger. Verbose runs use the development
// console encoder at debug level; otherwise JSON at info level. Output goes to
// w (the command's stderr) so that stdout stays machine-readable.
func newLogger(verbose bool, w io.Writer) *zap.Logger {
	encCfg := zap.NewProductionEncoderConfig()
	level := zapcore.InfoLevel
	enc := zapcore.NewJSONEncoder(encCfg)
	if verbose {
		encCfg = zap.NewDevelopmentEncoderConfig()
		level = zapcore.DebugLevel
		enc = zapcore.NewConsoleEncoder(encCfg)
	}
	core := zapcore.NewCore(enc, zapcore.AddSync(w), zap.NewAtomicLevelAt(level))

	return zap.New(core)
}

// sweepLogger returns a tridiag sweep hook that logs each sweep at debug level.
func sweepLogger(log *zap.Logger) tridiag.Option {
	if !log.Core().Enabled(zapcore.DebugLevel) {
		return nil
	}

	return tridiag.WithSweepHook(func(sw tridiag.Sweep) {
		log.Debug("qr sweep",
			zap.Int("iteration", sw.Iteration),
			zap.Int("window", sw.Window),
			zap.Float64("shift", sw.Shift),
			zap.Float64("trailing", sw.Trailing),
		)
	})
}

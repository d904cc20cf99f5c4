// Package logging builds the zap logger shared by the command tree. Debug
// output is written only when verbose logging is requested.
package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewWriter returns a debug-level console logger writing to w. The command
// tree uses it so log lines follow cobra's error writer.
func NewWriter(w io.Writer, verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), zapcore.DebugLevel)
	return zap.New(core)
}

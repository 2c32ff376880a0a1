// SPDX-License-Identifier: Apache-2.0

// Package logger provides a thin wrapper around zerolog.Logger used
// throughout the collector agent.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on
// *Logger. The package also owns the mapping between user-facing log
// level names and zerolog levels; the configuration resolver applies a
// user-supplied level via SetGlobalLevel before emitting any further
// resolution diagnostics.
package logger

import (
	"context"
	"os"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing
// the agent to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger
}

// New constructs a *Logger for the given role label (e.g. "collector",
// "downloader"). Output is JSON on stdout with a "role" field, a
// timestamp, and the calling function name under "func". The global
// level starts at Info until the resolver applies the configured level.
func New(role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(os.Stdout).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// Nop returns a *Logger that discards all log output. Intended for tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger inheriting all fields of the
// receiver. The child can be enriched with additional context fields
// without affecting the parent.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromContext extracts the zerolog.Logger stored in ctx and returns it
// as a *Logger. zerolog falls back to its global logger when none is
// attached, so this never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}

// ParseLevel maps a user-facing level name ("trace", "debug", "info",
// "warn", "error", "fatal", "panic") to a zerolog level. The second
// return value is false for unknown names; callers keep their previous
// level in that case.
func ParseLevel(name string) (zerolog.Level, bool) {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil || level == zerolog.NoLevel {
		return zerolog.NoLevel, false
	}

	return level, true
}

// SetGlobalLevel applies level process-wide.
func SetGlobalLevel(level zerolog.Level) {
	zerolog.SetGlobalLevel(level)
}

// GlobalLevelName reports the name of the effective process-wide level.
func GlobalLevelName() string {
	return zerolog.GlobalLevel().String()
}

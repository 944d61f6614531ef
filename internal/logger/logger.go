// Package logger is the structured logger shared by the resolver and the CLI.
//
// Every resolution logs under a theme-scoped logger (ForTheme); failed
// entries are written with Failure so kind, entry, slot and code always land
// in the same fields.
package logger

import (
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog"

	apperrors "github.com/alexisbeaulieu97/painter/pkg/errors"
)

// Options configures New. Level is a zerolog level name and defaults to
// info. Writer defaults to stderr; stdout belongs to command output.
type Options struct {
	Level         string
	HumanReadable bool
	Writer        io.Writer
}

// Logger is a zerolog logger with the field helpers painter uses. A nil
// *Logger discards everything, so callers never check for one.
type Logger struct {
	zl zerolog.Logger
}

func New(opts Options) (*Logger, error) {
	level, err := parseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	zl := zerolog.New(sink(opts)).Level(level).With().Timestamp().Logger()
	return &Logger{zl: zl}, nil
}

func parseLevel(name string) (zerolog.Level, error) {
	if name == "" {
		return zerolog.InfoLevel, nil
	}
	return zerolog.ParseLevel(strings.ToLower(name))
}

func sink(opts Options) io.Writer {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}
	if !opts.HumanReadable {
		return w
	}
	return zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
}

// Enabled reports whether entries at level would be written.
func (l *Logger) Enabled(level zerolog.Level) bool {
	return l != nil && l.zl.GetLevel() <= level
}

// WithFields derives a logger that writes fields on every entry. Keys are
// added in sorted order so output is stable.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	if l == nil {
		return nil
	}

	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	ctx := l.zl.With()
	for _, key := range keys {
		ctx = ctx.Interface(key, fields[key])
	}
	return &Logger{zl: ctx.Logger()}
}

// ForTheme scopes l to one theme document.
func (l *Logger) ForTheme(name string) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{zl: l.zl.With().Str("theme", name).Logger()}
}

// Failure writes a warning for one failed theme entry.
func (l *Logger) Failure(err *apperrors.ThemeError) {
	if l == nil || err == nil {
		return
	}

	event := l.zl.Warn().
		Str("code", string(err.Code)).
		Str("kind", err.Kind).
		Str("entry", err.Entry)
	if err.Slot != apperrors.NoSlot {
		event = event.Int("slot", err.Slot).Str("slot_label", err.SlotLabel)
	}
	if err.Ref != "" {
		event = event.Str("ref", err.Ref)
	}
	event.Msg(err.Error())
}

func (l *Logger) Info(msg string) {
	if l != nil {
		l.zl.Info().Msg(msg)
	}
}

func (l *Logger) Debug(msg string) {
	if l != nil {
		l.zl.Debug().Msg(msg)
	}
}

func (l *Logger) Warn(msg string) {
	if l != nil {
		l.zl.Warn().Msg(msg)
	}
}

// Error writes err under the "error" key.
func (l *Logger) Error(err error, msg string) {
	if l == nil {
		return
	}
	event := l.zl.Error()
	if err != nil {
		event = event.Err(err)
	}
	event.Msg(msg)
}

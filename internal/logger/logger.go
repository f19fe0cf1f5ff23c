package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options describes logger configuration supplied at creation time.
type Options struct {
	Level         string
	HumanReadable bool
	Writer        io.Writer
}

// Logger wraps zerolog to provide a simplified API for the application.
type Logger struct {
	base zerolog.Logger
}

// New creates a configured Logger instance based on Options. Logs go to
// stderr by default so rendered fields on stdout stay clean.
func New(opts Options) (*Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, err
		}
		level = parsed
	}

	var output io.Writer = writer
	if opts.HumanReadable {
		console := zerolog.NewConsoleWriter()
		console.Out = writer
		console.TimeFormat = time.RFC3339
		output = console
	}

	logger := zerolog.New(output).Level(level).With().Timestamp().Logger()
	return &Logger{base: logger}, nil
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{base: zerolog.Nop()}
}

// WithFields returns a derived logger that always writes the supplied fields.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	if l == nil {
		return nil
	}

	builder := l.base.With()
	for key, value := range fields {
		builder = builder.Interface(key, value)
	}

	derived := Logger{base: builder.Logger()}
	return &derived
}

// With returns a derived logger carrying alternating key/value pairs.
func (l *Logger) With(kv ...any) *Logger {
	if l == nil {
		return nil
	}
	derived := Logger{base: l.base.With().Fields(pairs(kv)).Logger()}
	return &derived
}

// Enabled reports whether entries at level would be written.
func (l *Logger) Enabled(level string) bool {
	if l == nil {
		return false
	}
	parsed, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return false
	}
	return parsed >= l.base.GetLevel()
}

// Info writes an informational log entry.
func (l *Logger) Info(msg string, kv ...any) {
	if l == nil {
		return
	}
	l.base.Info().Fields(pairs(kv)).Msg(msg)
}

// Debug writes a debug-level log entry if enabled.
func (l *Logger) Debug(msg string, kv ...any) {
	if l == nil {
		return
	}
	l.base.Debug().Fields(pairs(kv)).Msg(msg)
}

// Warn writes a warning level log entry.
func (l *Logger) Warn(msg string, kv ...any) {
	if l == nil {
		return
	}
	l.base.Warn().Fields(pairs(kv)).Msg(msg)
}

// Error writes an error log entry including the supplied error context.
func (l *Logger) Error(err error, msg string, kv ...any) {
	if l == nil {
		return
	}
	event := l.base.Error()
	if err != nil {
		event = event.Err(err)
	}
	event.Fields(pairs(kv)).Msg(msg)
}

// pairs turns alternating key/value arguments into a field map. A trailing
// key without a value is logged under "!BADKEY".
func pairs(kv []any) map[string]any {
	if len(kv) == 0 {
		return nil
	}
	fields := make(map[string]any, (len(kv)+1)/2)
	for i := 0; i < len(kv); i += 2 {
		key := fmt.Sprint(kv[i])
		if i+1 >= len(kv) {
			fields["!BADKEY"] = kv[i]
			break
		}
		fields[key] = kv[i+1]
	}
	return fields
}

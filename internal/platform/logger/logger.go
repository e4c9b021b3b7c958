package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"
)

type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return Debug
	case "info", "":
		return Info
	case "warn", "warning":
		return Warn
	case "error":
		return Error
	default:
		return Info
	}
}

func (l Level) String() string {
	switch l {
	case Debug:
		return "debug"
	case Info:
		return "info"
	case Warn:
		return "warn"
	case Error:
		return "error"
	default:
		return "info"
	}
}

func (l Level) slog() slog.Level {
	switch l {
	case Debug:
		return slog.LevelDebug
	case Warn:
		return slog.LevelWarn
	case Error:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON
	default:
		return FormatText
	}
}

type Logger interface {
	With(fields map[string]any) Logger

	Debug(msg string, fields map[string]any)
	Info(msg string, fields map[string]any)
	Warn(msg string, fields map[string]any)
	Error(msg string, fields map[string]any)
}

// SlogLogger adapta la interfaz de campos (map) sobre log/slog.
type SlogLogger struct {
	sl *slog.Logger
}

type Options struct {
	Level  Level
	Format Format
	App    string

	// Output por defecto os.Stdout.
	Output io.Writer
}

func New(opts Options) Logger {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	hopts := &slog.HandlerOptions{Level: opts.Level.slog()}
	var h slog.Handler
	switch opts.Format {
	case FormatJSON:
		h = slog.NewJSONHandler(out, hopts)
	default:
		h = slog.NewTextHandler(out, hopts)
	}

	sl := slog.New(h)
	if app := strings.TrimSpace(opts.App); app != "" {
		sl = sl.With("app", app)
	}
	return &SlogLogger{sl: sl}
}

// Noop descarta todo; útil en tests.
func Noop() Logger {
	return &SlogLogger{sl: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// Slog expone el *slog.Logger subyacente (p.ej. para slog.SetDefault).
func (l *SlogLogger) Slog() *slog.Logger { return l.sl }

func (l *SlogLogger) With(fields map[string]any) Logger {
	if len(fields) == 0 {
		return l
	}
	return &SlogLogger{sl: l.sl.With(attrs(fields)...)}
}

func (l *SlogLogger) Debug(msg string, fields map[string]any) { l.log(Debug, msg, fields) }
func (l *SlogLogger) Info(msg string, fields map[string]any)  { l.log(Info, msg, fields) }
func (l *SlogLogger) Warn(msg string, fields map[string]any)  { l.log(Warn, msg, fields) }
func (l *SlogLogger) Error(msg string, fields map[string]any) { l.log(Error, msg, fields) }

func (l *SlogLogger) log(lvl Level, msg string, fields map[string]any) {
	l.sl.Log(context.Background(), lvl.slog(), msg, attrs(fields)...)
}

// attrs ordena las keys para salida estable (útil en tests/logs).
func attrs(fields map[string]any) []any {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		if strings.TrimSpace(k) == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]any, 0, len(keys))
	for _, k := range keys {
		v := fields[k]
		if err, ok := v.(error); ok && err != nil {
			v = err.Error()
		}
		out = append(out, slog.Any(k, v))
	}
	return out
}

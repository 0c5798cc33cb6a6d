// internal/platform/logx/logx.go
package logx

import (
	"io"
	"os"
	"strings"

	charmlog "github.com/charmbracelet/log"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// EnvLevel names the environment variable holding the default level.
const EnvLevel = "DEPBOOT_LOG_LEVEL"

type Logger interface {
	Debug(msg string, kv ...any)
	Info(msg string, kv ...any)
	Warn(msg string, kv ...any)
	Err(err error, kv ...any)
	With(kv ...any) Logger
	SetLevel(lvl Level)
}

type charmLogger struct {
	lg *charmlog.Logger
}

// New creates a stderr logger whose level comes from DEPBOOT_LOG_LEVEL.
func New() Logger {
	return NewWithWriter(os.Stderr, parseLevel(os.Getenv(EnvLevel)))
}

// NewWithLevel creates a stderr logger with a specific log level.
func NewWithLevel(lvl Level) Logger {
	return NewWithWriter(os.Stderr, lvl)
}

// NewSilent creates a logger that only outputs errors (quiet mode).
func NewSilent() Logger {
	return NewWithLevel(LevelError)
}

// NewWithWriter creates a logger writing to w.
func NewWithWriter(w io.Writer, lvl Level) Logger {
	lg := charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           toCharm(lvl),
	})
	return &charmLogger{lg: lg}
}

func (c *charmLogger) With(kv ...any) Logger {
	return &charmLogger{lg: c.lg.With(kv...)}
}

func (c *charmLogger) SetLevel(lvl Level) {
	c.lg.SetLevel(toCharm(lvl))
}

func (c *charmLogger) Debug(msg string, kv ...any) { c.lg.Debug(msg, kv...) }
func (c *charmLogger) Info(msg string, kv ...any)  { c.lg.Info(msg, kv...) }
func (c *charmLogger) Warn(msg string, kv ...any)  { c.lg.Warn(msg, kv...) }
func (c *charmLogger) Err(err error, kv ...any) {
	if err == nil {
		return
	}
	kv = append([]any{"error", err.Error()}, kv...)
	c.lg.Error("", kv...)
}

func toCharm(l Level) charmlog.Level {
	switch l {
	case LevelDebug:
		return charmlog.DebugLevel
	case LevelWarn:
		return charmlog.WarnLevel
	case LevelError:
		return charmlog.ErrorLevel
	default:
		return charmlog.InfoLevel
	}
}

// ParseLevel maps a level name to a Level; unknown names yield LevelInfo.
func ParseLevel(s string) Level {
	return parseLevel(s)
}

func parseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug", "dbg":
		return LevelDebug
	case "info", "inf", "":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "err", "error":
		return LevelError
	default:
		return LevelInfo
	}
}

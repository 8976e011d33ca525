// Package logger wraps charmbracelet/log behind a small structured Logger
// interface so packages can log without choosing an output format.
package logger

import (
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
)

// Level is a textual log level as it appears in config files and flags.
type Level string

const (
	DebugLevel    Level = "debug"
	InfoLevel     Level = "info"
	WarnLevel     Level = "warn"
	ErrorLevel    Level = "error"
	DisabledLevel Level = "disabled"
)

// Logger is the structured logger used across the pipeline.
type Logger interface {
	Debug(msg string, keyvals ...any)
	Info(msg string, keyvals ...any)
	Warn(msg string, keyvals ...any)
	Error(msg string, keyvals ...any)
	With(keyvals ...any) Logger
}

// Config controls logger construction.
type Config struct {
	Level      Level
	Output     io.Writer
	JSON       bool
	TimeFormat string
}

type charmLogger struct {
	l *charmlog.Logger
}

// DefaultConfig logs info and above as text to stderr.
func DefaultConfig() (cfg *Config) {
	cfg = &Config{
		Level:      InfoLevel,
		Output:     os.Stderr,
		TimeFormat: "15:04:05",
	}
	return cfg
}

// ToCharmlogLevel maps a Level onto the charm log level, defaulting to info.
func (lvl Level) ToCharmlogLevel() (level charmlog.Level) {
	switch lvl {
	case DebugLevel:
		level = charmlog.DebugLevel
	case InfoLevel:
		level = charmlog.InfoLevel
	case WarnLevel:
		level = charmlog.WarnLevel
	case ErrorLevel:
		level = charmlog.ErrorLevel
	case DisabledLevel:
		level = charmlog.Level(1000)
	default:
		level = charmlog.InfoLevel
	}
	return level
}

// New builds a Logger from cfg. A nil cfg uses DefaultConfig.
func New(cfg *Config) (logger Logger) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	l := charmlog.NewWithOptions(out, charmlog.Options{
		ReportTimestamp: cfg.TimeFormat != "",
		TimeFormat:      cfg.TimeFormat,
		Level:           cfg.Level.ToCharmlogLevel(),
	})
	if cfg.JSON {
		l.SetFormatter(charmlog.JSONFormatter)
	} else {
		l.SetFormatter(charmlog.TextFormatter)
	}

	logger = &charmLogger{l: l}
	return logger
}

// Discard returns a Logger that drops every record.
func Discard() (logger Logger) {
	logger = New(&Config{Level: DisabledLevel, Output: io.Discard})
	return logger
}

// OrDiscard returns l, or a discarding logger when l is nil.
func OrDiscard(l Logger) (logger Logger) {
	logger = l
	if logger == nil {
		logger = Discard()
	}
	return logger
}

func (c *charmLogger) Debug(msg string, keyvals ...any) {
	c.l.Debug(msg, keyvals...)
}

func (c *charmLogger) Info(msg string, keyvals ...any) {
	c.l.Info(msg, keyvals...)
}

func (c *charmLogger) Warn(msg string, keyvals ...any) {
	c.l.Warn(msg, keyvals...)
}

func (c *charmLogger) Error(msg string, keyvals ...any) {
	c.l.Error(msg, keyvals...)
}

func (c *charmLogger) With(keyvals ...any) (logger Logger) {
	logger = &charmLogger{l: c.l.With(keyvals...)}
	return logger
}

package utils

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"
)

// Level orders log output; messages below the logger's level are dropped
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLevel maps "debug", "info", "warn" or "error" to a Level, defaulting to info
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Logger wraps standard log with level-based output
type Logger struct {
	level Level
	info  *log.Logger
	warn  *log.Logger
	error *log.Logger
	debug *log.Logger
}

// NewLogger creates a logger writing info/debug/warn to stdout and errors to stderr
func NewLogger(level Level) *Logger {
	return newLogger(level, os.Stdout, os.Stderr)
}

// NewLoggerTo sends every level to w. Used by tests and when output is redirected.
func NewLoggerTo(level Level, w io.Writer) *Logger {
	return newLogger(level, w, w)
}

func newLogger(level Level, out, errOut io.Writer) *Logger {
	flags := log.Lmsgprefix
	return &Logger{
		level: level,
		info:  log.New(out, "[INFO]  ", flags),
		warn:  log.New(out, "[WARN]  ", flags),
		error: log.New(errOut, "[ERROR] ", flags),
		debug: log.New(out, "[DEBUG] ", flags),
	}
}

func (l *Logger) prefix() string {
	return fmt.Sprintf(" %s ", time.Now().Format("15:04:05"))
}

func (l *Logger) Info(msg string, args ...interface{}) {
	if l.level <= LevelInfo {
		l.info.Printf(l.prefix()+msg, args...)
	}
}

func (l *Logger) Warn(msg string, args ...interface{}) {
	if l.level <= LevelWarn {
		l.warn.Printf(l.prefix()+msg, args...)
	}
}

func (l *Logger) Error(msg string, args ...interface{}) {
	l.error.Printf(l.prefix()+msg, args...)
}

func (l *Logger) Debug(msg string, args ...interface{}) {
	if l.level <= LevelDebug {
		l.debug.Printf(l.prefix()+msg, args...)
	}
}

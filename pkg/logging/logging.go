package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const (
	EnvLogLevel = "L10NLINT_LOG_LEVEL"
	EnvLogFile  = "L10NLINT_LOG_FILE"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// Config controls the process-wide logger. Diagnostics always go to stderr
// so they never mix with the summary on stdout; FilePath adds a file sink.
type Config struct {
	Level    Level
	FilePath string
}

type logger struct {
	mu     sync.Mutex
	level  Level
	logger *log.Logger
	file   *os.File
}

var defaultLogger = newLogger()

func newLogger() *logger {
	return &logger{
		level:  LevelInfo,
		logger: log.New(os.Stderr, "", log.LstdFlags|log.LUTC),
	}
}

// ConfigureDefault applies L10NLINT_LOG_LEVEL and L10NLINT_LOG_FILE to the
// process-wide logger.
func ConfigureDefault() error {
	return defaultLogger.configure(Config{
		Level:    ParseLevel(os.Getenv(EnvLogLevel)),
		FilePath: os.Getenv(EnvLogFile),
	})
}

func (l *logger) configure(cfg Config) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		l.file.Close()
		l.file = nil
	}
	writers := []io.Writer{os.Stderr}
	if cfg.FilePath != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0o755); err != nil {
			return err
		}
		f, err := os.OpenFile(cfg.FilePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		l.file = f
		writers = append(writers, f)
	}
	l.logger.SetOutput(io.MultiWriter(writers...))
	l.level = cfg.Level
	return nil
}

// ParseLevel maps a level name to a Level, defaulting to info.
func ParseLevel(value string) Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
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

func (l *logger) logf(level Level, format string, args ...any) {
	l.mu.Lock()
	enabled := level >= l.level
	out := l.logger
	l.mu.Unlock()
	if !enabled || out == nil {
		return
	}
	out.Printf("[%s] %s", level, fmt.Sprintf(format, args...))
}

func Debugf(format string, args ...any) { defaultLogger.logf(LevelDebug, format, args...) }

func Infof(format string, args ...any) { defaultLogger.logf(LevelInfo, format, args...) }

func Warnf(format string, args ...any) { defaultLogger.logf(LevelWarn, format, args...) }

func Errorf(format string, args ...any) { defaultLogger.logf(LevelError, format, args...) }

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// Package logging builds the logger shared by the CLI and the splitter.
// Messages go to stdout and to a per-run log file, each with its own level.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	// DefaultDir is the folder holding per-run log files.
	DefaultDir = "run_logs"
	// FileTimeLayout names each log file after the minute the run started.
	FileTimeLayout = "200601021504"
)

// Config configures the two log sinks.
type Config struct {
	// Dir holds the log files. Empty means DefaultDir.
	Dir string
	// StdoutLevel is the minimum level written to Stdout.
	StdoutLevel zerolog.Level
	// FileLevel is the minimum level written to the log file.
	FileLevel zerolog.Level
	// DisableFile skips the log file entirely.
	DisableFile bool
	// Stdout overrides os.Stdout.
	Stdout io.Writer
	// Now overrides time.Now when naming the log file.
	Now func() time.Time
}

// DefaultConfig returns info-level stdout and debug-level file logging.
func DefaultConfig() Config {
	return Config{
		Dir:         DefaultDir,
		StdoutLevel: zerolog.InfoLevel,
		FileLevel:   zerolog.DebugLevel,
	}
}

// Logger bundles the configured logger with the file it writes to.
type Logger struct {
	zerolog.Logger
	// Path is the log file path, empty when file logging is disabled.
	Path string
	file *os.File
}

// Close flushes and closes the log file.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

// New creates the log folder if needed and returns a logger writing to
// stdout and to <Dir>/<YYYYMMDDHHMM>.log.
func New(cfg Config) (*Logger, error) {
	stdout := cfg.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	writers := []io.Writer{
		&zerolog.FilteredLevelWriter{
			Writer: zerolog.LevelWriterAdapter{Writer: zerolog.ConsoleWriter{
				Out:        stdout,
				TimeFormat: time.DateTime,
				NoColor:    true,
			}},
			Level: cfg.StdoutLevel,
		},
	}
	minLevel := cfg.StdoutLevel

	l := &Logger{}
	if !cfg.DisableFile {
		dir := cfg.Dir
		if dir == "" {
			dir = DefaultDir
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create log folder: %w", err)
		}
		l.Path = filepath.Join(dir, now().Format(FileTimeLayout)+".log")
		f, err := os.OpenFile(l.Path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		l.file = f
		writers = append(writers, &zerolog.FilteredLevelWriter{
			Writer: zerolog.LevelWriterAdapter{Writer: zerolog.ConsoleWriter{
				Out:        f,
				TimeFormat: time.DateTime,
				NoColor:    true,
			}},
			Level: cfg.FileLevel,
		})
		if cfg.FileLevel < minLevel {
			minLevel = cfg.FileLevel
		}
	}

	l.Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(minLevel).
		With().
		Timestamp().
		Caller().
		Logger()
	return l, nil
}

// ParseLevel maps a level name to a zerolog level. Accepted names are
// critical, error, warning, info, debug and notset, in any case; zerolog's
// own names (fatal, warn, trace, ...) are accepted too.
func ParseLevel(name string) (zerolog.Level, error) {
	switch strings.ToLower(name) {
	case "critical":
		return zerolog.FatalLevel, nil
	case "warning":
		return zerolog.WarnLevel, nil
	case "notset":
		return zerolog.TraceLevel, nil
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(name))
	if err != nil || name == "" {
		return zerolog.NoLevel, fmt.Errorf("unknown log level %q", name)
	}
	return lvl, nil
}

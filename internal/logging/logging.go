// Package logging builds the zerolog loggers used across countrylist and carries
// them, together with a per-invocation trace ID, through context.Context.
package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Output formats and destinations.
const (
	FormatConsole = "console"
	FormatJSON    = "json"

	OutputStderr = "stderr"
	OutputFile   = "file"
)

// logDirPerm is the permission used when creating the log file's directory.
const logDirPerm = 0o750

// logFilePerm is the permission used when creating the log file.
const logFilePerm = 0o600

// Config describes how a logger is built.
type Config struct {
	Level  string // trace, debug, info, warn, error
	Format string // console or json
	Output string // stderr or file
	File   string // path used when Output is "file"
}

// LogPathResult is the outcome of NewLoggerWithPath. When the requested log file
// cannot be opened the logger falls back to stderr and FallbackUsed is set.
type LogPathResult struct {
	Logger         zerolog.Logger
	UsingFile      bool
	FilePath       string
	FallbackUsed   bool
	FallbackReason string

	file *os.File
}

// Close releases the log file handle, if any.
func (r *LogPathResult) Close() error {
	if r == nil || r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// NewLogger builds a logger writing to w in the configured level and format.
func NewLogger(cfg Config, w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || cfg.Level == "" {
		lvl = zerolog.InfoLevel
	}

	out := w
	if cfg.Format != FormatJSON {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: cfg.Output == OutputFile}
	}

	return zerolog.New(out).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}

// NewLoggerWithPath builds a logger for cfg, opening the log file when Output is
// "file". A file that cannot be opened is not fatal: the logger writes to stderr
// and the reason is reported in the result.
func NewLoggerWithPath(cfg Config) LogPathResult {
	if cfg.Output != OutputFile || cfg.File == "" {
		return LogPathResult{Logger: NewLogger(cfg, os.Stderr)}
	}

	f, err := openLogFile(cfg.File)
	if err != nil {
		fallback := cfg
		fallback.Output = OutputStderr
		return LogPathResult{
			Logger:         NewLogger(fallback, os.Stderr),
			FallbackUsed:   true,
			FallbackReason: err.Error(),
		}
	}

	return LogPathResult{
		Logger:    NewLogger(cfg, f),
		UsingFile: true,
		FilePath:  cfg.File,
		file:      f,
	}
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), logDirPerm); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, logFilePerm)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, nil
}

// ComponentLogger returns a child logger tagged with the component name.
func ComponentLogger(l zerolog.Logger, component string) zerolog.Logger {
	return l.With().Str("component", component).Logger()
}

// FromContext returns the logger stored in ctx, or a disabled logger when none is set.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// PrintLogPathMessage tells the user where logs are being written.
func PrintLogPathMessage(w io.Writer, path string) {
	_, _ = fmt.Fprintf(w, "Logging to %s\n", path)
}

// PrintFallbackWarning tells the user the log file could not be used.
func PrintFallbackWarning(w io.Writer, reason string) {
	_, _ = fmt.Fprintf(w, "Warning: could not open log file, logging to stderr: %s\n", reason)
}

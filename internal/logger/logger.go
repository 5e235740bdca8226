package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

// LogFilePath is the default log file, relative to the working directory.
const LogFilePath = "logs/demo.log"

// Options configures New.
type Options struct {
	Level  string    // "debug", "info", "warn", "error"; empty means info
	File   string    // appended to in addition to Output; empty disables file logging
	Output io.Writer // defaults to os.Stderr
	Prefix string
}

// Logger is the process logger plus the log file it owns.
type Logger struct {
	*log.Logger
	file *os.File
}

// New returns a logger writing to Output and, when set, appending to File. The log directory is
// created if needed.
func New(opts Options) (*Logger, error) {
	level := log.InfoLevel
	if opts.Level != "" {
		l, err := log.ParseLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("log level %q: %w", opts.Level, err)
		}
		level = l
	}
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	var f *os.File
	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0755); err != nil {
			return nil, fmt.Errorf("log dir: %w", err)
		}
		var err error
		f, err = os.OpenFile(opts.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, fmt.Errorf("log file: %w", err)
		}
		out = io.MultiWriter(out, f)
	}

	l := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
		Prefix:          opts.Prefix,
	})
	return &Logger{Logger: l, file: f}, nil
}

// Close closes the log file, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

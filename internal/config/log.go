package config

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Logging environment variables.
const (
	EnvLogLevel = "LOG_LEVEL"
	EnvLogFile  = "DODGER_LOG_FILE"
)

// NewLogger builds the application logger. Output goes to the file named by
// DODGER_LOG_FILE when set, otherwise to fallback. The returned closer
// releases the log file and is never nil.
func NewLogger(prefix string, fallback io.Writer) (*log.Logger, io.Closer, error) {
	var out io.Writer = fallback
	var closer io.Closer = nopCloser{}

	if path := GetEnv(EnvLogFile, ""); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closer = f
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})

	level, err := log.ParseLevel(GetEnv(EnvLogLevel, "info"))
	if err != nil {
		closer.Close()
		return nil, nil, fmt.Errorf("parse %s: %w", EnvLogLevel, err)
	}
	logger.SetLevel(level)

	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

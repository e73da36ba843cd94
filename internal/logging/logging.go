// Package logging configures the structured logger shared by the CLI, the
// interactive program and the remote servers.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"charm.land/log/v2"
	"github.com/adrg/xdg"
)

// DefaultFileName is the log file name under the XDG state directory
const DefaultFileName = "carousel/carousel.log"

// Options controls where and how much is logged
type Options struct {
	Level  string    // debug, info, warn, error (default: info)
	File   string    // optional extra sink; "default" resolves under the XDG state dir
	Stderr io.Writer // console sink (default: os.Stderr)
	Prefix string
}

// Setup builds a logger from opts, installs it as the package default and
// returns it together with a close func for the file sink.
func Setup(opts Options) (*log.Logger, func() error, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, err
	}

	console := opts.Stderr
	if console == nil {
		console = os.Stderr
	}

	closer := func() error { return nil }
	w := console
	if opts.File != "" {
		path, err := resolveFile(opts.File)
		if err != nil {
			return nil, nil, err
		}
		// #nosec G304 - the log file path is chosen by the user
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w = io.MultiWriter(console, f)
		closer = f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          opts.Prefix,
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
	})
	log.SetDefault(logger)
	return logger, closer, nil
}

// ParseLevel maps a config level name to a log level; empty means info
func ParseLevel(name string) (log.Level, error) {
	if strings.TrimSpace(name) == "" {
		return log.InfoLevel, nil
	}
	level, err := log.ParseLevel(strings.ToLower(name))
	if err != nil {
		return log.InfoLevel, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	return level, nil
}

// Discard returns a logger that drops everything, for tests and embedding
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

func resolveFile(file string) (string, error) {
	if file != "default" {
		if err := os.MkdirAll(filepath.Dir(file), 0750); err != nil {
			return "", fmt.Errorf("failed to create log directory: %w", err)
		}
		return file, nil
	}
	path, err := xdg.StateFile(DefaultFileName)
	if err != nil {
		return "", fmt.Errorf("failed to get log path: %w", err)
	}
	return path, nil
}

// Package logging owns the process-wide slog logger. Logs are JSON lines
// written to a file and only when debugging is switched on; stdout and
// stderr stay reserved for command output.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// DefaultMaxLogFiles is the rotation limit used when no flag or env override is given
const DefaultMaxLogFiles = 1000

// Environment overrides, read on top of the CLI flags
const (
	EnvDebug       = "WINS_DEBUG"
	EnvDebugFile   = "WINS_DEBUG_FILE"
	EnvMaxLogFiles = "WINS_MAX_LOG_FILES"
)

// Logger is the public logger instance accessible from all packages
var Logger = discard()

// Options selects where debug logs go.
type Options struct {
	Debug       bool
	// File pins logs to one path. Rotation is skipped.
	File        string
	MaxLogFiles int
}

// withEnv applies the WINS_* overrides. A flag the user set wins over the
// environment, which is why MaxLogFiles is only replaced at its default.
func (o Options) withEnv(getenv func(string) string) Options {
	if getenv(EnvDebug) == "1" {
		o.Debug = true
	}
	if f := getenv(EnvDebugFile); f != "" && o.File == "" {
		o.File = f
	}
	if n, err := strconv.Atoi(getenv(EnvMaxLogFiles)); err == nil && o.MaxLogFiles == DefaultMaxLogFiles {
		o.MaxLogFiles = n
	}
	return o
}

func (o Options) enabled() bool {
	return o.Debug || o.File != ""
}

// Setup points Logger at a debug file, or at io.Discard when debugging is off.
// It returns the path of the log file, or "" when logging is discarded.
func Setup(opts Options) (string, error) {
	opts = opts.withEnv(os.Getenv)
	if !opts.enabled() {
		Logger = discard()
		return "", nil
	}

	path, err := logFilePath(opts)
	if err != nil {
		return "", err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to create log file: %w", err)
	}

	Logger = slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	Logger.Info("Debug logging initialized", "log_file", path, "max_log_files", opts.MaxLogFiles)
	fmt.Fprintf(os.Stderr, "Debug mode enabled. Logs: %s\n", path)

	return path, nil
}

func discard() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// logFilePath picks the file for this run, rotating the shared directory
// first when no explicit file was given.
func logFilePath(opts Options) (string, error) {
	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0755); err != nil {
			return "", fmt.Errorf("failed to create log directory: %w", err)
		}
		return opts.File, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get log directory: %w", err)
	}
	dir := logDir(runtime.GOOS, home, os.Getenv)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create log directory: %w", err)
	}

	if opts.MaxLogFiles > 0 {
		if err := rotateLogs(dir, opts.MaxLogFiles); err != nil {
			// not fatal
			fmt.Fprintf(os.Stderr, "Warning: log rotation failed: %v\n", err)
		}
	}

	return filepath.Join(dir, uuid.NewString()+".log"), nil
}

// rotateLogs deletes the oldest .log files in dir so that, once the new
// file is created, at most keep remain.
func rotateLogs(dir string, keep int) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read log directory: %w", err)
	}

	type aged struct {
		mod  time.Time
		path string
	}
	var logs []aged
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".log" {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		logs = append(logs, aged{mod: info.ModTime(), path: filepath.Join(dir, e.Name())})
	}

	excess := len(logs) - keep + 1
	if excess <= 0 {
		return nil
	}

	sort.Slice(logs, func(i, j int) bool { return logs[i].mod.Before(logs[j].mod) })
	for _, l := range logs[:min(excess, len(logs))] {
		if err := os.Remove(l.path); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to delete old log file %s: %v\n", l.path, err)
		}
	}
	return nil
}

// logDir follows each platform's convention for per-user logs.
func logDir(goos, home string, getenv func(string) string) string {
	switch goos {
	case "darwin":
		return filepath.Join(home, "Library", "Logs", "wins")
	case "linux":
		if state := getenv("XDG_STATE_HOME"); state != "" {
			return filepath.Join(state, "wins")
		}
		return filepath.Join(home, ".local", "state", "wins")
	case "windows":
		if local := getenv("LOCALAPPDATA"); local != "" {
			return filepath.Join(local, "wins", "logs")
		}
		return filepath.Join(home, "AppData", "Local", "wins", "logs")
	default:
		return filepath.Join(home, ".wins", "logs")
	}
}

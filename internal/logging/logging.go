package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config contains logging configuration.
type Config struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string
	// FilePath is the path to an additional log file. Empty means stderr only.
	FilePath string
	// MaxSizeMB is the size in MB that triggers rotation of FilePath.
	MaxSizeMB int
	// MaxFiles is the number of rotated files to keep.
	MaxFiles int
	// Stderr receives records in addition to FilePath. Nil means os.Stderr.
	Stderr io.Writer
}

// DefaultConfig returns quiet stderr-only logging.
func DefaultConfig() Config {
	return Config{
		Level:     "warn",
		MaxSizeMB: 5,
		MaxFiles:  3,
	}
}

// Setup builds a JSON slog logger for cfg and returns it with a cleanup
// function that flushes and closes any log file.
func Setup(cfg Config) (*slog.Logger, func(), error) {
	stderr := cfg.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	output := stderr
	cleanup := func() {}

	if cfg.FilePath != "" {
		maxSize := cfg.MaxSizeMB
		if maxSize <= 0 {
			maxSize = DefaultConfig().MaxSizeMB
		}
		maxFiles := cfg.MaxFiles
		if maxFiles <= 0 {
			maxFiles = DefaultConfig().MaxFiles
		}

		writer, err := NewRotatingWriter(cfg.FilePath, int64(maxSize)*1024*1024, maxFiles)
		if err != nil {
			return nil, nil, err
		}
		output = io.MultiWriter(writer, stderr)
		cleanup = func() {
			_ = writer.Sync()
			_ = writer.Close()
		}
	}

	handler := slog.NewJSONHandler(output, &slog.HandlerOptions{
		Level: LevelFromString(cfg.Level),
	})

	return slog.New(handler), cleanup, nil
}

// LevelFromString converts a level name to slog.Level. Unknown names map to info.
func LevelFromString(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

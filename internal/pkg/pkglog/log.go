package pkglog

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// InitLogging installs a JSON slog handler as the process default. When the
// LOG_FILE environment variable is set, records are also written to that file
// with size based rotation.
func InitLogging() {
	slog.SetDefault(slog.New(NewHandler(output(os.Getenv("LOG_FILE")), levelFromEnv())))
}

func NewHandler(w io.Writer, level slog.Level) slog.Handler {
	return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
}

func output(filename string) io.Writer {
	if filename == "" {
		return os.Stdout
	}

	//nolint:errcheck,gosec // best effort, lumberjack creates the file itself
	os.MkdirAll(filepath.Dir(filename), 0o755)

	return io.MultiWriter(os.Stdout, &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    100,
		MaxAge:     7,
		MaxBackups: 3,
		Compress:   true,
		LocalTime:  true,
	})
}

func levelFromEnv() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(os.Getenv("LOG_LEVEL"))); err != nil {
		return slog.LevelInfo
	}
	return level
}

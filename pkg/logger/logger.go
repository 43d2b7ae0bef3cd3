package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"time"
)

var defaultLogger *slog.Logger

func init() {
	SetLogger(New(os.Stdout))
}

// New returns a text logger writing to w with caller source, filtered at the
// ROOMSTUDIO_LOG_LEVEL level.
func New(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		AddSource: true,
		Level:     levelFromEnv(),
	}))
}

// levelFromEnv reads ROOMSTUDIO_LOG_LEVEL (debug, info, warn, error).
func levelFromEnv() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(os.Getenv("ROOMSTUDIO_LOG_LEVEL"))); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// SetLogger replaces the process-wide logger.
func SetLogger(l *slog.Logger) {
	defaultLogger = l
	slog.SetDefault(l)
}

// Default returns the process-wide logger.
func Default() *slog.Logger { return defaultLogger }

// log records msg with the caller of the exported wrapper as its source.
func log(level slog.Level, msg string, args ...any) {
	if !defaultLogger.Enabled(context.Background(), level) {
		return
	}
	var pcs [1]uintptr
	// Skip runtime.Callers, this func, and the exported wrapper func
	runtime.Callers(3, pcs[:])

	r := slog.NewRecord(time.Now(), level, msg, pcs[0])
	r.Add(args...)
	_ = defaultLogger.Handler().Handle(context.Background(), r)
}

func logf(level slog.Level, format string, args ...any) {
	if !defaultLogger.Enabled(context.Background(), level) {
		return
	}
	var pcs [1]uintptr
	runtime.Callers(3, pcs[:])

	msg := fmt.Sprintf(format, args...)
	r := slog.NewRecord(time.Now(), level, msg, pcs[0])
	_ = defaultLogger.Handler().Handle(context.Background(), r)
}

func Info(msg string, args ...any)  { log(slog.LevelInfo, msg, args...) }
func Warn(msg string, args ...any)  { log(slog.LevelWarn, msg, args...) }
func Error(msg string, args ...any) { log(slog.LevelError, msg, args...) }
func Debug(msg string, args ...any) { log(slog.LevelDebug, msg, args...) }

// Printf logs at info level, for call sites migrated from the log package.
func Printf(format string, args ...any) { logf(slog.LevelInfo, format, args...) }

func Fatalf(format string, args ...any) {
	logf(slog.LevelError, format, args...)
	os.Exit(1)
}

func Fatal(args ...any) {
	log(slog.LevelError, fmt.Sprint(args...))
	os.Exit(1)
}

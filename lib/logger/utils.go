package logger

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"runtime"
)

func slogLevel(level int) slog.Level {
	switch level {
	case LogLevelTrace:
		return slog.LevelDebug - 4
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelInfo:
		return slog.LevelInfo
	case LogLevelWarn:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

func logPrint(level int, format string, value ...any) {
	if logLevel <= level {
		log.Log(context.Background(), slogLevel(level), fmt.Sprintf(format, value...))
	}
}

func logErrPrefix(level int) string {
	_, file, line, ok := runtime.Caller(level + 2)
	if ok {
		return fmt.Sprintf("%s:%d ", file, line)
	} else {
		return ""
	}
}

// gin writers end every record with newline, slog adds its own
func trimNewline(p []byte) string {
	return string(bytes.TrimRight(p, "\r\n"))
}

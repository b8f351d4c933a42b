package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

const (
	LogLevelTrace = 0
	LogLevelDebug = 1
	LogLevelInfo  = 2
	LogLevelWarn  = 3
	LogLevelError = 4
)

// Config is the logger section of the printer config
type Config struct {
	// Level is one of LogLevel* constants, info if not set
	Level *int `json:"level,omitempty" yaml:"level,omitempty"`
	// Path is the prefix of log files, <path>.log and <path>.err are created. Stdout and stderr are used if not set
	Path *string `json:"path,omitempty" yaml:"path,omitempty"`
}

var (
	logLevel = LogLevelInfo
	log      = newLogger(os.Stdout)
	logErr   = newLogger(os.Stderr)
)

func newLogger(w io.Writer) *slog.Logger {
	noColor := true
	if f, ok := w.(*os.File); ok {
		noColor = !isatty.IsTerminal(f.Fd())
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		// Filtering is done by logLevel, handler accepts everything
		Level:      slogLevel(LogLevelTrace),
		TimeFormat: time.DateTime,
		NoColor:    noColor,
	}))
}

func GetLevel() int {
	return logLevel
}

func Trace(format string, values ...any) {
	logPrint(LogLevelTrace, format, values...)
}

func Debug(format string, values ...any) {
	logPrint(LogLevelDebug, format, values...)
}

func Info(format string, values ...any) {
	logPrint(LogLevelInfo, format, values...)
}

func Warn(format string, values ...any) {
	logPrint(LogLevelWarn, format, values...)
}

// Error logs message both to main and error logs and returns it as error
func Error(format string, values ...any) error {
	logPrint(LogLevelError, format, values...)
	logErr.Log(context.Background(), slog.LevelError, logErrPrefix(0)+fmt.Sprintf(format, values...))
	return fmt.Errorf(format, values...)
}

func Panic(format string, values ...any) {
	logPrint(LogLevelError, format, values...)
	logErr.Log(context.Background(), slog.LevelError, logErrPrefix(0)+fmt.Sprintf(format, values...))
	panic(fmt.Errorf(format, values...))
}

type logWriter struct {
	level  int
	prefix string
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	logPrint(w.level, "%s %s", w.prefix, trimNewline(p))
	return len(p), nil
}

// CreateWriter returns writer which puts each written chunk to log with given level.
// Used for gin access log and recovery output
func CreateWriter(level int, prefix string) io.Writer {
	return &logWriter{
		level:  level,
		prefix: prefix,
	}
}

func InitLogger(config *Config) error {
	logLevel = LogLevelInfo
	if config == nil {
		config = &Config{}
	}
	if config.Level != nil {
		if *config.Level < LogLevelTrace || *config.Level > LogLevelError {
			return fmt.Errorf("unknown log level %d", *config.Level)
		}
		logLevel = *config.Level
	}

	var logFile, logErrFile *os.File

	if config.Path == nil {
		logFile = os.Stdout
		logErrFile = os.Stderr
	} else {
		var err error
		logFile, err = os.OpenFile(*config.Path+".log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0660)
		if err != nil {
			return err
		}

		logErrFile, err = os.OpenFile(*config.Path+".err", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0660)
		if err != nil {
			logFile.Close()
			return err
		}
	}

	log = newLogger(logFile)
	logErr = newLogger(logErrFile)

	Info("Logger is successfully initialized")
	return nil
}

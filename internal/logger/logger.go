package logger

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	defaultLogger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	once          sync.Once
)

// Init configures the global zerolog logger. Output always goes to stdout;
// when logFilePath is non-empty the file is appended to as well.
func Init(logFilePath string) {
	once.Do(func() {
		writers := []io.Writer{os.Stdout}

		if logFilePath != "" {
			file, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0664)
			if err != nil {
				// The logger is not usable yet, so report on stderr and
				// carry on with stdout only.
				os.Stderr.WriteString("failed to open log file: " + err.Error() + "\n")
			} else {
				writers = append(writers, file)
			}
		}

		defaultLogger = zerolog.New(zerolog.MultiLevelWriter(writers...)).
			With().Timestamp().Logger().
			Level(zerolog.InfoLevel)
		log.Logger = defaultLogger
	})
}

// With returns a context carrying the logger enriched with fields.
func With(ctx context.Context, fields map[string]interface{}) context.Context {
	l := defaultLogger.With().Fields(fields).Logger()
	return l.WithContext(ctx)
}

func fromContext(ctx context.Context) *zerolog.Logger {
	l := zerolog.Ctx(ctx)
	if l.GetLevel() == zerolog.Disabled {
		return &defaultLogger
	}
	return l
}

// Debug logs a debug-level message.
func Debug(ctx context.Context, msg string, args ...interface{}) {
	fromContext(ctx).Debug().Msgf(msg, args...)
}

// Info logs an info-level message.
func Info(ctx context.Context, msg string, args ...interface{}) {
	fromContext(ctx).Info().Msgf(msg, args...)
}

// Warn logs a warning-level message.
func Warn(ctx context.Context, msg string, args ...interface{}) {
	fromContext(ctx).Warn().Msgf(msg, args...)
}

// Error logs an error-level message. When the first argument is an error it
// is attached as a structured field instead of being formatted into msg.
func Error(ctx context.Context, msg string, args ...interface{}) {
	l := fromContext(ctx)
	if len(args) > 0 {
		if err, ok := args[0].(error); ok {
			l.Error().Err(err).Msg(msg)
			return
		}
	}
	l.Error().Msgf(msg, args...)
}

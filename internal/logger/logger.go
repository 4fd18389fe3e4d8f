// Package logger builds the process-wide slog logger.
package logger

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	slogmulti "github.com/samber/slog-multi"
	slogsentry "github.com/samber/slog-sentry/v2"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/limbo/lifeos/pkg/cleanup"
)

type Options struct {
	// Text output with debug level instead of JSON with info level
	Development bool
	// Errors are sent to Sentry when set
	SentryDSN string
	// Rotated JSON copy of the log when set
	File string
	// Defaults to os.Stdout
	Out io.Writer
}

// Init installs the logger as slog's default and returns it.
func Init(opts Options) *slog.Logger {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	level := slog.LevelInfo
	var handlers []slog.Handler
	if opts.Development {
		level = slog.LevelDebug
		handlers = append(handlers, slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))
	} else {
		handlers = append(handlers, slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level}))
	}

	if opts.File != "" {
		fileWriter := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
		handlers = append(handlers, slog.NewJSONHandler(fileWriter, &slog.HandlerOptions{Level: level}))
		cleanup.Register(&cleanup.Job{
			Name: "closing log file",
			F:    fileWriter.Close,
		})
	}

	if opts.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              opts.SentryDSN,
			TracesSampleRate: 1.0,
		})
		if err == nil {
			handlers = append(handlers, slogsentry.Option{
				Level: slog.LevelError,
			}.NewSentryHandler())
			cleanup.Register(&cleanup.Job{
				Name: "flushing sentry",
				F: func() error {
					sentry.Flush(2 * time.Second)
					return nil
				},
			})
		} else {
			slog.Error("sentry init failed", slog.String("error", err.Error()))
		}
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = slogmulti.Fanout(handlers...)
	} else {
		handler = handlers[0]
	}
	log := slog.New(handler)
	slog.SetDefault(log)
	return log
}

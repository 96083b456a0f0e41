package logger

import (
	"io"
	"os"
	"strings"

	"golang.org/x/exp/slog"
	"gopkg.in/natefinch/lumberjack.v2"

	"tau/internal/app/client/config"
	"tau/internal/utils/logger/slogpretty"
)

type options struct {
	out   io.Writer
	level *slog.Level
}

type Option func(*options)

// WithFile sends records to a size-rotated file instead of stderr.
func WithFile(path string) Option {
	return func(o *options) {
		if path == "" {
			return
		}
		o.out = &lumberjack.Logger{
			Filename:   path,
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
			Compress:   true,
		}
	}
}

// WithWriter sends records to w.
func WithWriter(w io.Writer) Option {
	return func(o *options) {
		o.out = w
	}
}

// WithLevel overrides the level implied by the environment. Unknown names are ignored.
func WithLevel(name string) Option {
	return func(o *options) {
		if lvl, ok := parseLevel(name); ok {
			o.level = &lvl
		}
	}
}

func New(env string, opts ...Option) *slog.Logger {
	o := &options{out: os.Stderr}
	for _, opt := range opts {
		opt(o)
	}

	var log *slog.Logger

	switch env {
	case config.EnvLocal:
		log = setupPrettySlog(o.out, o.levelOr(slog.LevelDebug))
	case config.EnvDev:
		log = slog.New(
			slog.NewJSONHandler(o.out, &slog.HandlerOptions{Level: o.levelOr(slog.LevelDebug)}),
		)
	case config.EnvProd:
		log = slog.New(
			slog.NewJSONHandler(o.out, &slog.HandlerOptions{Level: o.levelOr(slog.LevelInfo)}),
		)
	default:
		log = slog.New(
			slog.NewJSONHandler(o.out, &slog.HandlerOptions{Level: o.levelOr(slog.LevelInfo)}),
		)
	}

	return log
}

func (o *options) levelOr(def slog.Level) slog.Level {
	if o.level != nil {
		return *o.level
	}
	return def
}

func setupPrettySlog(out io.Writer, level slog.Level) *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: level,
		},
	}

	handler := opts.NewPrettyHandler(out)

	return slog.New(handler)
}

func parseLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return 0, false
	}
}

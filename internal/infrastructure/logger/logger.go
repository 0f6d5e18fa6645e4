package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

type Logger struct {
	*slog.Logger
}

var (
	defaultLogger *Logger
	once          sync.Once
)

type Config struct {
	Level     slog.Level
	Format    string
	Output    io.Writer
	AddSource bool
}

func DefaultConfig() *Config {
	return &Config{
		Level:     slog.LevelInfo,
		Format:    "text",
		Output:    os.Stderr,
		AddSource: false,
	}
}

// ConfigFromEnv reads <PREFIX>_DEBUG and <PREFIX>_LOG_FORMAT.
func ConfigFromEnv(prefix string) *Config {
	cfg := DefaultConfig()
	debug := os.Getenv(prefix+"_DEBUG") != ""
	if debug {
		cfg.Level = slog.LevelDebug
		cfg.AddSource = true
	}
	if format := strings.ToLower(os.Getenv(prefix + "_LOG_FORMAT")); format != "" {
		cfg.Format = format
	}
	return cfg
}

func New(cfg *Config) *Logger {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	opts := &slog.HandlerOptions{
		Level:     cfg.Level,
		AddSource: cfg.AddSource,
	}

	var handler slog.Handler
	switch cfg.Format {
	case "json":
		handler = slog.NewJSONHandler(output, opts)
	default:
		handler = slog.NewTextHandler(output, opts)
	}

	return &Logger{slog.New(handler)}
}

func Init(cfg *Config) {
	once.Do(func() {
		defaultLogger = New(cfg)
	})
}

func L() *Logger {
	if defaultLogger == nil {
		Init(DefaultConfig())
	}
	return defaultLogger
}

func (l *Logger) With(args ...any) *Logger {
	return &Logger{l.Logger.With(args...)}
}

func (l *Logger) Component(name string) *Logger {
	return l.With("component", name)
}

func Debug(msg string, args ...any) { L().Debug(msg, args...) }
func Warn(msg string, args ...any)  { L().Warn(msg, args...) }

func Component(name string) *Logger {
	return L().Component(name)
}

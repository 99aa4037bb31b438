package logger

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config holds the configuration for initializing the logger.
type Config struct {
	Writer        io.Writer      // Optional: defaults to stderr
	Level         zerolog.Level  // Log level (DebugLevel, WarnLevel, etc.)
	AppName       string         // Application name for context
	AppVersion    string         // Application version for context
	EnableCaller  bool           // Optional: enable caller info in logs
	Hooks         []zerolog.Hook // Optional: additional zerolog hooks
	PrettyConsole bool           // Optional: use console writer if terminal
}

// InitLog builds a logger from cfg and installs it as the global logger.
func InitLog(cfg Config) zerolog.Logger {
	writer := cfg.Writer
	if writer == nil {
		writer = os.Stderr
	}

	pretty := cfg.PrettyConsole && isTerminal(writer)
	if pretty {
		out := writer
		writer = zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
			w.Out = out
			w.TimeFormat = time.TimeOnly
		})
		zerolog.TimeFieldFormat = time.RFC3339Nano
	} else {
		zerolog.TimeFieldFormat = zerolog.TimeFormatUnixNano
	}

	zerolog.SetGlobalLevel(cfg.Level)

	builder := zerolog.New(writer).With().
		Timestamp().
		Str("app", cfg.AppName).
		Str("version", cfg.AppVersion)

	if cfg.EnableCaller {
		builder = builder.Caller()
	}

	logger := builder.Logger()

	for _, hook := range cfg.Hooks {
		logger = logger.Hook(hook)
	}

	log.Logger = logger

	return logger
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

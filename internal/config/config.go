package config

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"
)

const DefaultProg = "sleep"

// Config is everything the command needs to know before it runs. It comes
// from argv[0] and from values fixed at link time, never from files or the
// environment.
type Config struct {
	Prog     string
	LogLevel zerolog.Level
}

func Load(args []string, level string) (Config, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return Config{}, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	return Config{
		Prog:     progName(args),
		LogLevel: lvl,
	}, nil
}

func progName(args []string) string {
	if len(args) == 0 || args[0] == "" {
		return DefaultProg
	}
	return filepath.Base(args[0])
}

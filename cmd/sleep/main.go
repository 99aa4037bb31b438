package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog"

	"github.com/Ow1Dev/NoctiSleep/internal/cli"
	"github.com/Ow1Dev/NoctiSleep/internal/config"
	"github.com/Ow1Dev/NoctiSleep/internal/sleeper"
	"github.com/Ow1Dev/NoctiSleep/pkg/logger"
)

const (
	Version = "0.1.0"
	AppName = "sleep"
)

// logLevel can be overridden at build time: -ldflags "-X main.logLevel=debug".
var logLevel = "warn"

func run(ctx context.Context, w io.Writer, args []string) error {
	cfg, err := config.Load(args, logLevel)
	if err != nil {
		return err
	}

	logger := logger.InitLog(logger.Config{
		Writer:        w,
		Level:         cfg.LogLevel,
		AppName:       AppName,
		AppVersion:    Version,
		EnableCaller:  cfg.LogLevel <= zerolog.DebugLevel,
		PrettyConsole: true,
	})

	var rest []string
	if len(args) > 1 {
		rest = args[1:]
	}

	cmd := cli.NewCommand(cfg.Prog, sleeper.Default(), clock.New(), logger)
	return cmd.Run(ctx, rest)
}

func main() {
	ctx := context.Background()
	if err := run(ctx, os.Stderr, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(cli.ExitCode(err))
	}
}

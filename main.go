package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"DotEnv/cmd"
	"DotEnv/internal/config"
	"DotEnv/internal/console"
	"DotEnv/internal/logger"
	"DotEnv/internal/version"
)

func main() {
	os.Exit(run())
}

func run() (exitCode int) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Console-only logging until the configuration names a log file
	slog.SetDefault(logger.NewLogger(""))
	conf := config.LoadAppConfig(ctx)
	if conf.LogFile != "" {
		slog.SetDefault(logger.NewLogger(conf.LogFile))
	}

	// Defer cleanup to ensure it runs even if we return early or panic
	defer cleanup(ctx)

	// Recover from logger.FatalError to ensure cleanup runs
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(logger.FatalError); ok {
				// Raised by logger.Recover after reporting the panic
				exitCode = 1
			} else {
				// Re-panic for other errors
				panic(r)
			}
		}
		if exitCode != 0 {
			fmt.Fprintln(os.Stderr, console.ToANSI(fmt.Sprintf("{{_ApplicationName_}}%s{{|-|}} did not finish running successfully.", version.ApplicationName)))
		}
	}()

	// Report unexpected panics with a stack trace, then exit through the handler above
	defer logger.Recover(ctx)

	// Parse command line arguments
	groups, err := cmd.Parse(os.Args[1:])
	if err != nil {
		logger.Error(ctx, err.Error())
		return 1
	}

	// Hand off execution to the cmd package
	return cmd.Execute(ctx, conf, groups)
}

func cleanup(ctx context.Context) {
	logger.Debug(ctx, "Cleaning up...")
	logger.Cleanup()
}

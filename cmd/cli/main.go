package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/sweepgridgo/internal/app"
	"github.com/vk/sweepgridgo/internal/cli"
	"github.com/vk/sweepgridgo/internal/config"
	"github.com/vk/sweepgridgo/internal/hcl_adapter"
	"github.com/vk/sweepgridgo/internal/yaml_adapter"
)

// main is the entrypoint for the sweepgridgo application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW io.Writer, args []string) (err error) {
	appConfig, shouldExit, parseErr := cli.Parse(args, outW)
	if parseErr != nil {
		return parseErr
	}
	if shouldExit {
		return nil
	}

	// The app panics on critical startup errors, so we recover here and hand
	// the caller a regular error instead of tearing the process down.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("application startup panicked | %v", r)
		}
	}()

	// Instantiate the concrete format loaders to pass to the app.
	loaders := []config.Loader{hcl_adapter.NewLoader(), yaml_adapter.NewLoader()}
	sweepApp := app.NewApp(outW, appConfig, loaders...)

	return sweepApp.Run(context.Background())
}

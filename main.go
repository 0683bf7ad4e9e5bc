// main.go
package main

import (
	"channel_uploads/infrastructure/config"
	"channel_uploads/infrastructure/logger"
	"channel_uploads/infrastructure/provider"
	"channel_uploads/internal/core/usecases"
	"channel_uploads/internal/handler/cli"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, stdout, stderr io.Writer, envFiles ...string) int {
	cfg, err := config.Load(envFiles...)
	if errors.Is(err, config.ErrMissingAPIKey) {
		fmt.Fprintln(stdout, "Error: "+err.Error())
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load configuration: %v\n", err)
		return 1
	}

	// Initialize Logger
	appLogger, err := logger.NewFileLogger(cfg.LogDir, cfg.LogPrefix)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to initialize logger: %v\n", err)
		return 1
	}
	defer appLogger.Close()

	appLogger.Info("Application starting...")

	youtubeProvider, err := provider.NewYoutubeProvider(ctx, cfg.APIKey, appLogger)
	if err != nil {
		appLogger.Error("Failed to initialize youtube provider", err)
		fmt.Fprintf(stderr, "Failed to initialize youtube provider: %v\n", err)
		return 1
	}

	uploadsUseCase := usecases.NewUploadsUseCase(youtubeProvider, appLogger, usecases.Options{
		MaxResults:    cfg.MaxResults,
		WithDurations: cfg.WithDurations,
	})

	runner := cli.NewRunner(uploadsUseCase, appLogger, stdout, cfg.Channels)
	if err := runner.Run(ctx); err != nil {
		appLogger.Error("Run failed", err)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	appLogger.Info("Application finished.")

	return 0
}

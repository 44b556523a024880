// Package main is the entry point for the text-based battle game.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/juanmuller24/text-based-battle/internal/game"
	"github.com/juanmuller24/text-based-battle/internal/gamedata"
	"github.com/juanmuller24/text-based-battle/internal/logging"
	"github.com/juanmuller24/text-based-battle/internal/telemetry"
	"github.com/juanmuller24/text-based-battle/internal/ui"
)

func main() {
	// Load .env for local development; variables may also be set directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := game.LoadConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger, closeLog, err := logging.New(logging.Options{File: cfg.LogFile, Level: cfg.LogLevel})
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer closeLog()

	ctx := context.Background()

	if cfg.Telemetry {
		setupOTelEnv()
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			logger.WithError(err).Warn("telemetry setup failed, running without tracing")
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					logger.WithError(err).Error("telemetry shutdown failed")
				}
			}()
		}
	}

	catalog, err := gamedata.LoadCatalog()
	if err != nil {
		logger.WithError(err).Error("failed to load game data")
		log.Fatalf("Failed to load game data: %v", err)
	}

	console, err := newConsole(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize console: %v", err)
	}

	g := game.New(cfg, console, catalog, logger)
	runErr := g.Run(ctx)
	console.Close()
	if runErr != nil {
		logger.WithError(runErr).Error("game error")
		log.Fatalf("Game error: %v", runErr)
	}
}

func newConsole(cfg game.Config) (ui.Console, error) {
	if cfg.Plain {
		return ui.NewStreamConsole(os.Stdin, os.Stdout), nil
	}
	return ui.NewTermConsole()
}

// setupOTelEnv points the OTLP exporter at Honeycomb when an API key is
// configured and no endpoint was set explicitly.
func setupOTelEnv() {
	apiKey := os.Getenv("HONEYCOMB_API_KEY")
	if apiKey == "" {
		return
	}
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}
	dataset := os.Getenv("HONEYCOMB_DATASET")
	if dataset == "" {
		dataset = "text-based-battle"
	}
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}

package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	goecharger "github.com/bkogler/goecharger-api-lite"
	"github.com/bkogler/goecharger-api-lite/internal/bridge"
)

func main() {
	if len(os.Args) != 2 {
		slog.Error("Usage: goecharger-bridge <config.ini>")
		os.Exit(1)
	}

	cfg, err := bridge.LoadConfig(os.Args[1])
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	logger.Info("Starting goecharger MQTT bridge",
		"charger_host", cfg.Charger.Host, "mqtt_host", cfg.MQTT.Host)

	client, err := goecharger.NewClient(cfg.Charger.Host,
		goecharger.WithTimeout(cfg.ChargerTimeout()),
		goecharger.WithLogger(logger),
	)
	if err != nil {
		logger.Error("Failed to create charger client", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := bridge.New(cfg, client, logger).Run(ctx); err != nil {
		logger.Error("Bridge failed", "error", err)
		os.Exit(1)
	}

	logger.Info("Bridge stopped")
}

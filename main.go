package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"LocalPaint/internal/config"
	"LocalPaint/internal/engine"
	"LocalPaint/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	verbose := flag.Bool("v", false, "log debug output")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	engine.SetLogger(logger)

	cfg, unknown, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	for _, k := range unknown {
		logger.Warn("[config] unknown key ignored", "key", k)
	}
	logger.Info("Starting LocalPaint",
		"width", cfg.Canvas.Width, "height", cfg.Canvas.Height, "history_limit", cfg.History.Limit)

	if err := ui.RunApp(cfg); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}

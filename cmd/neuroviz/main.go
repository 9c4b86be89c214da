package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/neuroviz-io/neuroviz/pkg/config"
	"github.com/neuroviz-io/neuroviz/pkg/ingest"
	"github.com/neuroviz-io/neuroviz/pkg/metrics"
	"github.com/neuroviz-io/neuroviz/pkg/server"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config (optional)")
	variant := flag.String("variant", "", "Simulation variant (no-network, disable, stimulus, calcium)")
	step := flag.Int("step", -1, "Simulation step of the connection file")
	direction := flag.String("direction", "", "Connection file direction (in, out)")
	mapping := flag.String("mapping", "", "Scalar mapping (none, area, calcium)")
	dataDir := flag.String("data", "", "Simulation data directory")
	strict := flag.Bool("strict", false, "Reject edges referencing unknown node ids")
	out := flag.String("out", "", "Write the scene JSON to this file instead of serving")
	serve := flag.Bool("serve", false, "Serve the scene over HTTP")
	listenAddr := flag.String("listen-addr", "", "Address for the viewer server")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			logger.Error("failed to load config", "error", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	// Flags override the config file.
	if *variant != "" {
		cfg.Variant = *variant
	}
	if *step >= 0 {
		cfg.Step = *step
	}
	if *direction != "" {
		cfg.Direction = *direction
	}
	if *mapping != "" {
		cfg.Mapping = *mapping
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}
	if *strict {
		cfg.Strict = true
	}
	if *listenAddr != "" {
		cfg.ListenAddr = *listenAddr
	}

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logger.Info("neuroviz starting",
		"variant", cfg.Variant,
		"step", cfg.Step,
		"direction", cfg.Direction,
		"mapping", cfg.Mapping,
		"strict", cfg.Strict,
	)

	reg := metrics.NewRegistry()
	result, err := ingest.Run(cfg, reg, logger)
	if err != nil {
		logger.Error("ingestion failed", "error", err)
		os.Exit(1)
	}

	if *out != "" {
		if err := writeScene(result, *out); err != nil {
			logger.Error("failed to write scene", "error", err, "file", *out)
			os.Exit(1)
		}
		logger.Info("scene written", "file", *out, "scene_id", result.Scene.ID)
	}

	if !*serve {
		return
	}

	srv := server.NewServer(result.Scene, reg, logger, cfg.ListenAddr)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Info("shutting down viewer server")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("shutdown error", "error", err)
		}
	}()

	if err := srv.Start(); err != nil {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func writeScene(result *ingest.Result, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := result.Scene.WriteJSON(f); err != nil {
		return err
	}
	return f.Close()
}

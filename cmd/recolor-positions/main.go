package main

import (
	"flag"
	"log/slog"
	"os"
	"strings"

	"github.com/neuroviz-io/neuroviz/pkg/simio"
)

func main() {
	dataDir := flag.String("data", "data", "Simulation data directory")
	variants := flag.String("variants", "", "Comma separated variants to recolor (default: all)")
	rank := flag.Int("rank", 0, "Rank whose position file to recolor")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	selected := simio.Variants()
	if *variants != "" {
		selected = selected[:0]
		for _, name := range strings.Split(*variants, ",") {
			v, err := simio.ParseVariant(strings.TrimSpace(name))
			if err != nil {
				logger.Error("invalid variant", "error", err)
				os.Exit(1)
			}
			selected = append(selected, v)
		}
	}

	failed := false
	for _, v := range selected {
		layout := simio.Layout{DataDir: *dataDir, Variant: v, Rank: *rank}
		out, err := layout.RecolorLayout()
		if err != nil {
			logger.Error("recolor failed", "variant", string(v), "error", err)
			failed = true
			continue
		}
		logger.Info("positions recolored", "variant", string(v), "file", out)
	}
	if failed {
		os.Exit(1)
	}
}

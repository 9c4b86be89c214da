// Package ingest runs the full pipeline for one configuration: parse the
// position and connection files, assemble the graph, derive attributes, and
// export the scene. Any failure aborts the run before a scene exists;
// partial results are never returned.
package ingest

import (
	"log/slog"
	"time"

	"github.com/neuroviz-io/neuroviz/pkg/config"
	"github.com/neuroviz-io/neuroviz/pkg/graph"
	"github.com/neuroviz-io/neuroviz/pkg/metrics"
	"github.com/neuroviz-io/neuroviz/pkg/scene"
	"github.com/neuroviz-io/neuroviz/pkg/simio"
)

// Result is the output of one pipeline run.
type Result struct {
	Graph      *graph.Graph
	Attributes *graph.AttributeSet // nil when mapping is none
	Scene      *scene.Scene
}

// Run executes the pipeline for cfg. The configuration must already be
// validated.
func Run(cfg config.Config, reg *metrics.Registry, logger *slog.Logger) (*Result, error) {
	mode, err := cfg.MappingMode()
	if err != nil {
		return nil, err
	}
	withAreas := mode == graph.MappingArea

	layout := cfg.Layout()
	dir := cfg.NetworkDirection()

	posPath := layout.PositionsPath()
	logger.Info("parsing positions", "file", posPath, "areas", withAreas)
	start := time.Now()
	records, err := simio.ParsePositions(posPath, withAreas)
	if err != nil {
		reg.RecordParseFailure("positions")
		return nil, err
	}
	reg.RecordIngest("positions", len(records), time.Since(start))
	logger.Info("positions parsed", "count", len(records))

	netPath := layout.NetworkPath(cfg.Step, dir)
	logger.Info("parsing connections", "file", netPath, "direction", string(dir))
	start = time.Now()
	adj, err := simio.ParseConnections(netPath, simio.FormatFor(dir))
	if err != nil {
		reg.RecordParseFailure("connections")
		return nil, err
	}
	reg.RecordIngest("connections", adj.EdgeCount(), time.Since(start))
	logger.Info("connections parsed", "keys", adj.Len(), "entries", adj.EdgeCount())

	g, err := graph.Assemble(records, adj, graph.AssembleOptions{
		WithAreas: withAreas,
		Strict:    cfg.Strict,
	})
	if err != nil {
		return nil, err
	}
	reg.RecordGraph(g.NodeCount(), g.EdgeCount())

	attrs, err := graph.Attributes(g, mode)
	if err != nil {
		return nil, err
	}

	start = time.Now()
	sc, err := scene.Build(g, attrs)
	if err != nil {
		return nil, err
	}
	reg.RecordSceneBuild(time.Since(start))
	logger.Info("scene built",
		"scene_id", sc.ID,
		"points", len(sc.Points),
		"edges", len(sc.Edges),
		"scalars", sc.Scalars != nil,
	)

	return &Result{Graph: g, Attributes: attrs, Scene: sc}, nil
}

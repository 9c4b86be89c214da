package ingest

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/neuroviz-io/neuroviz/pkg/config"
	"github.com/neuroviz-io/neuroviz/pkg/graph"
	"github.com/neuroviz-io/neuroviz/pkg/metrics"
	"github.com/neuroviz-io/neuroviz/pkg/simio"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// writeDataDir lays out a minimal simulation data directory.
func writeDataDir(t *testing.T, cfg config.Config, positions, network string) {
	t.Helper()
	layout := cfg.Layout()

	posPath := layout.PositionsPath()
	if err := os.MkdirAll(filepath.Dir(posPath), 0o755); err != nil {
		t.Fatalf("mkdir positions: %v", err)
	}
	if err := os.WriteFile(posPath, []byte(positions), 0o644); err != nil {
		t.Fatalf("write positions: %v", err)
	}

	netPath := layout.NetworkPath(cfg.Step, cfg.NetworkDirection())
	if err := os.MkdirAll(filepath.Dir(netPath), 0o755); err != nil {
		t.Fatalf("mkdir network: %v", err)
	}
	if err := os.WriteFile(netPath, []byte(network), 0o644); err != nil {
		t.Fatalf("write network: %v", err)
	}
}

func TestRun(t *testing.T) {
	cfg := config.Default()
	cfg.DataDir = t.TempDir()
	cfg.Step = 100

	writeDataDir(t, cfg,
		`# positions
1 0.0 0.0 0.0 area_1 ex
2 1.0 1.0 1.0 area_2 ex
3 2.0 2.0 2.0 area_3 in
`,
		`# connections
0 1 0 2 0
0 2 0 3 0
`)

	result, err := Run(cfg, metrics.NewRegistry(), testLogger())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if result.Graph.NodeCount() != 3 {
		t.Errorf("Got %d nodes, want 3", result.Graph.NodeCount())
	}
	if result.Graph.EdgeCount() != 2 {
		t.Errorf("Got %d edges, want 2", result.Graph.EdgeCount())
	}
	if result.Attributes == nil {
		t.Fatal("Attributes is nil with area mapping")
	}
	if result.Scene.Scalars == nil {
		t.Fatal("Scene scalars missing with area mapping")
	}
	if len(result.Scene.Points) != 3 {
		t.Errorf("Got %d scene points, want 3", len(result.Scene.Points))
	}
}

func TestRun_NoMapping(t *testing.T) {
	cfg := config.Default()
	cfg.DataDir = t.TempDir()
	cfg.Mapping = "none"

	writeDataDir(t, cfg, "1 0 0 0 area_1 ex\n", "")

	result, err := Run(cfg, metrics.NewRegistry(), testLogger())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if result.Attributes != nil {
		t.Error("Attributes should be nil without mapping")
	}
	if result.Scene.Scalars != nil {
		t.Error("Scene scalars should be nil without mapping")
	}
	if len(result.Scene.Edges) != 0 {
		t.Errorf("Got %d edges from empty network file, want 0", len(result.Scene.Edges))
	}
}

func TestRun_MissingNetworkFile(t *testing.T) {
	cfg := config.Default()
	cfg.DataDir = t.TempDir()

	// Only positions exist; the step's network file is absent. This is the
	// dominant real failure: step numbers must match an existing file.
	layout := cfg.Layout()
	posPath := layout.PositionsPath()
	if err := os.MkdirAll(filepath.Dir(posPath), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(posPath, []byte("1 0 0 0 area_1 ex\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, err := Run(cfg, metrics.NewRegistry(), testLogger())
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("Got %v, want fs.ErrNotExist", err)
	}
}

func TestRun_CalciumMappingUnsupported(t *testing.T) {
	cfg := config.Default()
	cfg.DataDir = t.TempDir()
	cfg.Mapping = "calcium"

	writeDataDir(t, cfg, "1 0 0 0 area_1 ex\n", "")

	_, err := Run(cfg, metrics.NewRegistry(), testLogger())
	if !errors.Is(err, graph.ErrUnsupportedMapping) {
		t.Fatalf("Got %v, want ErrUnsupportedMapping", err)
	}
}

func TestRun_StrictRejectsDanglingEdge(t *testing.T) {
	cfg := config.Default()
	cfg.DataDir = t.TempDir()
	cfg.Strict = true

	writeDataDir(t, cfg,
		"1 0 0 0 area_1 ex\n2 1 1 1 area_2 ex\n",
		"0 1 0 9 0\n")

	_, err := Run(cfg, metrics.NewRegistry(), testLogger())
	if !errors.Is(err, graph.ErrEdgeOutOfRange) {
		t.Fatalf("Got %v, want ErrEdgeOutOfRange", err)
	}
}

func TestRun_ParseFailureAbortsBeforeScene(t *testing.T) {
	cfg := config.Default()
	cfg.DataDir = t.TempDir()

	writeDataDir(t, cfg, "1 0 bad 0 area_1 ex\n", "")

	result, err := Run(cfg, metrics.NewRegistry(), testLogger())
	if !errors.Is(err, simio.ErrBadCoordinate) {
		t.Fatalf("Got %v, want ErrBadCoordinate", err)
	}
	if result != nil {
		t.Error("Run returned a partial result on parse failure")
	}
}

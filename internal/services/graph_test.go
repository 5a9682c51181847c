package services

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yungbote/orggraph-backend/internal/data/graphsource"
	"github.com/yungbote/orggraph-backend/internal/data/repos/testutil"
	"github.com/yungbote/orggraph-backend/internal/graph"
	"github.com/yungbote/orggraph-backend/internal/observability"
)

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

type seeded struct {
	svc     GraphService
	project string
	lead    string
	helper  string
}

func newSeededService(t *testing.T) seeded {
	t.Helper()
	db := testutil.DB(t)
	ctx := context.Background()
	log := testutil.Logger(t)

	lead := testutil.SeedPerson(t, ctx, db, "Ada", "ada@example.com")
	helper := testutil.SeedPerson(t, ctx, db, "Bob", "")
	p := testutil.SeedProject(t, ctx, db, "Apollo", "Active")
	task := testutil.SeedTask(t, ctx, db, "Launch", testutil.PtrInt64(p.ID))
	testutil.SeedLead(t, ctx, db, p.ID, lead.ID, "Responsible")
	testutil.SeedAssignee(t, ctx, db, task.ID, helper.ID, "Consulted")

	src := graphsource.New(graphsource.NewRepos(db, log), log)
	return seeded{
		svc:     NewGraphService(src, log, observability.NewMetrics(), GraphConfig{}),
		project: graph.FormatID(graph.KindProject, p.ID),
		lead:    graph.FormatID(graph.KindPerson, lead.ID),
		helper:  graph.FormatID(graph.KindPerson, helper.ID),
	}
}

func TestResolveLayersRequestOverPresetOverDefaults(t *testing.T) {
	s := NewGraphService(nil, testutil.Logger(t), nil, GraphConfig{}).(*graphService)

	opts := s.resolve(SubgraphRequest{})
	if opts.Degrees != graph.DefaultDegrees || opts.MaxNodes != graph.DefaultMaxNodes || opts.MaxEdges != graph.DefaultMaxEdges {
		t.Fatalf("defaults: got=%+v", opts)
	}
	if !opts.IncludeCollab {
		t.Fatalf("include_collab should default to true")
	}

	opts = s.resolve(SubgraphRequest{Mode: " Standup "})
	if opts.Degrees != 2 || opts.MaxNodes != 400 || opts.MaxEdges != 800 {
		t.Fatalf("standup preset: got=%+v", opts)
	}

	opts = s.resolve(SubgraphRequest{Mode: "risk", MaxNodes: intPtr(5), IncludeCollab: boolPtr(false)})
	if opts.Degrees != 2 || opts.MaxNodes != 5 || opts.MaxEdges != 1200 || opts.IncludeCollab {
		t.Fatalf("override: got=%+v", opts)
	}

	opts = s.resolve(SubgraphRequest{Mode: "nope", Degrees: intPtr(-3)})
	if opts.Degrees != graph.DefaultDegrees {
		t.Fatalf("negative degrees should be ignored: got=%d", opts.Degrees)
	}
}

func TestSubgraphAndPromptContext(t *testing.T) {
	s := newSeededService(t)
	ctx := context.Background()

	res, err := s.svc.Subgraph(ctx, SubgraphRequest{Centers: []string{s.project}, Degrees: intPtr(2)})
	if err != nil {
		t.Fatalf("Subgraph: %v", err)
	}
	if len(res.Graph.Nodes) != 4 {
		t.Fatalf("nodes: want=4 got=%d", len(res.Graph.Nodes))
	}

	pc, err := s.svc.PromptContext(ctx, SubgraphRequest{Centers: []string{s.project}, Degrees: intPtr(2)})
	if err != nil {
		t.Fatalf("PromptContext: %v", err)
	}
	if len(pc.Graph.Nodes) != len(res.Graph.Nodes) || len(pc.Graph.Edges) != len(res.Graph.Edges) {
		t.Fatalf("prompt graph shape: nodes=%d edges=%d", len(pc.Graph.Nodes), len(pc.Graph.Edges))
	}
	raw, err := json.Marshal(pc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(raw), "ada@example.com") || strings.Contains(string(raw), "Ada") {
		t.Fatalf("prompt context leaks person data: %s", raw)
	}
}

func TestEgo(t *testing.T) {
	s := newSeededService(t)
	ctx := context.Background()

	res, err := s.svc.Ego(ctx, strings.ToUpper(s.lead), 0)
	if err != nil {
		t.Fatalf("Ego: %v", err)
	}
	if len(res.Graph.Nodes) != 2 || res.Graph.Nodes[0].Data.ID != s.lead {
		t.Fatalf("ego nodes: got=%v", res.Graph.Nodes)
	}

	if _, err := s.svc.Ego(ctx, "widget_9", 0); !errors.Is(err, graph.ErrInvalidIDFormat) {
		t.Fatalf("bad center: want ErrInvalidIDFormat got=%v", err)
	}
}

func TestNetworkStoreFailure(t *testing.T) {
	db := testutil.DB(t)
	log := testutil.Logger(t)
	src := graphsource.New(graphsource.NewRepos(db, log), log)
	svc := NewGraphService(src, log, observability.NewMetrics(), GraphConfig{})

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db.DB: %v", err)
	}
	_ = sqlDB.Close()

	if _, err := svc.Network(context.Background()); !errors.Is(err, graph.ErrStoreUnavailable) {
		t.Fatalf("want ErrStoreUnavailable got=%v", err)
	}
}

func TestLoadPresets(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "presets.yaml")
	body := "presets:\n  Status:\n    degrees: 3\n    max_nodes: 10\n    max_edges: 20\n  weekly:\n    degrees: 1\n    max_nodes: 50\n    max_edges: 90\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	p, err := LoadPresets(path)
	if err != nil {
		t.Fatalf("LoadPresets: %v", err)
	}
	if p["status"] != (Budget{Degrees: 3, MaxNodes: 10, MaxEdges: 20}) {
		t.Fatalf("status override: got=%+v", p["status"])
	}
	if p["weekly"].MaxNodes != 50 {
		t.Fatalf("weekly: got=%+v", p["weekly"])
	}
	if p["unblocker"] != DefaultPresets()["unblocker"] {
		t.Fatalf("unblocker should keep its default")
	}

	if _, err := mergePresets(DefaultPresets(), []byte("presets:\n  bad:\n    degrees: -1\n")); err == nil {
		t.Fatalf("negative budget should be rejected")
	}
	if p, err := LoadPresets(""); err != nil || len(p) != 4 {
		t.Fatalf("empty path: len=%d err=%v", len(p), err)
	}
}

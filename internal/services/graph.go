package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/yungbote/orggraph-backend/internal/graph"
	"github.com/yungbote/orggraph-backend/internal/observability"
	"github.com/yungbote/orggraph-backend/internal/platform/ctxutil"
	"github.com/yungbote/orggraph-backend/internal/platform/logger"
)

type GraphConfig struct {
	Defaults        Budget
	EgoMaxNeighbors int
	Presets         map[string]Budget
}

// SubgraphRequest leaves budget fields nil to take the mode preset or the
// configured defaults.
type SubgraphRequest struct {
	Centers       []string
	Degrees       *int
	MaxNodes      *int
	MaxEdges      *int
	IncludeCollab *bool
	Mode          string
}

type PromptContext struct {
	Schema graph.Schema    `json:"schema"`
	Graph  graph.SafeGraph `json:"graph"`
}

type GraphService interface {
	Network(ctx context.Context) (*graph.Response, error)
	Subgraph(ctx context.Context, req SubgraphRequest) (*graph.Response, error)
	// Ego returns centerID and its direct neighbours from the full network.
	// maxNeighbors <= 0 takes the configured default.
	Ego(ctx context.Context, centerID string, maxNeighbors int) (*graph.Response, error)
	PromptContext(ctx context.Context, req SubgraphRequest) (*PromptContext, error)
}

type graphService struct {
	store   graph.Store
	log     *logger.Logger
	metrics *observability.Metrics
	tracer  trace.Tracer
	cfg     GraphConfig
}

func NewGraphService(store graph.Store, log *logger.Logger, metrics *observability.Metrics, cfg GraphConfig) GraphService {
	if cfg.Defaults == (Budget{}) {
		cfg.Defaults = DefaultBudget()
	}
	if cfg.EgoMaxNeighbors <= 0 {
		cfg.EgoMaxNeighbors = 50
	}
	if cfg.Presets == nil {
		cfg.Presets = DefaultPresets()
	}
	return &graphService{
		store:   store,
		log:     log.With("service", "GraphService"),
		metrics: metrics,
		tracer:  otel.Tracer("orggraph/services/graph"),
		cfg:     cfg,
	}
}

func (s *graphService) Network(ctx context.Context) (*graph.Response, error) {
	ctx, span := s.tracer.Start(ctx, "GraphService.Network")
	defer span.End()

	start := time.Now()
	res, err := graph.BuildNetwork(ctx, s.store)
	if err != nil {
		return nil, s.fail(ctx, span, "network", err)
	}
	s.done(ctx, span, "network", res, false, start)
	return res, nil
}

func (s *graphService) Subgraph(ctx context.Context, req SubgraphRequest) (*graph.Response, error) {
	opts := s.resolve(req)
	ctx, span := s.tracer.Start(ctx, "GraphService.Subgraph", trace.WithAttributes(
		attribute.StringSlice("graph.centers", opts.Centers),
		attribute.Int("graph.degrees", opts.Degrees),
		attribute.Int("graph.max_nodes", opts.MaxNodes),
		attribute.Int("graph.max_edges", opts.MaxEdges),
		attribute.Bool("graph.include_collab", opts.IncludeCollab),
	))
	defer span.End()

	start := time.Now()
	res, err := graph.BuildSubgraph(ctx, s.store, opts)
	if err != nil {
		return nil, s.fail(ctx, span, "subgraph", err)
	}
	truncated := len(res.Graph.Nodes) >= opts.MaxNodes || len(res.Graph.Edges) >= opts.MaxEdges
	s.done(ctx, span, "subgraph", res, truncated, start,
		"centers", opts.Centers,
		"degrees", opts.Degrees,
		"mode", req.Mode,
	)
	return res, nil
}

func (s *graphService) Ego(ctx context.Context, centerID string, maxNeighbors int) (*graph.Response, error) {
	ref, err := graph.ParseID(centerID)
	if err != nil {
		return nil, err
	}
	if maxNeighbors <= 0 {
		maxNeighbors = s.cfg.EgoMaxNeighbors
	}
	ctx, span := s.tracer.Start(ctx, "GraphService.Ego", trace.WithAttributes(
		attribute.String("graph.center", ref.String()),
		attribute.Int("graph.max_neighbors", maxNeighbors),
	))
	defer span.End()

	start := time.Now()
	full, err := graph.BuildNetwork(ctx, s.store)
	if err != nil {
		return nil, s.fail(ctx, span, "ego", err)
	}
	res := &graph.Response{Schema: full.Schema, Graph: graph.Ego(full.Graph, ref.String(), maxNeighbors)}
	s.done(ctx, span, "ego", res, len(res.Graph.Nodes)-1 >= maxNeighbors, start, "center", ref.String())
	return res, nil
}

func (s *graphService) PromptContext(ctx context.Context, req SubgraphRequest) (*PromptContext, error) {
	res, err := s.Subgraph(ctx, req)
	if err != nil {
		return nil, err
	}
	return &PromptContext{Schema: res.Schema, Graph: graph.PromptSafe(res.Graph)}, nil
}

// resolve layers explicit request fields over the mode preset over defaults.
func (s *graphService) resolve(req SubgraphRequest) graph.SubgraphOptions {
	b := s.cfg.Defaults
	if mode := strings.ToLower(strings.TrimSpace(req.Mode)); mode != "" {
		if preset, ok := s.cfg.Presets[mode]; ok {
			b = preset
		} else {
			s.log.Warn("unknown budget mode, using defaults", "mode", mode)
		}
	}
	if req.Degrees != nil && *req.Degrees >= 0 {
		b.Degrees = *req.Degrees
	}
	if req.MaxNodes != nil && *req.MaxNodes >= 0 {
		b.MaxNodes = *req.MaxNodes
	}
	if req.MaxEdges != nil && *req.MaxEdges >= 0 {
		b.MaxEdges = *req.MaxEdges
	}
	includeCollab := true
	if req.IncludeCollab != nil {
		includeCollab = *req.IncludeCollab
	}
	return graph.SubgraphOptions{
		Centers:       req.Centers,
		Degrees:       b.Degrees,
		MaxNodes:      b.MaxNodes,
		MaxEdges:      b.MaxEdges,
		IncludeCollab: includeCollab,
	}
}

func (s *graphService) done(ctx context.Context, span trace.Span, view string, res *graph.Response, truncated bool, start time.Time, kv ...interface{}) {
	elapsed := time.Since(start)
	nodes, edges := len(res.Graph.Nodes), len(res.Graph.Edges)
	span.SetAttributes(
		attribute.Int("graph.nodes", nodes),
		attribute.Int("graph.edges", edges),
		attribute.Bool("graph.truncated", truncated),
	)
	s.metrics.ObserveBuild(view, nodes, edges, truncated, elapsed)
	fields := append([]interface{}{
		"view", view,
		"nodes", nodes,
		"edges", edges,
		"truncated", truncated,
		"duration_ms", elapsed.Milliseconds(),
		"request_id", ctxutil.RequestID(ctx),
	}, kv...)
	s.log.Info("graph built", fields...)
}

func (s *graphService) fail(ctx context.Context, span trace.Span, view string, err error) error {
	class := "internal"
	if errors.Is(err, graph.ErrStoreUnavailable) {
		class = "store_unavailable"
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, class)
	s.metrics.BuildFailed(view, class)
	s.log.Error("graph build failed", "view", view, "class", class, "request_id", ctxutil.RequestID(ctx), "error", err)
	return fmt.Errorf("%s: %w", view, err)
}

package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/recviz/pkg/cache"
	"github.com/matzehuels/recviz/pkg/enumerate"
	"github.com/matzehuels/recviz/pkg/graph"
	"github.com/matzehuels/recviz/pkg/render"
)

// Runner encapsulates pipeline execution with artifact caching.
// Both CLI and server use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store run results. Each run builds a fresh graph, owned by that run
// alone and discarded once its artifacts are rendered.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Logger: logger}
}

// Execute runs the complete enumerate → build → highlight → render
// pipeline. Validation failures surface before enumeration starts and
// produce no partial graph.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = r.Logger
	}

	result := &Result{
		RunID:     uuid.NewString(),
		Artifacts: make(map[string][]byte),
		CacheInfo: CacheInfo{Hits: make(map[string]bool)},
	}

	// Stage 1+2+3: enumerate, build, highlight. Enumeration is cheap at
	// interactive input sizes, so it always runs; only rendered
	// artifacts are cached.
	enumStart := time.Now()
	g, highlighted, ways, err := buildGraph(opts)
	if err != nil {
		return nil, err
	}
	result.Graph = g
	result.Highlighted = highlighted
	result.Ways = ways
	result.Stats.EnumerateTime = time.Since(enumStart)
	result.Stats.NodeCount = g.NodeCount()
	result.Stats.EdgeCount = g.EdgeCount()

	logger.Info("enumerated states",
		"run", result.RunID,
		"problem", opts.Problem,
		"nodes", g.NodeCount(),
		"edges", g.EdgeCount(),
		"duration", result.Stats.EnumerateTime)

	// Stage 4: render, with per-format caching.
	renderStart := time.Now()
	for _, format := range opts.Formats {
		key := cache.ArtifactKey(opts.Problem, format, opts)
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			result.Artifacts[format] = data
			result.CacheInfo.Hits[format] = true
			continue
		}

		data, err := renderFormat(ctx, g, format, opts)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		result.Artifacts[format] = data
		_ = r.Cache.Set(ctx, key, data, cache.TTLArtifact)
	}
	result.Stats.RenderTime = time.Since(renderStart)

	logger.Info("rendered artifacts",
		"run", result.RunID,
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// buildGraph runs the enumerator selected by opts and builds the state
// graph, returning the highlighted node set and ways count for target
// sum runs.
func buildGraph(opts Options) (*graph.Graph, map[string]bool, int, error) {
	switch {
	case opts.Problem == ProblemTargetSum:
		res := enumerate.TargetSum(opts.nums, opts.Target)
		g, err := graph.FromTrace(res.Result)
		if err != nil {
			return nil, nil, 0, err
		}
		highlighted := graph.AcceptingPaths(res.Parents, res.GoalLeaves)
		g.Paint(highlighted)
		return g, highlighted, res.Ways, nil

	case opts.Mode == ModeDP:
		t := enumerate.BuildTable(opts.weights, opts.values, opts.Capacity)
		g, err := graph.FromTable(t)
		if err != nil {
			return nil, nil, 0, err
		}
		return g, nil, 0, nil

	default:
		res := enumerate.Knapsack(opts.weights, opts.values, opts.Capacity)
		g, err := graph.FromTrace(res)
		if err != nil {
			return nil, nil, 0, err
		}
		return g, nil, 0, nil
	}
}

// renderFormat produces one artifact for the graph.
func renderFormat(ctx context.Context, g *graph.Graph, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatHTML:
		return render.RenderHTML(g, render.HTMLOptions{Title: opts.Title})
	case FormatDOT:
		return []byte(render.ToDOT(g)), nil
	case FormatSVG:
		return render.RenderSVG(ctx, render.ToDOT(g))
	case FormatPNG:
		return render.RenderPNG(ctx, render.ToDOT(g))
	case FormatJSON:
		return graph.Marshal(g)
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

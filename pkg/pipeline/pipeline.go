// Package pipeline provides the core visualization pipeline for recviz.
//
// This package implements the complete enumerate → build → highlight →
// render pipeline shared by the CLI and the server. Centralizing it
// keeps behavior consistent across entry points.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Enumerate: walk every reachable problem state (DFS) or compute
//     the full DP table
//  2. Build: turn the trace/table into a directed labeled graph
//  3. Highlight: mark nodes on accepting paths (Target Sum only)
//  4. Render: generate output artifacts (HTML, SVG, PNG, DOT, JSON)
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, logger)
//	opts := pipeline.Options{
//	    Problem:  pipeline.ProblemTargetSum,
//	    Nums:     "1,1,1",
//	    Target:   2,
//	    Formats:  []string{pipeline.FormatHTML},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	html := result.Artifacts[pipeline.FormatHTML]
package pipeline

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/recviz/pkg/errors"
	"github.com/matzehuels/recviz/pkg/graph"
)

// Problems supported by the pipeline.
const (
	ProblemKnapsack  = "knapsack"
	ProblemTargetSum = "targetsum"
)

// Enumeration modes for the knapsack problem.
const (
	ModeDFS = "dfs" // brute-force recursion tree
	ModeDP  = "dp"  // bottom-up table derivation DAG
)

// Output format constants.
const (
	FormatHTML = "html"
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatDOT  = "dot"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatHTML: true,
	FormatSVG:  true,
	FormatPNG:  true,
	FormatDOT:  true,
	FormatJSON: true,
}

// Options contains all configuration for one pipeline run.
// List inputs are the raw comma-separated text the boundary received;
// they are parsed and validated before enumeration starts.
type Options struct {
	// Problem selection
	Problem string `json:"problem"`        // "knapsack" or "targetsum"
	Mode    string `json:"mode,omitempty"` // knapsack only: "dfs" (default) or "dp"

	// Knapsack inputs
	Weights  string `json:"weights,omitempty"`
	Values   string `json:"values,omitempty"`
	Capacity int    `json:"capacity,omitempty"`

	// Target sum inputs
	Nums   string `json:"nums,omitempty"`
	Target int    `json:"target,omitempty"`

	// Render options
	Formats []string `json:"formats,omitempty"`
	Title   string   `json:"title,omitempty"`

	// Logger overrides the runner's logger for this run. Not part of
	// the cache key.
	Logger *log.Logger `json:"-"`

	// Parsed inputs, populated by ValidateAndSetDefaults.
	weights []int
	values  []int
	nums    []int

	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID uniquely identifies this run in logs and artifacts.
	RunID string

	// Graph is the built state graph.
	Graph *graph.Graph

	// Highlighted is the set of node IDs on accepting paths.
	// Empty for knapsack runs.
	Highlighted map[string]bool

	// Ways is the Target Sum ways count. Zero for knapsack runs.
	Ways int

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains size and timing information.
	Stats Stats

	// CacheInfo tracks which artifacts came from the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount     int
	EdgeCount     int
	EnumerateTime time.Duration
	RenderTime    time.Duration
}

// CacheInfo tracks cache hits per requested format.
type CacheInfo struct {
	Hits map[string]bool
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: html, svg, png, dot, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAndSetDefaults parses the text inputs, checks cross-field
// consistency and applies defaults. Both failure modes the enumerators
// never see are detected here: non-integer tokens (INVALID_INPUT) and
// weights/values length mismatch (VALIDATION). The method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	switch o.Problem {
	case ProblemKnapsack:
		if o.Mode == "" {
			o.Mode = ModeDFS
		}
		if o.Mode != ModeDFS && o.Mode != ModeDP {
			return errors.New(errors.ErrCodeInvalidMode,
				"invalid mode: %q (must be 'dfs' or 'dp')", o.Mode)
		}
		weights, err := errors.ParseIntList(o.Weights)
		if err != nil {
			return err
		}
		values, err := errors.ParseIntList(o.Values)
		if err != nil {
			return err
		}
		if err := errors.ValidateSameLength(weights, values); err != nil {
			return err
		}
		o.weights, o.values = weights, values

	case ProblemTargetSum:
		nums, err := errors.ParseIntList(o.Nums)
		if err != nil {
			return err
		}
		o.nums = nums

	default:
		return errors.New(errors.ErrCodeInvalidProblem,
			"invalid problem: %q (must be 'knapsack' or 'targetsum')", o.Problem)
	}

	if len(o.Formats) == 0 {
		o.Formats = []string{FormatHTML}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}

	o.validated = true
	return nil
}

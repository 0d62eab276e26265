package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/recviz/pkg/pipeline"
)

// parseFormats parses a comma-separated format string into a slice.
// An empty string falls back to the config file, then to HTML.
func (c *CLI) parseFormats(s string) []string {
	if s == "" {
		if len(c.Config.Formats) > 0 {
			return c.Config.Formats
		}
		return []string{pipeline.FormatHTML}
	}
	return strings.Split(s, ",")
}

// outputPath derives the artifact path for one format. If output is
// empty the default base name is used; an extension matching the format
// is stripped so that "-o tree.html --format html,svg" writes tree.html
// and tree.svg.
func outputPath(output, defaultBase, format string) string {
	base := output
	if base == "" {
		base = defaultBase
	}
	if ext := filepath.Ext(base); ext != "" && pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		base = strings.TrimSuffix(base, ext)
	}
	return base + "." + format
}

// runAndWrite executes the pipeline and writes every requested artifact
// next to the current directory, printing a styled summary.
func (c *CLI) runAndWrite(ctx context.Context, opts pipeline.Options, output, defaultBase string, noCache bool) (*pipeline.Result, error) {
	opts.Logger = loggerFromContext(ctx)

	runner := c.newRunner(noCache)
	defer runner.Close()

	p := newProgress(opts.Logger)
	result, err := runner.Execute(ctx, opts)
	if err != nil {
		return nil, err
	}
	p.done(fmt.Sprintf("Enumerated %d states", result.Stats.NodeCount))

	for _, format := range opts.Formats {
		path := outputPath(output, defaultBase, format)
		if err := os.WriteFile(path, result.Artifacts[format], 0644); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}

	cached := true
	for _, format := range opts.Formats {
		if !result.CacheInfo.Hits[format] {
			cached = false
			break
		}
	}
	printStats(result.Stats.NodeCount, result.Stats.EdgeCount, cached)

	return result, nil
}

// Package render turns state graphs into visual artifacts.
//
// The primary artifact is a self-contained HTML document that displays
// the graph with vis-network in a fixed hierarchical top-down layout.
// The layout parameters (level separation 150, node spacing 100, tree
// spacing 200, direction up-down, physics disabled, smoothed edges) are
// part of the visual contract and must be preserved by any replacement
// renderer.
//
// Graphviz-based SVG/PNG output is available as a secondary path via
// [ToDOT], [RenderSVG] and [RenderPNG].
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"

	"github.com/matzehuels/recviz/pkg/graph"
)

// HTMLOptions configures the HTML artifact.
type HTMLOptions struct {
	// Title is the document title. Defaults to "recviz".
	Title string

	// Height is the CSS height of the network canvas. Defaults to "600px".
	Height string

	// Width is the CSS width of the network canvas. Defaults to "100%".
	Width string
}

func (o *HTMLOptions) setDefaults() {
	if o.Title == "" {
		o.Title = "recviz"
	}
	if o.Height == "" {
		o.Height = "600px"
	}
	if o.Width == "" {
		o.Width = "100%"
	}
}

// visOptions is the fixed vis-network configuration. Hierarchical
// top-down layout with physics disabled keeps the tree stable and
// reproducible across loads.
const visOptions = `{
  "layout": {
    "hierarchical": {
      "enabled": true,
      "levelSeparation": 150,
      "nodeSpacing": 100,
      "treeSpacing": 200,
      "direction": "UD",
      "sortMethod": "directed"
    }
  },
  "edges": {
    "smooth": {
      "type": "continuous"
    }
  },
  "physics": {
    "enabled": false
  }
}`

var htmlTmpl = template.Must(template.New("doc").Parse(`<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<script src="https://unpkg.com/vis-network@9.1.9/standalone/umd/vis-network.min.js"></script>
<style>
  body { margin: 0; font-family: sans-serif; }
  #network { width: {{.Width}}; height: {{.Height}}; border: 1px solid #ddd; }
</style>
</head>
<body>
<div id="network"></div>
<script>
  var nodes = new vis.DataSet({{.Nodes}});
  var edges = new vis.DataSet({{.Edges}});
  var container = document.getElementById("network");
  var options = {{.Options}};
  new vis.Network(container, {nodes: nodes, edges: edges}, options);
</script>
</body>
</html>
`))

type htmlData struct {
	Title   string
	Width   template.CSS
	Height  template.CSS
	Nodes   template.JS
	Edges   template.JS
	Options template.JS
}

// RenderHTML renders the graph as a self-contained HTML document.
// Node color is taken from the graph (the two-color highlight scheme is
// applied upstream by Graph.Paint); edges keep their transition labels.
func RenderHTML(g *graph.Graph, opts HTMLOptions) ([]byte, error) {
	opts.setDefaults()

	nodes := make([]graph.Node, 0, g.NodeCount())
	for _, n := range g.Nodes() {
		nodes = append(nodes, *n)
	}

	nodesJSON, err := json.Marshal(nodes)
	if err != nil {
		return nil, fmt.Errorf("encode nodes: %w", err)
	}
	edgesJSON, err := json.Marshal(g.Edges())
	if err != nil {
		return nil, fmt.Errorf("encode edges: %w", err)
	}

	var buf bytes.Buffer
	err = htmlTmpl.Execute(&buf, htmlData{
		Title:   opts.Title,
		Width:   template.CSS(opts.Width),
		Height:  template.CSS(opts.Height),
		Nodes:   template.JS(nodesJSON),
		Edges:   template.JS(edgesJSON),
		Options: template.JS(visOptions),
	})
	if err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}
	return buf.Bytes(), nil
}

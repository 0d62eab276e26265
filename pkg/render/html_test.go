package render

import (
	"strings"
	"testing"
)

func TestRenderHTML(t *testing.T) {
	g := buildTestGraph(t)

	out, err := RenderHTML(g, HTMLOptions{Title: "Find Target Sum Ways - DFS Tree"})
	if err != nil {
		t.Fatalf("RenderHTML() error = %v", err)
	}
	html := string(out)

	if !strings.Contains(html, "<title>Find Target Sum Ways - DFS Tree</title>") {
		t.Error("missing document title")
	}
	if !strings.Contains(html, "vis-network") {
		t.Error("missing vis-network script")
	}
	for _, n := range g.Nodes() {
		if !strings.Contains(html, n.ID) {
			t.Errorf("missing node %q", n.ID)
		}
	}
}

func TestRenderHTMLLayoutContract(t *testing.T) {
	g := buildTestGraph(t)

	out, err := RenderHTML(g, HTMLOptions{})
	if err != nil {
		t.Fatalf("RenderHTML() error = %v", err)
	}
	html := string(out)

	// The hierarchical layout parameters are fixed.
	for _, want := range []string{
		`"levelSeparation": 150`,
		`"nodeSpacing": 100`,
		`"treeSpacing": 200`,
		`"direction": "UD"`,
		`"sortMethod": "directed"`,
		`"type": "continuous"`,
		`"enabled": false`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("missing layout option %s", want)
		}
	}
}

func TestRenderHTMLColors(t *testing.T) {
	g := buildTestGraph(t)

	out, err := RenderHTML(g, HTMLOptions{})
	if err != nil {
		t.Fatalf("RenderHTML() error = %v", err)
	}
	html := string(out)

	if !strings.Contains(html, `"color":"orange"`) {
		t.Error("missing highlighted node color")
	}
	if !strings.Contains(html, `"color":"lightblue"`) {
		t.Error("missing normal node color")
	}
}

func TestRenderHTMLDefaults(t *testing.T) {
	g := buildTestGraph(t)

	out, err := RenderHTML(g, HTMLOptions{})
	if err != nil {
		t.Fatalf("RenderHTML() error = %v", err)
	}
	html := string(out)

	if !strings.Contains(html, "<title>recviz</title>") {
		t.Error("missing default title")
	}
	if !strings.Contains(html, "height: 600px") {
		t.Error("missing default height")
	}
	if !strings.Contains(html, "width: 100%") {
		t.Error("missing default width")
	}
}

package nodelink

import (
	"strings"
	"testing"

	"github.com/matzehuels/triagemap/pkg/flow"
)

func TestToDOT(t *testing.T) {
	scene := flow.Compose()
	dot := ToDOT(scene, Options{})

	if !strings.HasPrefix(dot, "digraph G {") {
		t.Error("DOT output should open a digraph")
	}
	if !strings.HasSuffix(strings.TrimSpace(dot), "}") {
		t.Error("DOT output should close the digraph")
	}

	// Every node and connector makes it into the graph.
	for _, n := range scene.Nodes {
		if !strings.Contains(dot, `"`+n.ID+`"`) {
			t.Errorf("DOT missing node %s", n.ID)
		}
	}
	if got := strings.Count(dot, "->"); got != len(scene.Connectors) {
		t.Errorf("DOT has %d edges, want %d", got, len(scene.Connectors))
	}
}

func TestToDOTThemeAttributes(t *testing.T) {
	dot := ToDOT(flow.Compose(), Options{})

	// Stage 2 fill from the theme registry.
	if !strings.Contains(dot, `fillcolor="#DCFCE7"`) {
		t.Error("DOT should carry theme fill colors")
	}
	// Dashed follow-up edges survive the conversion.
	if !strings.Contains(dot, "style=dashed") {
		t.Error("DOT should mark dashed connectors")
	}
}

func TestToDOTDetailed(t *testing.T) {
	scene := flow.Compose()

	plain := ToDOT(scene, Options{})
	detailed := ToDOT(scene, Options{Detailed: true})

	if strings.Contains(plain, "voice & keyboard turns") {
		t.Error("plain DOT should not include subtitles")
	}
	if !strings.Contains(detailed, "voice & keyboard turns") {
		t.Error("detailed DOT should include subtitles")
	}
}

func TestRenderSVG(t *testing.T) {
	svg, err := RenderSVG(ToDOT(flow.Compose(), Options{}))
	if err != nil {
		t.Fatalf("RenderSVG() error: %v", err)
	}

	out := string(svg)
	if !strings.Contains(out, "<svg") {
		t.Fatal("output does not look like SVG")
	}
	// The svg tag is normalized for responsive scaling.
	if !strings.Contains(out, `viewBox="0 0 `) {
		t.Error("svg tag should carry a normalized viewBox")
	}
	if !strings.Contains(out, "Retriage Judge") {
		t.Error("SVG missing node labels")
	}
}

func TestRenderSVGBadDOT(t *testing.T) {
	if _, err := RenderSVG("digraph {"); err == nil {
		t.Error("malformed DOT should fail to render")
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="720pt" height="540pt" viewBox="0.00 0.00 720.00 540.00" xmlns="http://www.w3.org/2000/svg">`)
	out := string(normalizeViewBox(in))

	if strings.Contains(out, "pt") {
		t.Error("normalized svg tag should not use point units")
	}
	if !strings.Contains(out, `viewBox="0 0 720.00 540.00"`) {
		t.Errorf("normalized viewBox wrong: %s", out)
	}

	// Input without a viewBox passes through untouched.
	raw := []byte("<svg>")
	if string(normalizeViewBox(raw)) != "<svg>" {
		t.Error("svg without viewBox should pass through")
	}
}

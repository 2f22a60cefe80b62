package styles

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
)

func testNode() Node {
	return Node{
		ID:        "judge",
		Category:  "router",
		Title:     "Retriage Judge",
		Subtitle:  "selects stage",
		X:         420, Y: 180, W: 240, H: 70,
		CX:        540, CY: 215,
		Radius:    10,
		Fill:      "#FEF3C7",
		Stroke:    "#D97706",
		TextColor: "#78350F",
	}
}

func TestClinicalRenderDefs(t *testing.T) {
	var buf bytes.Buffer
	Clinical{}.RenderDefs(&buf, []Marker{
		{ID: "arrow-slate", Hex: "#64748B"},
		{ID: "arrow-amber", Hex: "#D97706"},
	})
	out := buf.String()

	if strings.Count(out, "<defs>") != 1 || strings.Count(out, "</defs>") != 1 {
		t.Error("defs block should open and close exactly once")
	}
	if strings.Count(out, `<marker id="arrow-slate"`) != 1 {
		t.Error("slate marker should be declared exactly once")
	}
	if strings.Count(out, `<marker id="arrow-amber"`) != 1 {
		t.Error("amber marker should be declared exactly once")
	}
	if strings.Count(out, `<filter id="`+GlowFilterID+`"`) != 1 {
		t.Error("glow filter should be declared exactly once")
	}
	if !strings.Contains(out, "feGaussianBlur") || !strings.Contains(out, "feMerge") {
		t.Error("glow filter should blur and merge with the source graphic")
	}
}

func TestClinicalRenderNode(t *testing.T) {
	var buf bytes.Buffer
	Clinical{}.RenderNode(&buf, testNode())
	out := buf.String()

	for _, want := range []string{
		`id="node-judge"`,
		`data-category="router"`,
		`fill="#FEF3C7"`,
		`stroke="#D97706"`,
		`rx="10.0"`,
		">Retriage Judge</text>",
		">selects stage</text>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("node output missing %q\n%s", want, out)
		}
	}
	if strings.Contains(out, "stroke-dasharray") {
		t.Error("solid node should not be dashed")
	}
	if strings.Contains(out, "filter=") {
		t.Error("node without glow should not reference the filter")
	}
}

func TestClinicalRenderNodeDashedGlow(t *testing.T) {
	n := testNode()
	n.Dashed = true
	n.Glow = true
	n.Glyph = "🚨"

	var buf bytes.Buffer
	Clinical{}.RenderNode(&buf, n)
	out := buf.String()

	if !strings.Contains(out, `stroke-dasharray="6 4"`) {
		t.Error("dashed node should carry the dash pattern")
	}
	if !strings.Contains(out, `filter="url(#`+GlowFilterID+`)"`) {
		t.Error("glowing node should reference the shared filter by id")
	}
	if !strings.Contains(out, "🚨 Retriage Judge") {
		t.Error("glyph should prefix the title line")
	}
}

func TestClinicalTextLineCount(t *testing.T) {
	tests := []struct {
		name     string
		subtitle string
		detail   string
		offsets  []float64
	}{
		{"title only", "", "", []float64{TitleOnlyOffset}},
		{"with subtitle", "sub", "", []float64{PairTitleOffset, PairSubtitleOffset}},
		{"all lines", "sub", "det", []float64{TripleTitleOffset, TripleSubtitleOffset, TripleDetailOffset}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := testNode()
			n.Subtitle = tt.subtitle
			n.Detail = tt.detail

			var buf bytes.Buffer
			Clinical{}.RenderNode(&buf, n)
			out := buf.String()

			if got := strings.Count(out, "<text"); got != len(tt.offsets) {
				t.Errorf("rendered %d text lines, want %d", got, len(tt.offsets))
			}
			// Each line sits at its fixed baseline relative to the center.
			for _, off := range tt.offsets {
				want := fmt.Sprintf(`y="%.1f"`, n.CY+off)
				if !strings.Contains(out, want) {
					t.Errorf("missing baseline %s for offset %.1f", want, off)
				}
			}
		})
	}
}

func TestClinicalRenderConnector(t *testing.T) {
	var buf bytes.Buffer
	Clinical{}.RenderConnector(&buf, Connector{
		Path:     "M 10.0 20.0 L 30.0 40.0",
		Hex:      "#64748B",
		MarkerID: "arrow-slate",
		Dashed:   true,
	})
	out := buf.String()

	for _, want := range []string{
		`d="M 10.0 20.0 L 30.0 40.0"`,
		`stroke="#64748B"`,
		`marker-end="url(#arrow-slate)"`,
		`stroke-dasharray="7 5"`,
		`fill="none"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("connector output missing %q\n%s", want, out)
		}
	}
}

func TestClinicalRenderLabel(t *testing.T) {
	var buf bytes.Buffer
	Clinical{}.RenderLabel(&buf, Label{
		X: 52, Y: 350, Text: "answers re-enter", Color: "#B45309", Size: 11,
		Angle: -90, PX: 52, PY: 350,
	})
	out := buf.String()

	if !strings.Contains(out, `transform="rotate(-90.0, 52.0, 350.0)"`) {
		t.Errorf("rotated label should rotate about its pivot\n%s", out)
	}
	if !strings.Contains(out, ">answers re-enter</text>") {
		t.Error("label text missing")
	}

	buf.Reset()
	Clinical{}.RenderLabel(&buf, Label{X: 10, Y: 10, Text: "flat", Color: "#000000", Size: 10})
	if strings.Contains(buf.String(), "transform=") {
		t.Error("unrotated label should not carry a transform")
	}
}

func TestWireframeMonochrome(t *testing.T) {
	var buf bytes.Buffer
	Wireframe{}.RenderNode(&buf, testNode())
	out := buf.String()

	if strings.Contains(out, "#FEF3C7") {
		t.Error("wireframe should ignore category fills")
	}
	if !strings.Contains(out, wireframeInk) {
		t.Error("wireframe should stroke in ink")
	}

	buf.Reset()
	Wireframe{}.RenderConnector(&buf, Connector{Path: "M 0.0 0.0 L 1.0 1.0", Hex: "#DC2626", MarkerID: "arrow-red"})
	if !strings.Contains(buf.String(), `marker-end="url(#arrow-red)"`) {
		t.Error("wireframe connectors still reference per-color markers")
	}
}

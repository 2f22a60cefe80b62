package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/triagemap/pkg/diagram"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed includes subtitle lines in node labels.
	// When false, only the node title is shown.
	Detailed bool
}

// ToDOT converts a scene to Graphviz DOT format for node-link visualization.
// Node fills and dashing come from the theme registry; edge colors from the
// connector palette. The resulting DOT string can be rendered using [RenderSVG].
func ToDOT(s *diagram.Scene, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.6;\n")
	buf.WriteString("  nodesep=0.35;\n")
	buf.WriteString("\n")

	for _, n := range s.Nodes {
		label := fmtLabel(n, opts.Detailed)
		attrs := fmtAttrs(n, label)
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, c := range s.Connectors {
		attrs := []string{}
		if hex, ok := c.Color.Hex(); ok {
			attrs = append(attrs, fmt.Sprintf("color=%q", hex))
		}
		if c.Dashed {
			attrs = append(attrs, "style=dashed")
		}
		if len(attrs) > 0 {
			fmt.Fprintf(&buf, "  %q -> %q [%s];\n", c.From, c.To, strings.Join(attrs, ", "))
		} else {
			fmt.Fprintf(&buf, "  %q -> %q;\n", c.From, c.To)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(n diagram.Node, detailed bool) string {
	if !detailed || n.Subtitle == "" {
		return n.Title
	}
	parts := []string{n.Title, n.Subtitle}
	if n.Detail != "" {
		parts = append(parts, n.Detail)
	}
	return strings.Join(parts, "\n")
}

func fmtAttrs(n diagram.Node, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if theme, ok := diagram.Lookup(n.Category); ok {
		attrs = append(attrs,
			fmt.Sprintf("fillcolor=%q", theme.Fill),
			fmt.Sprintf("color=%q", theme.Stroke),
			fmt.Sprintf("fontcolor=%q", theme.Text))
		if theme.Dashed {
			attrs = append(attrs, "style=\"rounded,filled,dashed\"")
		}
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with
// render.ToPDF or render.ToPNG.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the Graphviz svg tag so the diagram scales to
// its container instead of using point units.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

package styles

import (
	"bytes"
	"fmt"
)

// GlowFilterID is the id of the shared emphasis filter declared in defs.
const GlowFilterID = "glow"

// Clinical is the default style: soft category fills, rounded corners,
// and a blur+merge glow on emphasized nodes.
type Clinical struct{}

// RenderDefs writes the marker palette and the shared glow filter.
// Everything here follows the declare-once-reference-many discipline:
// connectors and nodes reference these definitions by id.
func (Clinical) RenderDefs(buf *bytes.Buffer, markers []Marker) {
	buf.WriteString("  <defs>\n")
	for _, m := range markers {
		fmt.Fprintf(buf, `    <marker id="%s" viewBox="0 0 10 10" refX="9" refY="5" markerWidth="7" markerHeight="7" orient="auto-start-reverse">`+"\n", m.ID)
		fmt.Fprintf(buf, `      <path d="M 0 0 L 10 5 L 0 10 z" fill="%s"/>`+"\n", m.Hex)
		buf.WriteString("    </marker>\n")
	}
	fmt.Fprintf(buf, `    <filter id="%s" x="-40%%" y="-40%%" width="180%%" height="180%%">`+"\n", GlowFilterID)
	buf.WriteString(`      <feGaussianBlur stdDeviation="4" result="blur"/>` + "\n")
	buf.WriteString("      <feMerge>\n")
	buf.WriteString(`        <feMergeNode in="blur"/>` + "\n")
	buf.WriteString(`        <feMergeNode in="SourceGraphic"/>` + "\n")
	buf.WriteString("      </feMerge>\n")
	buf.WriteString("    </filter>\n")
	buf.WriteString("  </defs>\n")
}

// RenderNode writes the node rect and its centered text lines.
func (Clinical) RenderNode(buf *bytes.Buffer, n Node) {
	fmt.Fprintf(buf, `  <rect class="node" id="node-%s" data-category="%s" x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="%.1f" fill="%s" stroke="%s" stroke-width="1.5"`,
		n.ID, EscapeXML(n.Category), n.X, n.Y, n.W, n.H, n.Radius, n.Fill, n.Stroke)
	if n.Dashed {
		buf.WriteString(` stroke-dasharray="6 4"`)
	}
	if n.Glow {
		fmt.Fprintf(buf, ` filter="url(#%s)"`, GlowFilterID)
	}
	buf.WriteString("/>\n")

	renderNodeText(buf, n)
}

// renderNodeText writes 1-3 centered text lines using the fixed baseline
// offsets for the line count.
func renderNodeText(buf *bytes.Buffer, n Node) {
	offsets := LineOffsets(n.Subtitle != "", n.Detail != "")

	title := n.Title
	if n.Glyph != "" {
		title = n.Glyph + " " + title
	}

	lines := []struct {
		text   string
		size   float64
		weight string
	}{
		{title, TitleFontSize, "bold"},
		{n.Subtitle, SubtitleFontSize, "normal"},
		{n.Detail, DetailFontSize, "normal"},
	}

	for i, off := range offsets {
		line := lines[i]
		if line.text == "" {
			continue
		}
		fmt.Fprintf(buf, `  <text class="node-text" data-node="%s" x="%.1f" y="%.1f" text-anchor="middle" font-family="%s" font-size="%.0f" font-weight="%s" fill="%s">%s</text>`+"\n",
			n.ID, n.CX, n.CY+off, FontFamily, line.size, line.weight, n.TextColor, EscapeXML(line.text))
	}
}

// RenderConnector writes the stroked path with its arrowhead marker.
func (Clinical) RenderConnector(buf *bytes.Buffer, c Connector) {
	fmt.Fprintf(buf, `  <path d="%s" fill="none" stroke="%s" stroke-width="2"`, c.Path, c.Hex)
	if c.Dashed {
		buf.WriteString(` stroke-dasharray="7 5"`)
	}
	fmt.Fprintf(buf, ` marker-end="url(#%s)"/>`+"\n", c.MarkerID)
}

// RenderLabel writes a free-standing text label, rotated about its pivot
// when an angle is set.
func (Clinical) RenderLabel(buf *bytes.Buffer, l Label) {
	fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" text-anchor="middle" font-family="%s" font-size="%.0f" fill="%s"`,
		l.X, l.Y, FontFamily, l.Size, l.Color)
	if l.Angle != 0 {
		fmt.Fprintf(buf, ` transform="rotate(%.1f, %.1f, %.1f)"`, l.Angle, l.PX, l.PY)
	}
	fmt.Fprintf(buf, `>%s</text>`+"\n", EscapeXML(l.Text))
}

// Ensure Clinical implements Style.
var _ Style = Clinical{}

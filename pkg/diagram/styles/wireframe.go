package styles

import (
	"bytes"
	"fmt"
)

const wireframeInk = "#1E293B"

// Wireframe is a monochrome style for print and review: white fills,
// a single ink color, no glow. Dashing is preserved since it carries
// meaning (tentative flows, carried-over state).
type Wireframe struct{}

// RenderDefs writes one ink-colored marker per palette entry. Marker ids
// must match what connectors reference, so the full palette is declared
// even though every arrowhead shares the ink color.
func (Wireframe) RenderDefs(buf *bytes.Buffer, markers []Marker) {
	buf.WriteString("  <defs>\n")
	for _, m := range markers {
		fmt.Fprintf(buf, `    <marker id="%s" viewBox="0 0 10 10" refX="9" refY="5" markerWidth="7" markerHeight="7" orient="auto-start-reverse">`+"\n", m.ID)
		fmt.Fprintf(buf, `      <path d="M 0 0 L 10 5 L 0 10 z" fill="%s"/>`+"\n", wireframeInk)
		buf.WriteString("    </marker>\n")
	}
	buf.WriteString("  </defs>\n")
}

func (Wireframe) RenderNode(buf *bytes.Buffer, n Node) {
	fmt.Fprintf(buf, `  <rect class="node" id="node-%s" data-category="%s" x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="%.1f" fill="white" stroke="%s" stroke-width="1.5"`,
		n.ID, EscapeXML(n.Category), n.X, n.Y, n.W, n.H, n.Radius, wireframeInk)
	if n.Dashed {
		buf.WriteString(` stroke-dasharray="6 4"`)
	}
	buf.WriteString("/>\n")

	mono := n
	mono.TextColor = wireframeInk
	renderNodeText(buf, mono)
}

func (Wireframe) RenderConnector(buf *bytes.Buffer, c Connector) {
	fmt.Fprintf(buf, `  <path d="%s" fill="none" stroke="%s" stroke-width="1.5"`, c.Path, wireframeInk)
	if c.Dashed {
		buf.WriteString(` stroke-dasharray="7 5"`)
	}
	fmt.Fprintf(buf, ` marker-end="url(#%s)"/>`+"\n", c.MarkerID)
}

func (Wireframe) RenderLabel(buf *bytes.Buffer, l Label) {
	fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" text-anchor="middle" font-family="%s" font-size="%.0f" fill="%s"`,
		l.X, l.Y, FontFamily, l.Size, wireframeInk)
	if l.Angle != 0 {
		fmt.Fprintf(buf, ` transform="rotate(%.1f, %.1f, %.1f)"`, l.Angle, l.PX, l.PY)
	}
	fmt.Fprintf(buf, `>%s</text>`+"\n", EscapeXML(l.Text))
}

// Ensure Wireframe implements Style.
var _ Style = Wireframe{}

package sink

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/triagemap/pkg/diagram"
	"github.com/matzehuels/triagemap/pkg/diagram/styles"
)

const hoverCSS = `
    .node { transition: stroke-width 0.2s ease; }
    .node.highlight { stroke-width: 4; }
    .node-text { transition: transform 0.2s ease; transform-origin: center; transform-box: fill-box; }
    .node-text.highlight { font-weight: bold; }`

const hoverJS = `
    function highlight(cat) {
      document.querySelectorAll('.node').forEach(n => {
        const on = n.dataset.category === cat;
        n.classList.toggle('highlight', on);
        document.querySelectorAll('.node-text[data-node="' + n.id.replace('node-', '') + '"]')
          .forEach(t => t.classList.toggle('highlight', on));
      });
    }
    function clearHighlight() {
      document.querySelectorAll('.node, .node-text').forEach(el => el.classList.remove('highlight'));
    }
    document.querySelectorAll('.node').forEach(el => {
      el.addEventListener('mouseenter', () => highlight(el.dataset.category));
      el.addEventListener('mouseleave', clearHighlight);
    });`

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style  styles.Style
	legend bool
	hover  bool
}

// WithStyle selects the drawing style (default styles.Clinical).
func WithStyle(s styles.Style) SVGOption { return func(r *svgRenderer) { r.style = s } }

// WithLegend appends the legend panel below the diagram frame.
func WithLegend() SVGOption { return func(r *svgRenderer) { r.legend = true } }

// WithHover embeds the hover-highlight CSS/JS so nodes of the same
// category light up together under a pointer.
func WithHover() SVGOption { return func(r *svgRenderer) { r.hover = true } }

// RenderSVG renders a scene as a standalone SVG document. The scene is
// validated first; theme or palette lookup failures are configuration
// defects and abort the render.
func RenderSVG(s *diagram.Scene, opts ...SVGOption) ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	r := newSVGRenderer(opts...)

	totalHeight := s.Height
	if r.legend {
		totalHeight += legendPanelHeight
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		s.Width, totalHeight, s.Width, totalHeight)

	r.style.RenderDefs(&buf, buildMarkers())
	renderContent(&buf, &r, s)

	if r.hover {
		renderHoverInteraction(&buf)
	}
	if r.legend {
		renderLegendPanel(&buf, r.style, s.Width, s.Height, diagram.Legend())
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes(), nil
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{style: styles.Clinical{}}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// buildMarkers declares one arrowhead per palette color, independent of
// which colors the scene happens to use. Connectors reference these by id.
func buildMarkers() []styles.Marker {
	colors := diagram.Palette()
	markers := make([]styles.Marker, 0, len(colors))
	for _, c := range colors {
		hex, _ := c.Hex()
		markers = append(markers, styles.Marker{ID: c.MarkerID(), Hex: hex})
	}
	return markers
}

// renderContent paints connectors under nodes, then labels and the title
// on top. Slice order within each group is preserved.
func renderContent(buf *bytes.Buffer, r *svgRenderer, s *diagram.Scene) {
	for _, c := range s.Connectors {
		r.style.RenderConnector(buf, buildConnector(c))
	}
	for _, n := range s.Nodes {
		r.style.RenderNode(buf, buildNode(n))
	}
	for _, l := range s.Labels {
		r.style.RenderLabel(buf, buildLabel(l))
	}
	if s.Title != "" {
		r.style.RenderLabel(buf, styles.Label{
			X: s.Width / 2, Y: 34, PX: s.Width / 2, PY: 34,
			Text: s.Title, Color: "#0F172A", Size: 20,
		})
	}
}

func buildNode(n diagram.Node) styles.Node {
	theme, _ := diagram.Lookup(n.Category)
	return styles.Node{
		ID:       n.ID,
		Category: string(n.Category),
		Title:    n.Title,
		Subtitle: n.Subtitle,
		Detail:   n.Detail,
		Glyph:    n.Glyph,
		X:        n.Rect.X, Y: n.Rect.Y, W: n.Rect.W, H: n.Rect.H,
		CX: n.Rect.CenterX(), CY: n.Rect.CenterY(),
		Radius:    n.CornerRadius(),
		Fill:      theme.Fill,
		Stroke:    theme.Stroke,
		TextColor: theme.Text,
		Dashed:    theme.Dashed,
		Glow:      n.Glow,
	}
}

func buildConnector(c diagram.Connector) styles.Connector {
	hex, _ := c.Color.Hex()
	return styles.Connector{
		Path:     c.PathData(),
		Hex:      hex,
		MarkerID: c.Color.MarkerID(),
		Dashed:   c.Dashed,
	}
}

func buildLabel(l diagram.Label) styles.Label {
	out := styles.Label{
		X: l.At.X, Y: l.At.Y,
		Text:  l.Text,
		Color: l.Color,
		Size:  l.Size,
		Angle: l.Angle,
		PX:    l.At.X, PY: l.At.Y,
	}
	if out.Color == "" {
		out.Color = "#475569"
	}
	if out.Size == 0 {
		out.Size = 12
	}
	if l.Pivot != nil {
		out.PX, out.PY = l.Pivot.X, l.Pivot.Y
	}
	return out
}

func renderHoverInteraction(buf *bytes.Buffer) {
	fmt.Fprintf(buf, "  <style>%s\n  </style>\n", hoverCSS)
	fmt.Fprintf(buf, "  <script type=\"text/javascript\"><![CDATA[%s\n  ]]></script>\n", hoverJS)
}

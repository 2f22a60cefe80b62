// Package styles defines the visual drawing primitives for diagram rendering.
//
// A [Style] receives fully resolved drawing data (theme colors already
// looked up, marker ids already assigned) and writes SVG fragments. Two
// styles ship with triagemap:
//
//   - [Clinical]: the default — soft category fills, rounded corners, a
//     glow filter on emphasized nodes
//   - [Wireframe]: monochrome outlines for print and review
package styles

import "bytes"

// Style defines the visual appearance for diagram rendering.
// Implementations control how defs, nodes, connectors, and labels are drawn.
type Style interface {
	// RenderDefs writes SVG <defs> content: one arrowhead marker per
	// palette color plus shared filters. Markers are declared once here
	// and referenced by id, never inlined per connector.
	RenderDefs(buf *bytes.Buffer, markers []Marker)
	// RenderNode writes the SVG for a single node box with its text lines.
	RenderNode(buf *bytes.Buffer, n Node)
	// RenderConnector writes the SVG for a directed edge path.
	RenderConnector(buf *bytes.Buffer, c Connector)
	// RenderLabel writes the SVG for a free-standing text label.
	RenderLabel(buf *bytes.Buffer, l Label)
}

// Marker describes one arrowhead definition: its id and stroke color.
type Marker struct {
	ID  string
	Hex string
}

// Node contains all data needed to render a single node box. Colors are
// already resolved from the theme registry.
type Node struct {
	ID         string  // Node identifier
	Category   string  // Theme category (exposed for hover grouping)
	Title      string  // First text line
	Subtitle   string  // Optional second line
	Detail     string  // Optional third line
	Glyph      string  // Optional leading glyph on the title line
	X, Y, W, H float64 // Position and dimensions
	CX, CY     float64 // Center coordinates (for text)
	Radius     float64 // Corner radius
	Fill       string  // Background color
	Stroke     string  // Border color
	TextColor  string  // Text color
	Dashed     bool    // Dashed border
	Glow       bool    // Apply the shared glow filter
}

// Connector contains positioning data for rendering a directed edge.
type Connector struct {
	Path     string // SVG path expression
	Hex      string // Stroke color
	MarkerID string // Arrowhead marker reference
	Dashed   bool   // Dashed stroke
}

// Label contains positioning data for a free-standing text label.
type Label struct {
	X, Y   float64 // Anchor position
	Text   string  // Label text
	Color  string  // Text color (resolved; never empty)
	Size   float64 // Font size (resolved; never zero)
	Angle  float64 // Rotation in degrees, 0 for horizontal
	PX, PY float64 // Rotation pivot (equals anchor when unset upstream)
}

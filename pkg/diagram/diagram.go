package diagram

import (
	"fmt"

	"github.com/matzehuels/triagemap/pkg/errors"
)

// DefaultRadius is the corner radius applied to nodes that don't set one.
const DefaultRadius = 10.0

// Point is a position in scene coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is an axis-aligned rectangle in scene coordinates.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"width"`
	H float64 `json:"height"`
}

func (r Rect) Right() float64   { return r.X + r.W }
func (r Rect) Bottom() float64  { return r.Y + r.H }
func (r Rect) CenterX() float64 { return r.X + r.W/2 }
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Intersects reports whether r and o overlap.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Union returns the smallest rectangle containing both r and o.
func (r Rect) Union(o Rect) Rect {
	x := min(r.X, o.X)
	y := min(r.Y, o.Y)
	return Rect{
		X: x,
		Y: y,
		W: max(r.Right(), o.Right()) - x,
		H: max(r.Bottom(), o.Bottom()) - y,
	}
}

// Node is a positioned, themed box with up to three lines of centered text.
// Title is required; Subtitle and Detail are optional and shift the vertical
// text layout (see the styles package for the offset rule).
type Node struct {
	ID       string   `json:"id"`
	Category Category `json:"category"`
	Rect     Rect     `json:"rect"`
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle,omitempty"`
	Detail   string   `json:"detail,omitempty"`
	Glyph    string   `json:"glyph,omitempty"`
	Radius   float64  `json:"radius,omitempty"` // 0 means DefaultRadius
	Glow     bool     `json:"glow,omitempty"`
}

// CornerRadius returns the effective corner radius.
func (n Node) CornerRadius() float64 {
	if n.Radius > 0 {
		return n.Radius
	}
	return DefaultRadius
}

// Connector is a directed path between two nodes, stroked in a palette
// color and terminated with that color's arrowhead marker. Straight
// connectors leave C1/C2 nil; curved connectors carry two cubic control
// points.
type Connector struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Start  Point  `json:"start"`
	End    Point  `json:"end"`
	C1     *Point `json:"c1,omitempty"`
	C2     *Point `json:"c2,omitempty"`
	Color  Color  `json:"color"`
	Dashed bool   `json:"dashed,omitempty"`
}

// Curved reports whether the connector is a cubic curve.
func (c Connector) Curved() bool { return c.C1 != nil && c.C2 != nil }

// PathData returns the SVG path expression for the connector geometry.
func (c Connector) PathData() string {
	if c.Curved() {
		return fmt.Sprintf("M %.1f %.1f C %.1f %.1f, %.1f %.1f, %.1f %.1f",
			c.Start.X, c.Start.Y, c.C1.X, c.C1.Y, c.C2.X, c.C2.Y, c.End.X, c.End.Y)
	}
	return fmt.Sprintf("M %.1f %.1f L %.1f %.1f", c.Start.X, c.Start.Y, c.End.X, c.End.Y)
}

// Label is free-standing annotated text, optionally rotated about a pivot.
// Zero Size and empty Color fall back to the style's defaults. A nil Pivot
// rotates about the label position itself.
type Label struct {
	At    Point   `json:"at"`
	Text  string  `json:"text"`
	Color string  `json:"color,omitempty"`
	Size  float64 `json:"size,omitempty"`
	Angle float64 `json:"angle,omitempty"`
	Pivot *Point  `json:"pivot,omitempty"`
}

// Scene is the complete diagram description: canvas dimensions plus every
// node, connector and label at its final position. Order within each slice
// is paint order.
type Scene struct {
	Title      string      `json:"title,omitempty"`
	Width      float64     `json:"width"`
	Height     float64     `json:"height"`
	Nodes      []Node      `json:"nodes"`
	Connectors []Connector `json:"connectors"`
	Labels     []Label     `json:"labels,omitempty"`
}

// Node returns the node with the given id.
func (s *Scene) Node(id string) (Node, bool) {
	for _, n := range s.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

// Validate checks the scene for configuration defects: duplicate or empty
// node ids, categories missing from the theme registry, connector endpoints
// that reference unknown nodes, and connector colors missing from the
// marker palette. These are authoring mistakes and are surfaced before any
// rendering rather than handled at draw time.
func (s *Scene) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidScene, "canvas dimensions must be positive, got %.0fx%.0f", s.Width, s.Height)
	}

	seen := make(map[string]struct{}, len(s.Nodes))
	for _, n := range s.Nodes {
		if n.ID == "" {
			return errors.New(errors.ErrCodeInvalidScene, "node with empty id (title %q)", n.Title)
		}
		if _, dup := seen[n.ID]; dup {
			return errors.New(errors.ErrCodeInvalidScene, "duplicate node id %q", n.ID)
		}
		seen[n.ID] = struct{}{}

		if n.Title == "" {
			return errors.New(errors.ErrCodeInvalidScene, "node %s has no title", n.ID)
		}
		if _, ok := Lookup(n.Category); !ok {
			return errors.New(errors.ErrCodeUnknownCategory, "node %s references unknown category %q", n.ID, n.Category)
		}
		if n.Rect.W <= 0 || n.Rect.H <= 0 {
			return errors.New(errors.ErrCodeInvalidScene, "node %s has degenerate rect", n.ID)
		}
	}

	for _, c := range s.Connectors {
		if _, ok := seen[c.From]; !ok {
			return errors.New(errors.ErrCodeInvalidScene, "connector %s→%s references unknown source node", c.From, c.To)
		}
		if _, ok := seen[c.To]; !ok {
			return errors.New(errors.ErrCodeInvalidScene, "connector %s→%s references unknown target node", c.From, c.To)
		}
		if _, ok := c.Color.Hex(); !ok {
			return errors.New(errors.ErrCodeUnknownColor, "connector %s→%s references color %q with no arrowhead marker", c.From, c.To, c.Color)
		}
	}

	return nil
}

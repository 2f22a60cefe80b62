package diagram

import (
	"strings"
	"testing"
)

// testScene builds a minimal valid two-node scene.
func testScene() *Scene {
	return &Scene{
		Width:  400,
		Height: 300,
		Nodes: []Node{
			{ID: "a", Category: CategoryRouter, Rect: Rect{X: 10, Y: 10, W: 100, H: 50}, Title: "A"},
			{ID: "b", Category: CategoryOutput, Rect: Rect{X: 10, Y: 200, W: 100, H: 50}, Title: "B"},
		},
		Connectors: []Connector{
			{From: "a", To: "b", Start: Point{X: 60, Y: 60}, End: Point{X: 60, Y: 200}, Color: ColorSlate},
		},
	}
}

func TestRectHelpers(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 100, H: 40}

	if got := r.Right(); got != 110 {
		t.Errorf("Right() = %v, want 110", got)
	}
	if got := r.Bottom(); got != 60 {
		t.Errorf("Bottom() = %v, want 60", got)
	}
	if got := r.CenterX(); got != 60 {
		t.Errorf("CenterX() = %v, want 60", got)
	}
	if got := r.CenterY(); got != 40 {
		t.Errorf("CenterY() = %v, want 40", got)
	}
}

func TestRectIntersects(t *testing.T) {
	base := Rect{X: 0, Y: 0, W: 100, H: 100}
	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlapping", Rect{X: 50, Y: 50, W: 100, H: 100}, true},
		{"contained", Rect{X: 25, Y: 25, W: 10, H: 10}, true},
		{"disjoint right", Rect{X: 200, Y: 0, W: 50, H: 50}, false},
		{"disjoint below", Rect{X: 0, Y: 200, W: 50, H: 50}, false},
		{"edge touching", Rect{X: 100, Y: 0, W: 50, H: 50}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects(%+v) = %v, want %v", tt.other, got, tt.want)
			}
			if got := tt.other.Intersects(base); got != tt.want {
				t.Errorf("Intersects should be symmetric for %+v", tt.other)
			}
		})
	}
}

func TestRectUnion(t *testing.T) {
	a := Rect{X: 10, Y: 10, W: 20, H: 20}
	b := Rect{X: 50, Y: 40, W: 30, H: 10}

	got := a.Union(b)
	want := Rect{X: 10, Y: 10, W: 70, H: 40}
	if got != want {
		t.Errorf("Union = %+v, want %+v", got, want)
	}
}

func TestConnectorPathData(t *testing.T) {
	straight := Connector{
		Start: Point{X: 10, Y: 20},
		End:   Point{X: 30, Y: 40},
	}
	if straight.Curved() {
		t.Error("connector without control points should not be curved")
	}
	if got, want := straight.PathData(), "M 10.0 20.0 L 30.0 40.0"; got != want {
		t.Errorf("PathData() = %q, want %q", got, want)
	}

	curved := Connector{
		Start: Point{X: 10, Y: 20},
		C1:    &Point{X: 10, Y: 50},
		C2:    &Point{X: 30, Y: 50},
		End:   Point{X: 30, Y: 80},
	}
	if !curved.Curved() {
		t.Error("connector with both control points should be curved")
	}
	if got := curved.PathData(); !strings.HasPrefix(got, "M 10.0 20.0 C ") {
		t.Errorf("PathData() = %q, want cubic curve expression", got)
	}
}

func TestNodeCornerRadius(t *testing.T) {
	if got := (Node{}).CornerRadius(); got != DefaultRadius {
		t.Errorf("zero Radius should default to %v, got %v", DefaultRadius, got)
	}
	if got := (Node{Radius: 6}).CornerRadius(); got != 6 {
		t.Errorf("explicit Radius should win, got %v", got)
	}
}

func TestSceneNode(t *testing.T) {
	s := testScene()

	n, ok := s.Node("a")
	if !ok || n.ID != "a" {
		t.Errorf("Node(a) = %+v, %v", n, ok)
	}
	if _, ok := s.Node("missing"); ok {
		t.Error("Node(missing) should report not found")
	}
}

func TestSceneValidate(t *testing.T) {
	if err := testScene().Validate(); err != nil {
		t.Fatalf("valid scene failed validation: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Scene)
	}{
		{"zero width", func(s *Scene) { s.Width = 0 }},
		{"empty node id", func(s *Scene) { s.Nodes[0].ID = "" }},
		{"duplicate node id", func(s *Scene) { s.Nodes[1].ID = "a" }},
		{"missing title", func(s *Scene) { s.Nodes[0].Title = "" }},
		{"unknown category", func(s *Scene) { s.Nodes[0].Category = "space-station" }},
		{"degenerate rect", func(s *Scene) { s.Nodes[0].Rect.W = 0 }},
		{"unknown source", func(s *Scene) { s.Connectors[0].From = "ghost" }},
		{"unknown target", func(s *Scene) { s.Connectors[0].To = "ghost" }},
		{"unknown color", func(s *Scene) { s.Connectors[0].Color = "mauve" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testScene()
			tt.mutate(s)
			if err := s.Validate(); err == nil {
				t.Error("Validate() should fail")
			}
		})
	}
}

package diagram

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func TestMarshalSceneDeterministic(t *testing.T) {
	s := testScene()

	d1, err := MarshalScene(s)
	if err != nil {
		t.Fatalf("MarshalScene error: %v", err)
	}
	d2, _ := MarshalScene(s)
	if !bytes.Equal(d1, d2) {
		t.Error("MarshalScene should be deterministic (it feeds the cache key)")
	}

	if !strings.Contains(string(d1), `"nodes"`) {
		t.Error("output should contain a nodes array")
	}
}

func TestSceneRoundTrip(t *testing.T) {
	s := testScene()
	s.Title = "Round Trip"

	path := filepath.Join(t.TempDir(), "scene.json")
	if err := WriteSceneFile(s, path); err != nil {
		t.Fatalf("WriteSceneFile error: %v", err)
	}

	got, err := ReadSceneFile(path)
	if err != nil {
		t.Fatalf("ReadSceneFile error: %v", err)
	}

	if got.Title != s.Title {
		t.Errorf("Title = %q, want %q", got.Title, s.Title)
	}
	if len(got.Nodes) != len(s.Nodes) || len(got.Connectors) != len(s.Connectors) {
		t.Errorf("round trip changed counts: %d/%d nodes, %d/%d connectors",
			len(got.Nodes), len(s.Nodes), len(got.Connectors), len(s.Connectors))
	}

	n, ok := got.Node("a")
	if !ok {
		t.Fatal("round-tripped scene lost node a")
	}
	if n.Category != CategoryRouter || n.Rect != s.Nodes[0].Rect {
		t.Errorf("node a changed in round trip: %+v", n)
	}
}

func TestReadSceneValidates(t *testing.T) {
	// A syntactically valid scene with a broken connector must be rejected
	// at read time, not at render time.
	input := `{
		"width": 100, "height": 100,
		"nodes": [{"id": "a", "category": "router", "rect": {"x": 0, "y": 0, "width": 10, "height": 10}, "title": "A"}],
		"connectors": [{"from": "a", "to": "ghost", "start": {"x": 0, "y": 0}, "end": {"x": 1, "y": 1}, "color": "slate"}]
	}`

	if _, err := ReadScene(strings.NewReader(input)); err == nil {
		t.Error("ReadScene should reject a connector to an unknown node")
	}
}

func TestReadSceneRejectsGarbage(t *testing.T) {
	if _, err := ReadScene(strings.NewReader("not json")); err == nil {
		t.Error("ReadScene should fail on malformed JSON")
	}
}

func TestReadSceneFileMissing(t *testing.T) {
	if _, err := ReadSceneFile(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("ReadSceneFile should fail for a missing file")
	}
}

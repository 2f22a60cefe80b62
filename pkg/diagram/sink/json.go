package sink

import "github.com/matzehuels/triagemap/pkg/diagram"

// RenderJSON emits the validated scene graph as indented JSON.
// The output round-trips through diagram.ReadScene.
func RenderJSON(s *diagram.Scene) ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return diagram.MarshalScene(s)
}

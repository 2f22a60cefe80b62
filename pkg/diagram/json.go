package diagram

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// =============================================================================
// Scene Serialization API
// =============================================================================

// MarshalScene converts a scene to indented JSON bytes. The output is
// deterministic: slices keep their declaration (paint) order.
func MarshalScene(s *Scene) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeSceneTo(s, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteScene writes a scene as JSON to an io.Writer.
func WriteScene(s *Scene, w io.Writer) error {
	return writeSceneTo(s, w)
}

// WriteSceneFile writes a scene to a JSON file with 0644 permissions.
func WriteSceneFile(s *Scene, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return writeSceneTo(s, f)
}

// ReadScene decodes a JSON scene from an io.Reader and validates it.
// Import → export round-trips produce identical scenes.
func ReadScene(r io.Reader) (*Scene, error) {
	var s Scene
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// ReadSceneFile reads and validates a scene JSON file.
func ReadSceneFile(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadScene(f)
}

// =============================================================================
// Internal Implementation
// =============================================================================

func writeSceneTo(s *Scene, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

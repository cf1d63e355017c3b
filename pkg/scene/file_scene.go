package scene

import (
	"fmt"

	"github.com/df07/go-lambert-raytracer/pkg/core"
	"github.com/df07/go-lambert-raytracer/pkg/loaders"
)

// NewFileScene creates a scene from an OBJ or JSON scene file. Transformations
// listed in the file are applied in order.
func NewFileScene(path string, logger core.Logger) (*Scene, error) {
	sceneFile, err := loaders.LoadScene(path, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to load scene: %w", err)
	}

	s := New()
	s.Camera = sceneFile.Camera
	s.AddShape(sceneFile.Shapes...)
	s.AddLight(sceneFile.Lights...)
	if sceneFile.Width > 0 && sceneFile.Height > 0 {
		s.Width, s.Height = sceneFile.Width, sceneFile.Height
	}

	for _, st := range sceneFile.Transforms {
		if err := s.Transform(st.Index, st.Transformation); err != nil {
			return nil, fmt.Errorf("%s: %s: %w", path, st.Transformation, err)
		}
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

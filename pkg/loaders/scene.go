package loaders

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-lambert-raytracer/pkg/core"
	"github.com/df07/go-lambert-raytracer/pkg/geometry"
	"github.com/df07/go-lambert-raytracer/pkg/lights"
)

// ErrUnsupportedFormat is returned for scene files that are neither OBJ nor JSON
var ErrUnsupportedFormat = errors.New("unsupported scene format")

// SceneFile contains everything read from a scene file
type SceneFile struct {
	Path       string
	Shapes     []geometry.Shape
	Lights     []lights.Light
	Camera     *geometry.Camera
	Width      int              // 0 when the file does not set it
	Height     int              // 0 when the file does not set it
	Transforms []ShapeTransform // Applied in order after loading
}

// ShapeTransform is a transformation requested for the shape at Index
type ShapeTransform struct {
	Index          int
	Transformation core.Transformation
}

// LoadScene loads a scene file, choosing the format by extension. A file
// without a camera or lights gets the default camera and light.
func LoadScene(path string, logger core.Logger) (*SceneFile, error) {
	var (
		sceneFile *SceneFile
		err       error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".obj":
		sceneFile, err = loadOBJScene(path, logger)
	case ".json":
		sceneFile, err = LoadJSONScene(path, logger)
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
	if err != nil {
		return nil, err
	}

	if sceneFile.Camera == nil {
		sceneFile.Camera = geometry.NewDefaultCamera()
	}
	if len(sceneFile.Lights) == 0 {
		sceneFile.Lights = append(sceneFile.Lights, lights.NewDefaultLight())
		logf(logger, "No lights in %s, using default directional light\n", path)
	}

	return sceneFile, nil
}

func loadOBJScene(path string, logger core.Logger) (*SceneFile, error) {
	data, err := LoadOBJ(path)
	if err != nil {
		return nil, err
	}

	triangles := data.Triangles()
	shapes := make([]geometry.Shape, len(triangles))
	for i, t := range triangles {
		shapes[i] = t
	}

	logf(logger, "Loaded %s: %d vertices, %d faces, %d triangles\n",
		filepath.Base(path), len(data.Vertices), len(data.Faces), len(triangles))
	if data.Skipped > 0 {
		logf(logger, "Warning: ignored %d unsupported OBJ statements\n", data.Skipped)
	}

	return &SceneFile{Path: path, Shapes: shapes}, nil
}

// ValidateScenePath checks that a path requested over the network names a
// scene file inside a scenes/ directory
func ValidateScenePath(filename string) error {
	if filename == "" {
		return fmt.Errorf("filename cannot be empty")
	}

	// Check for null bytes (could indicate path manipulation)
	if strings.Contains(filename, "\x00") {
		return fmt.Errorf("invalid file path: null bytes not allowed")
	}

	if len(filename) > 512 {
		return fmt.Errorf("file path too long: maximum 512 characters allowed")
	}

	// Leading ".." components are allowed so servers started from a
	// subdirectory can reach ../scenes
	cleanPath := filepath.ToSlash(filepath.Clean(filename))
	for strings.HasPrefix(cleanPath, "../") {
		cleanPath = strings.TrimPrefix(cleanPath, "../")
	}
	if strings.Contains(cleanPath, "..") {
		return fmt.Errorf("invalid file path: directory traversal not allowed")
	}
	if !strings.HasPrefix(cleanPath, "scenes/") && !strings.Contains(cleanPath, "/scenes/") {
		return fmt.Errorf("file path must be in scenes/ directory")
	}

	switch strings.ToLower(filepath.Ext(cleanPath)) {
	case ".obj", ".json":
	default:
		return fmt.Errorf("invalid file type: only .obj and .json files are allowed")
	}

	if _, err := os.Stat(filename); err != nil {
		return fmt.Errorf("scene file not found: %w", err)
	}
	return nil
}

func logf(logger core.Logger, format string, args ...interface{}) {
	if logger != nil {
		logger.Printf(format, args...)
	}
}

package loaders

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/df07/go-lambert-raytracer/pkg/core"
	"github.com/df07/go-lambert-raytracer/pkg/geometry"
	"github.com/df07/go-lambert-raytracer/pkg/lights"
)

// SceneConfig is the JSON scene description
type SceneConfig struct {
	// Metadata shown by scene discovery
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Group       string `json:"group,omitempty"`

	Image  *ImageCfg  `json:"image,omitempty"`
	Camera *CameraCfg `json:"camera,omitempty"`
	Shapes []ShapeCfg `json:"shapes"`
	Lights []LightCfg `json:"lights,omitempty"`
}

type ImageCfg struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type FrameCfg struct {
	Origin []float64 `json:"origin"`
	Width  float64   `json:"width"`
	Height float64   `json:"height"`
}

type CameraCfg struct {
	Position   []float64      `json:"position"`
	Frame      FrameCfg       `json:"frame"`
	Transforms []TransformCfg `json:"transforms,omitempty"`
}

// ShapeCfg describes one shape. Type selects which of the other fields are
// read: sphere (center, radius), plane (point, normal), disk (center, radius,
// normal), triangle (vertices), box (min, max or center, size) and mesh
// (file, an OBJ path relative to the scene file).
type ShapeCfg struct {
	Type       string         `json:"type"`
	Center     []float64      `json:"center,omitempty"`
	Radius     float64        `json:"radius,omitempty"`
	Point      []float64      `json:"point,omitempty"`
	Normal     []float64      `json:"normal,omitempty"`
	Vertices   [][]float64    `json:"vertices,omitempty"`
	Min        []float64      `json:"min,omitempty"`
	Max        []float64      `json:"max,omitempty"`
	Size       []float64      `json:"size,omitempty"` // half extents
	File       string         `json:"file,omitempty"`
	Transforms []TransformCfg `json:"transforms,omitempty"`
}

// TransformCfg is one of translate (vector), scale (vector) or rotate (axis,
// degrees)
type TransformCfg struct {
	Type    string    `json:"type"`
	Vector  []float64 `json:"vector,omitempty"`
	Axis    string    `json:"axis,omitempty"`
	Degrees float64   `json:"degrees,omitempty"`
}

type LightCfg struct {
	Type      string    `json:"type"`
	Direction []float64 `json:"direction,omitempty"`
	Position  []float64 `json:"position,omitempty"`
	Strength  *float64  `json:"strength,omitempty"` // defaults to 1
}

// LoadJSONScene loads a JSON scene description
func LoadJSONScene(path string, logger core.Logger) (*SceneFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}

	cfg, err := ParseSceneConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	sceneFile, err := cfg.Build(filepath.Dir(path), logger)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	sceneFile.Path = path

	logf(logger, "Loaded %s: %d shapes, %d lights\n", filepath.Base(path), len(sceneFile.Shapes), len(sceneFile.Lights))
	return sceneFile, nil
}

// ParseSceneConfig decodes a JSON scene description. Decoding errors report
// the line they occurred on.
func ParseSceneConfig(data []byte) (*SceneConfig, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()

	var cfg SceneConfig
	if err := decoder.Decode(&cfg); err != nil {
		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		switch {
		case errors.As(err, &syntaxErr):
			return nil, fmt.Errorf("line %d: %w", lineAt(data, syntaxErr.Offset), err)
		case errors.As(err, &typeErr):
			return nil, fmt.Errorf("line %d: %w", lineAt(data, typeErr.Offset), err)
		default:
			return nil, fmt.Errorf("invalid scene: %w", err)
		}
	}
	return &cfg, nil
}

// lineAt returns the 1-based line containing byte offset
func lineAt(data []byte, offset int64) int {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	return bytes.Count(data[:offset], []byte("\n")) + 1
}

// Build converts the description into shapes, lights and a camera. Mesh
// files are resolved relative to dir.
func (c *SceneConfig) Build(dir string, logger core.Logger) (*SceneFile, error) {
	sceneFile := &SceneFile{
		Shapes:     make([]geometry.Shape, 0, len(c.Shapes)),
		Lights:     make([]lights.Light, 0, len(c.Lights)),
		Transforms: make([]ShapeTransform, 0),
	}

	if c.Image != nil {
		if c.Image.Width <= 0 || c.Image.Height <= 0 {
			return nil, fmt.Errorf("image size must be positive, got %dx%d", c.Image.Width, c.Image.Height)
		}
		sceneFile.Width, sceneFile.Height = c.Image.Width, c.Image.Height
	}

	if c.Camera != nil {
		camera, err := c.Camera.Build()
		if err != nil {
			return nil, fmt.Errorf("camera: %w", err)
		}
		sceneFile.Camera = camera
	}

	for i, shapeCfg := range c.Shapes {
		shapes, err := shapeCfg.Build(dir, logger)
		if err != nil {
			return nil, fmt.Errorf("shape %d (%s): %w", i, shapeCfg.Type, err)
		}
		if shapeCfg.Type == "mesh" {
			sceneFile.Shapes = append(sceneFile.Shapes, shapes...)
			continue
		}

		transforms, err := buildTransforms(shapeCfg.Transforms)
		if err != nil {
			return nil, fmt.Errorf("shape %d (%s): %w", i, shapeCfg.Type, err)
		}
		for _, shape := range shapes {
			index := len(sceneFile.Shapes)
			sceneFile.Shapes = append(sceneFile.Shapes, shape)
			for _, t := range transforms {
				sceneFile.Transforms = append(sceneFile.Transforms, ShapeTransform{Index: index, Transformation: t})
			}
		}
	}

	for i, lightCfg := range c.Lights {
		light, err := lightCfg.Build()
		if err != nil {
			return nil, fmt.Errorf("light %d (%s): %w", i, lightCfg.Type, err)
		}
		sceneFile.Lights = append(sceneFile.Lights, light)
	}

	return sceneFile, nil
}

func (c CameraCfg) Build() (*geometry.Camera, error) {
	position, err := point3("position", c.Position)
	if err != nil {
		return nil, err
	}
	origin, err := point3("frame.origin", c.Frame.Origin)
	if err != nil {
		return nil, err
	}
	if c.Frame.Width <= 0 || c.Frame.Height <= 0 {
		return nil, fmt.Errorf("frame size must be positive, got %gx%g", c.Frame.Width, c.Frame.Height)
	}

	camera := geometry.NewCamera(position, geometry.NewViewFrame(origin, c.Frame.Width, c.Frame.Height))

	transforms, err := buildTransforms(c.Transforms)
	if err != nil {
		return nil, err
	}
	for _, t := range transforms {
		camera.Transform(t)
	}
	return camera, nil
}

func (c ShapeCfg) Build(dir string, logger core.Logger) ([]geometry.Shape, error) {
	switch c.Type {
	case "sphere":
		center, err := point3("center", c.Center)
		if err != nil {
			return nil, err
		}
		if c.Radius <= 0 {
			return nil, fmt.Errorf("radius must be > 0, got %g", c.Radius)
		}
		return []geometry.Shape{geometry.NewSphere(center, c.Radius)}, nil

	case "plane":
		point, err := point3("point", c.Point)
		if err != nil {
			return nil, err
		}
		normal, err := direction3("normal", c.Normal)
		if err != nil {
			return nil, err
		}
		return []geometry.Shape{geometry.NewPlane(normal, point)}, nil

	case "disk":
		center, err := point3("center", c.Center)
		if err != nil {
			return nil, err
		}
		normal, err := direction3("normal", c.Normal)
		if err != nil {
			return nil, err
		}
		if c.Radius <= 0 {
			return nil, fmt.Errorf("radius must be > 0, got %g", c.Radius)
		}
		return []geometry.Shape{geometry.NewDisk(center, c.Radius, normal)}, nil

	case "triangle":
		if len(c.Vertices) != 3 {
			return nil, fmt.Errorf("triangle requires 3 vertices, got %d", len(c.Vertices))
		}
		var v [3]core.Point
		for i, values := range c.Vertices {
			p, err := point3(fmt.Sprintf("vertices[%d]", i), values)
			if err != nil {
				return nil, err
			}
			v[i] = p
		}
		return []geometry.Shape{geometry.NewTriangle(v[0], v[1], v[2])}, nil

	case "box":
		if c.Size != nil {
			center, err := point3("center", c.Center)
			if err != nil {
				return nil, err
			}
			size, err := vector3("size", c.Size)
			if err != nil {
				return nil, err
			}
			return []geometry.Shape{geometry.NewAlignedBoxFromDimensions(center, size.X, size.Y, size.Z)}, nil
		}
		min, err := point3("min", c.Min)
		if err != nil {
			return nil, err
		}
		max, err := point3("max", c.Max)
		if err != nil {
			return nil, err
		}
		if min.X > max.X || min.Y > max.Y || min.Z > max.Z {
			return nil, fmt.Errorf("box min %v exceeds max %v", min, max)
		}
		return []geometry.Shape{geometry.NewAlignedBox(min, max)}, nil

	case "mesh":
		if c.File == "" {
			return nil, fmt.Errorf("mesh requires a file")
		}
		path := c.File
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		data, err := LoadOBJ(path)
		if err != nil {
			return nil, err
		}

		// Mesh transforms are baked into the vertices
		transforms, err := buildTransforms(c.Transforms)
		if err != nil {
			return nil, err
		}
		if m := core.Compose(transforms...); !m.ApproxEqual(core.Identity(), 0) {
			data.Transform(m)
		}
		triangles := data.Triangles()
		logf(logger, "Loaded mesh %s: %d triangles\n", filepath.Base(path), len(triangles))

		shapes := make([]geometry.Shape, len(triangles))
		for i, t := range triangles {
			shapes[i] = t
		}
		return shapes, nil

	default:
		return nil, fmt.Errorf("unknown shape type '%s'", c.Type)
	}
}

func (c TransformCfg) Build() (core.Transformation, error) {
	switch c.Type {
	case "translate":
		v, err := vector3("vector", c.Vector)
		if err != nil {
			return core.Transformation{}, err
		}
		return core.Translate(v), nil
	case "scale":
		v, err := vector3("vector", c.Vector)
		if err != nil {
			return core.Transformation{}, err
		}
		return core.Scale(v), nil
	case "rotate":
		axis, err := core.ParseAxis(c.Axis)
		if err != nil {
			return core.Transformation{}, err
		}
		return core.Rotate(axis, c.Degrees), nil
	default:
		return core.Transformation{}, fmt.Errorf("unknown transform type '%s'", c.Type)
	}
}

func (c LightCfg) Build() (lights.Light, error) {
	strength := lights.DefaultStrength
	if c.Strength != nil {
		strength = *c.Strength
	}

	switch c.Type {
	case "directional":
		direction, err := direction3("direction", c.Direction)
		if err != nil {
			return nil, err
		}
		return lights.NewDirectionalLight(direction).WithStrength(strength), nil
	case "point":
		position, err := point3("position", c.Position)
		if err != nil {
			return nil, err
		}
		return lights.NewPointLight(position).WithStrength(strength), nil
	default:
		return nil, fmt.Errorf("unknown light type '%s'", c.Type)
	}
}

func buildTransforms(cfgs []TransformCfg) ([]core.Transformation, error) {
	transforms := make([]core.Transformation, len(cfgs))
	for i, cfg := range cfgs {
		t, err := cfg.Build()
		if err != nil {
			return nil, fmt.Errorf("transform %d: %w", i, err)
		}
		transforms[i] = t
	}
	return transforms, nil
}

func vector3(name string, values []float64) (core.Vector, error) {
	if len(values) != 3 {
		return core.Vector{}, fmt.Errorf("%s requires 3 values, got %d", name, len(values))
	}
	return core.NewVector(values[0], values[1], values[2]), nil
}

func point3(name string, values []float64) (core.Point, error) {
	v, err := vector3(name, values)
	return v.ToPoint(), err
}

// direction3 is vector3 for values that are normalized later, so the zero
// vector is rejected
func direction3(name string, values []float64) (core.Vector, error) {
	v, err := vector3(name, values)
	if err != nil {
		return v, err
	}
	if v.LengthSquared() == 0 {
		return v, fmt.Errorf("%s must not be zero", name)
	}
	return v, nil
}

package loaders

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/df07/go-lambert-raytracer/pkg/core"
	"github.com/df07/go-lambert-raytracer/pkg/geometry"
)

// OBJData contains the geometry read from a Wavefront OBJ file
type OBJData struct {
	Vertices []core.Point // Vertex positions
	Faces    [][]int      // Zero-based vertex indices, three or more per face
	Skipped  int          // Statements other than v and f
}

// LoadOBJ loads and parses a Wavefront OBJ file
func LoadOBJ(filename string) (*OBJData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open OBJ file: %w", err)
	}
	defer file.Close()

	data, err := ParseOBJ(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return data, nil
}

// ParseOBJ parses OBJ content. Only vertex positions and faces are read;
// every other statement is counted in Skipped and otherwise ignored.
func ParseOBJ(reader io.Reader) (*OBJData, error) {
	data := &OBJData{
		Vertices: make([]core.Point, 0),
		Faces:    make([][]int, 0),
	}

	scanner := bufio.NewScanner(reader)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			vertex, err := parseOBJVertex(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNumber, err)
			}
			data.Vertices = append(data.Vertices, vertex)
		case "f":
			face, err := parseOBJFace(fields[1:], len(data.Vertices))
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNumber, err)
			}
			data.Faces = append(data.Faces, face)
		default:
			data.Skipped++
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading input: %w", err)
	}

	return data, nil
}

// parseOBJVertex reads "x y z [w]". The optional w is ignored.
func parseOBJVertex(values []string) (core.Point, error) {
	if len(values) < 3 || len(values) > 4 {
		return core.Point{}, fmt.Errorf("vertex requires 3 coordinates, got %d", len(values))
	}

	var coords [3]float64
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(values[i], 64)
		if err != nil {
			return core.Point{}, fmt.Errorf("invalid vertex coordinate '%s': %v", values[i], err)
		}
		coords[i] = f
	}
	return core.NewPoint(coords[0], coords[1], coords[2]), nil
}

// parseOBJFace reads face references of the forms v, v/vt, v//vn and
// v/vt/vn. Negative indices count back from the last vertex read so far.
func parseOBJFace(refs []string, vertexCount int) ([]int, error) {
	if len(refs) < 3 {
		return nil, fmt.Errorf("face requires at least 3 vertices, got %d", len(refs))
	}

	face := make([]int, len(refs))
	for i, ref := range refs {
		vertexRef := ref
		if slash := strings.IndexByte(ref, '/'); slash >= 0 {
			vertexRef = ref[:slash]
		}

		index, err := strconv.Atoi(vertexRef)
		if err != nil {
			return nil, fmt.Errorf("invalid face vertex '%s': %v", ref, err)
		}

		switch {
		case index > 0:
			index--
		case index < 0:
			index += vertexCount
		default:
			return nil, fmt.Errorf("invalid face vertex '%s': indices start at 1", ref)
		}

		if index < 0 || index >= vertexCount {
			return nil, fmt.Errorf("face vertex '%s' out of range (%d vertices defined)", ref, vertexCount)
		}
		face[i] = index
	}
	return face, nil
}

// Transform maps every vertex through m
func (d *OBJData) Transform(m core.Mat4) {
	d.Vertices = core.TransformPoints(m, d.Vertices)
}

// Triangles fan-triangulates every face around its first vertex
func (d *OBJData) Triangles() []*geometry.Triangle {
	triangles := make([]*geometry.Triangle, 0, len(d.Faces))
	for _, face := range d.Faces {
		for i := 1; i+1 < len(face); i++ {
			triangles = append(triangles, geometry.NewTriangle(
				d.Vertices[face[0]],
				d.Vertices[face[i]],
				d.Vertices[face[i+1]],
			))
		}
	}
	return triangles
}

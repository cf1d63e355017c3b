package server

import (
	"net/http"
	"strconv"

	"github.com/df07/go-lambert-raytracer/pkg/geometry"
	"github.com/df07/go-lambert-raytracer/pkg/renderer"
)

// InspectResponse represents the JSON response for pixel inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	GeometryType string                 `json:"geometryType,omitempty"`
	ShapeIndex   int                    `json:"shapeIndex"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	Intensity    float64                `json:"intensity"`
	Properties   map[string]interface{} `json:"properties,omitempty"`
}

func vec3(x, y, z float64) [3]float64 {
	return [3]float64{x, y, z}
}

// extractGeometryInfo extracts detailed geometry information with type assertions
func extractGeometryInfo(shape geometry.Shape) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch geom := shape.(type) {
	case *geometry.Sphere:
		properties["center"] = vec3(geom.Center.X, geom.Center.Y, geom.Center.Z)
		properties["radius"] = geom.Radius
		return "sphere", properties

	case *geometry.Plane:
		properties["point"] = vec3(geom.Point.X, geom.Point.Y, geom.Point.Z)
		properties["normal"] = vec3(geom.Normal.X, geom.Normal.Y, geom.Normal.Z)
		return "plane", properties

	case *geometry.Disk:
		properties["center"] = vec3(geom.Center.X, geom.Center.Y, geom.Center.Z)
		properties["radius"] = geom.Radius
		properties["normal"] = vec3(geom.Normal.X, geom.Normal.Y, geom.Normal.Z)
		return "disk", properties

	case *geometry.Triangle:
		vertices := geom.Vertices()
		properties["vertices"] = [3][3]float64{
			vec3(vertices[0].X, vertices[0].Y, vertices[0].Z),
			vec3(vertices[1].X, vertices[1].Y, vertices[1].Z),
			vec3(vertices[2].X, vertices[2].Y, vertices[2].Z),
		}
		return "triangle", properties

	case *geometry.AlignedBox:
		properties["min"] = vec3(geom.Min.X, geom.Min.Y, geom.Min.Z)
		properties["max"] = vec3(geom.Max.X, geom.Max.Y, geom.Max.Z)
		return "box", properties

	default:
		return "unknown", properties
	}
}

// handleInspect traces a single pixel and reports what it hits
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	params, err := parseSceneParams(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}

	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}
	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}
	if pixelX < 0 || pixelX >= params.Width || pixelY < 0 || pixelY >= params.Height {
		writeError(w, http.StatusBadRequest, "Pixel coordinates out of bounds")
		return
	}

	sceneObj, err := s.createScene(params.Scene, nil)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	raytracer := renderer.NewRaytracer(sceneObj, sceneObj.Camera, params.Width, params.Height)
	info, err := raytracer.Inspect(pixelX, pixelY)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, inspectResponse(info, sceneObj.Shapes))
}

func inspectResponse(info renderer.PixelInfo, shapes []geometry.Shape) InspectResponse {
	if !info.Hit {
		return InspectResponse{Hit: false, ShapeIndex: -1}
	}

	geometryType, properties := extractGeometryInfo(shapes[info.ShapeIndex])
	return InspectResponse{
		Hit:          true,
		GeometryType: geometryType,
		ShapeIndex:   info.ShapeIndex,
		Point:        vec3(info.Point.X, info.Point.Y, info.Point.Z),
		Normal:       vec3(info.Normal.X, info.Normal.Y, info.Normal.Z),
		Distance:     info.Distance,
		Intensity:    info.Intensity,
		Properties:   properties,
	}
}

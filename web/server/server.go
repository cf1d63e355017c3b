package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/df07/go-lambert-raytracer/pkg/core"
	"github.com/df07/go-lambert-raytracer/pkg/scene"
)

const (
	minImageSize     = 16
	maxImageSize     = 2000
	defaultImageSize = 400
)

// Server handles web requests for the raytracer
type Server struct {
	port int
	mux  *http.ServeMux
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	s := &Server{port: port, mux: http.NewServeMux()}

	// Serve static files
	s.mux.Handle("/", http.FileServer(http.Dir("static/")))

	// API endpoints
	s.mux.HandleFunc("/api/health", s.handleHealth)
	s.mux.HandleFunc("/api/scenes", s.handleScenes)
	s.mux.HandleFunc("/api/render", s.handleRender)
	s.mux.HandleFunc("/api/inspect", s.handleInspect)
	return s
}

// Handler returns the server's request router
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.mux)
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists the built-in and file scenes grouped by category
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	scenes, err := scene.ListAllScenes()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, scenes)
}

// SceneParams are the query parameters shared by render and inspect
type SceneParams struct {
	Scene  string `json:"scene"`  // Scene ID (e.g., "default" or "file:teapot.obj")
	Width  int    `json:"width"`  // Image width
	Height int    `json:"height"` // Image height
}

// parseSceneParams parses the scene ID and image size from the query
func parseSceneParams(values url.Values) (SceneParams, error) {
	params := SceneParams{Scene: values.Get("scene")}
	if params.Scene == "" {
		params.Scene = "default"
	}

	var err error
	if params.Width, err = parseIntParam(values, "width", defaultImageSize, minImageSize, maxImageSize); err != nil {
		return params, err
	}
	if params.Height, err = parseIntParam(values, "height", defaultImageSize, minImageSize, maxImageSize); err != nil {
		return params, err
	}
	return params, nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// createScene looks up and builds the scene with the given ID
func (s *Server) createScene(id string, logger core.Logger) (*scene.Scene, error) {
	info, err := scene.FindScene(id)
	if err != nil {
		return nil, err
	}
	return info.Create(logger)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/df07/go-interactive-raytracer/pkg/integrator"
	"github.com/df07/go-interactive-raytracer/pkg/log"
	"github.com/df07/go-interactive-raytracer/pkg/renderer"
	"github.com/df07/go-interactive-raytracer/pkg/scene"
)

var logger = log.New("server")

// Request limits. They are tighter than the renderer's own limits so a
// single request cannot tie up the server.
const (
	defaultSize = 256
	minSize     = 1
	maxSize     = 2000
)

// Server handles web requests for the raytracer
type Server struct {
	port      int
	raytracer *renderer.Raytracer
	mux       *http.ServeMux
}

// NewServer creates a new web server backed by raytracer
func NewServer(port int, raytracer *renderer.Raytracer) *Server {
	s := &Server{
		port:      port,
		raytracer: raytracer,
		mux:       http.NewServeMux(),
	}

	// API endpoints
	s.mux.HandleFunc("/api/render", s.handleRender)
	s.mux.HandleFunc("/api/scenes", s.handleScenes)
	s.mux.HandleFunc("/api/inspect", s.handleInspect)
	s.mux.HandleFunc("/api/health", s.handleHealth)
	return s
}

// Handler returns the HTTP handler serving every endpoint
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Start starts the web server and blocks until it fails
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	logger.Noticef("starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.mux)
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// SceneCatalog is the JSON body of /api/scenes
type SceneCatalog struct {
	Scenes []scene.SceneInfo `json:"scenes"`
	Modes  []string          `json:"modes"`
	Limits map[string][2]int `json:"limits"`
}

// handleScenes lists the selectable scenes, modes and parameter limits
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	modes := make([]string, 0, len(integrator.Modes()))
	for _, m := range integrator.Modes() {
		modes = append(modes, m.String())
	}

	writeJSON(w, http.StatusOK, SceneCatalog{
		Scenes: scene.Catalog(),
		Modes:  modes,
		Limits: map[string][2]int{
			"width":   {minSize, maxSize},
			"height":  {minSize, maxSize},
			"samples": {renderer.MinSampleCount, renderer.MaxSampleCount},
			"scene":   {0, scene.CatalogSize - 1},
		},
	})
}

// parseRenderRequest parses the query of a render or inspect request
func parseRenderRequest(values url.Values) (renderer.RenderRequest, error) {
	req := renderer.RenderRequest{}

	var err error
	if req.Width, err = parseIntParam(values, "width", defaultSize, minSize, maxSize); err != nil {
		return req, err
	}
	if req.Height, err = parseIntParam(values, "height", defaultSize, minSize, maxSize); err != nil {
		return req, err
	}
	if req.SampleCount, err = parseIntParam(values, "samples", 1, renderer.MinSampleCount, renderer.MaxSampleCount); err != nil {
		return req, err
	}
	if req.SceneIndex, err = parseSceneParam(values); err != nil {
		return req, err
	}
	if req.Seed, err = parseUintParam(values, "seed", 0); err != nil {
		return req, err
	}

	req.Mode = integrator.Normals
	if mode := values.Get("mode"); mode != "" {
		if req.Mode, err = integrator.ParseMode(mode); err != nil {
			return req, err
		}
	}

	return req, nil
}

// parseSceneParam accepts either a catalog index or a scene id
func parseSceneParam(values url.Values) (int, error) {
	value := values.Get("scene")
	if value == "" {
		return 0, nil
	}
	if index, ok := scene.IndexOf(value); ok {
		return index, nil
	}
	return parseIntParam(values, "scene", 0, 0, scene.CatalogSize-1)
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

// parseUintParam parses an unsigned 64-bit parameter from URL query
func parseUintParam(values url.Values, key string, defaultValue uint64) (uint64, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Warningf("failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

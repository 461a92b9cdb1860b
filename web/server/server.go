package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Request limits shared by the render and inspect endpoints
const (
	MinImageSize = 1
	MaxImageSize = 2000
	MaxDepth     = 20
)

// Server handles web requests for the raytracer
type Server struct {
	port     int
	sceneDir string
	logger   core.Logger
}

// NewServer creates a new web server. Scene files are listed from sceneDir.
func NewServer(port int, sceneDir string, logger core.Logger) *Server {
	if logger == nil {
		logger = core.NewNopLogger()
	}
	return &Server{port: port, sceneDir: sceneDir, logger: logger}
}

// Handler returns the HTTP routes served by the server
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/scene-config", s.handleSceneConfig)
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/render-stream", s.handleRenderStream)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	return s.logRequests(mux)
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Infof("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debugf("%s %s (%v)", r.Method, r.URL.RequestURI(), time.Since(start).Round(time.Millisecond))
	})
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists built-in scenes and scene files
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	response, err := scene.ListAllScenes(s.sceneDir)
	if err != nil {
		s.logger.Errorf("Listing scenes: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, response)
}

// handleSceneConfig returns the default camera and render configuration for a scene
func (s *Server) handleSceneConfig(w http.ResponseWriter, r *http.Request) {
	sceneName := r.URL.Query().Get("scene")
	if sceneName == "" {
		sceneName = "default"
	}

	sceneObj, err := s.createScene(sceneName, scene.CameraConfig{})
	if err != nil {
		writeSceneError(w, err)
		return
	}

	cam := sceneObj.Camera
	config := sceneObj.Render
	response := map[string]interface{}{
		"scene":  sceneName,
		"name":   sceneObj.Name,
		"shapes": sceneObj.ShapeCount(),
		"defaults": map[string]interface{}{
			"width":            cam.Width,
			"height":           cam.Height,
			"fov":              cam.FieldOfView,
			"from":             tupleArray(cam.From),
			"to":               tupleArray(cam.To),
			"up":               tupleArray(cam.Up),
			"maxDepth":         config.MaxDepth,
			"softShadows":      config.SoftShadows,
			"softShadowRadius": config.SoftShadowRadius,
			"tileSize":         config.TileSize,
		},
		"limits": map[string]interface{}{
			"width":    map[string]int{"min": MinImageSize, "max": MaxImageSize},
			"height":   map[string]int{"min": MinImageSize, "max": MaxImageSize},
			"maxDepth": map[string]int{"min": 0, "max": MaxDepth},
		},
	}
	writeJSON(w, http.StatusOK, response)
}

// createScene resolves a built-in name or a "file:" scene ID
func (s *Server) createScene(sceneName string, cameraOverride scene.CameraConfig) (*scene.Scene, error) {
	return loaders.ResolveScene(sceneName, s.sceneDir, cameraOverride)
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

// parseFloatParam parses a float parameter from URL query with validation
func parseFloatParam(values url.Values, key string, defaultValue, min, max float64) (float64, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %f and %f, got: %f", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseBoolParam parses a boolean parameter from URL query
func parseBoolParam(values url.Values, key string, defaultValue bool) (bool, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return false, fmt.Errorf("invalid %s: %s", key, value)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeSceneError maps scene construction failures to a status code
func writeSceneError(w http.ResponseWriter, err error) {
	if errors.Is(err, scene.ErrUnknownScene) || errors.Is(err, os.ErrNotExist) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeError(w, http.StatusBadRequest, err.Error())
}

func tupleArray(t core.Tuple) [3]float64 {
	return [3]float64{t.X, t.Y, t.Z}
}

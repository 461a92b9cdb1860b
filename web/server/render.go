package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/canvas"
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene       string // Built-in scene name or "file:<name>"
	Width       int    // Image width, 0 keeps the scene's
	Height      int    // Image height, 0 keeps the scene's
	MaxDepth    int    // Bounce budget, -1 keeps the scene's
	SoftShadows bool   // Enable soft shadows
	Format      string // Output format for /api/render
	Stamp       bool   // Draw a stats caption on the image
}

// Stats represents render statistics
type Stats struct {
	TotalPixels      int     `json:"totalPixels"`
	PrimaryRays      int     `json:"primaryRays"`
	Tiles            int     `json:"tiles"`
	Workers          int     `json:"workers"`
	ElapsedMs        int64   `json:"elapsedMs"`
	AverageLuminance float64 `json:"averageLuminance"`
}

// RenderComplete is the final event of a streamed render
type RenderComplete struct {
	Scene     string `json:"scene"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	ImageData string `json:"imageData"` // Base64 encoded PNG
	Stats     Stats  `json:"stats"`
}

// SSEEvent represents a unified SSE event for thread-safe writing
type SSEEvent struct {
	Type string `json:"type"` // "console", "error", "complete"
	Data string `json:"data"` // JSON-encoded data
}

func newStats(stats renderer.RenderStats) Stats {
	return Stats{
		TotalPixels:      stats.TotalPixels,
		PrimaryRays:      stats.PrimaryRays,
		Tiles:            stats.Tiles,
		Workers:          stats.Workers,
		ElapsedMs:        stats.Elapsed.Milliseconds(),
		AverageLuminance: stats.AverageLuminance,
	}
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{Scene: query.Get("scene")}
	if req.Scene == "" {
		req.Scene = "default"
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 0, MinImageSize, MaxImageSize); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", 0, MinImageSize, MaxImageSize); err != nil {
		return nil, err
	}
	if req.MaxDepth, err = parseIntParam(query, "maxDepth", -1, 0, MaxDepth); err != nil {
		return nil, err
	}
	if req.SoftShadows, err = parseBoolParam(query, "softShadows", false); err != nil {
		return nil, err
	}
	if req.Stamp, err = parseBoolParam(query, "stamp", false); err != nil {
		return nil, err
	}

	req.Format = canvas.FormatPNG
	if format := query.Get("format"); format != "" {
		if req.Format, err = canvas.NormalizeFormat(format); err != nil {
			return nil, err
		}
	}
	return req, nil
}

// setupRaytracer builds the requested scene and a raytracer for it
func (s *Server) setupRaytracer(req *RenderRequest, logger core.Logger) (*scene.Scene, *renderer.Raytracer, error) {
	sceneObj, err := s.createScene(req.Scene, scene.CameraConfig{Width: req.Width, Height: req.Height})
	if err != nil {
		return nil, nil, err
	}
	if req.MaxDepth >= 0 {
		sceneObj.Render.MaxDepth = req.MaxDepth
	}
	if req.SoftShadows {
		sceneObj.Render.SoftShadows = true
	}

	logger.Infof("Loaded scene %s (%d shapes)", sceneObj.Name, sceneObj.ShapeCount())
	rt, err := renderer.NewRaytracer(sceneObj, logger)
	if err != nil {
		return nil, nil, err
	}
	return sceneObj, rt, nil
}

// handleRender renders the scene and responds with the encoded image
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	_, rt, err := s.setupRaytracer(req, s.logger)
	if err != nil {
		writeSceneError(w, err)
		return
	}

	c, stats, err := rt.RenderParallel(r.Context())
	if err != nil {
		// Client went away; nobody is listening for a response
		s.logger.Warnf("Render aborted: %v", err)
		return
	}

	var buf bytes.Buffer
	if req.Stamp && req.Format != canvas.FormatPPM {
		err = canvas.EncodeImage(&buf, c.StampedImage(stats.String()), req.Format)
	} else {
		err = c.Encode(&buf, req.Format)
	}
	if err != nil {
		s.logger.Errorf("Encoding render: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", canvas.ContentType(req.Format))
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("X-Render-Time-Ms", strconv.FormatInt(stats.Elapsed.Milliseconds(), 10))
	w.Header().Set("X-Render-Pixels", strconv.Itoa(stats.TotalPixels))
	w.Header().Set("X-Average-Luminance", strconv.FormatFloat(stats.AverageLuminance, 'f', 4, 64))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// handleRenderStream renders the scene while streaming log messages via SSE,
// then sends the finished image as a "complete" event
func (s *Server) handleRenderStream(w http.ResponseWriter, r *http.Request) {
	s.setSSEHeaders(w)
	ctx := r.Context()

	sseEventChan := make(chan SSEEvent, 100)
	var writers sync.WaitGroup
	writers.Add(1)
	go func() {
		defer writers.Done()
		s.writeSSEEvents(w, ctx, sseEventChan)
	}()
	defer func() {
		close(sseEventChan)
		writers.Wait()
	}()

	req, err := s.parseRenderRequest(r)
	if err != nil {
		s.handleError(ctx, sseEventChan, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	consoleChan := make(chan ConsoleMessage, 50)
	webLogger := NewWebLogger(fmt.Sprintf("render-%d", time.Now().UnixNano()), s.logger, consoleChan)
	var streamer sync.WaitGroup
	streamer.Add(1)
	go func() {
		defer streamer.Done()
		s.streamConsoleMessages(ctx, consoleChan, sseEventChan)
	}()

	sceneObj, rt, err := s.setupRaytracer(req, webLogger)
	var c *canvas.Canvas
	var stats renderer.RenderStats
	if err == nil {
		c, stats, err = rt.RenderParallel(ctx)
	}

	// Nothing logs to the console channel past this point
	close(consoleChan)
	streamer.Wait()

	if err != nil {
		s.handleError(ctx, sseEventChan, err.Error())
		return
	}

	var buf bytes.Buffer
	if err := c.Encode(&buf, canvas.FormatPNG); err != nil {
		s.handleError(ctx, sseEventChan, fmt.Sprintf("failed to encode image: %v", err))
		return
	}
	data, err := json.Marshal(RenderComplete{
		Scene:     sceneObj.Name,
		Width:     c.Width,
		Height:    c.Height,
		ImageData: base64.StdEncoding.EncodeToString(buf.Bytes()),
		Stats:     newStats(stats),
	})
	if err != nil {
		s.handleError(ctx, sseEventChan, err.Error())
		return
	}
	sendEvent(ctx, sseEventChan, SSEEvent{Type: "complete", Data: string(data)})
}

// setSSEHeaders sets the required headers for Server-Sent Events
func (s *Server) setSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

// writeSSEEvents handles writing all SSE events in a single goroutine (thread-safe)
func (s *Server) writeSSEEvents(w http.ResponseWriter, ctx context.Context, sseEventChan chan SSEEvent) {
	for event := range sseEventChan {
		// Keep draining after a disconnect so senders never block
		if ctx.Err() != nil {
			continue
		}
		if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Type, event.Data); err != nil {
			continue
		}
		if flusher, ok := w.(http.Flusher); ok {
			flusher.Flush()
		}
	}
}

// streamConsoleMessages forwards console messages as SSE events until the
// console channel is closed
func (s *Server) streamConsoleMessages(ctx context.Context, consoleChan chan ConsoleMessage, sseEventChan chan SSEEvent) {
	for consoleMsg := range consoleChan {
		data, err := json.Marshal(consoleMsg)
		if err != nil {
			s.logger.Errorf("Error marshaling console message: %v", err)
			continue
		}
		sendEvent(ctx, sseEventChan, SSEEvent{Type: "console", Data: string(data)})
	}
}

// handleError logs and streams an error event
func (s *Server) handleError(ctx context.Context, sseEventChan chan SSEEvent, message string) {
	s.logger.Errorf("Render stream: %s", message)
	data, _ := json.Marshal(map[string]string{"error": message})
	sendEvent(ctx, sseEventChan, SSEEvent{Type: "error", Data: string(data)})
}

func sendEvent(ctx context.Context, sseEventChan chan SSEEvent, event SSEEvent) {
	select {
	case sseEventChan <- event:
	case <-ctx.Done():
	}
}

package server

import (
	"bufio"
	"encoding/base64"
	"encoding/json"
	"image/png"
	"math"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

const ballScene = `# Scene: Glass Ball
# Description: One glass sphere in front of the camera
name = "ball"

[camera]
width = 11
height = 11
fov = 60.0
from = [0.0, 0.0, -5.0]
to = [0.0, 0.0, 0.0]
up = [0.0, 1.0, 0.0]

[light]
position = [-10.0, 10.0, -10.0]

[[shapes]]
type = "sphere"

[shapes.material]
preset = "glass"
`

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "ball.toml"), []byte(ballScene), 0o644); err != nil {
		t.Fatal(err)
	}
	ts := httptest.NewServer(NewServer(0, dir, nil).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func getJSON(t *testing.T, url string, wantStatus int, v interface{}) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != wantStatus {
		t.Fatalf("GET %s: expected status %d, got %d", url, wantStatus, resp.StatusCode)
	}
	if v != nil {
		if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
			t.Fatalf("GET %s: decoding JSON: %v", url, err)
		}
	}
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)
	var body map[string]string
	getJSON(t, ts.URL+"/api/health", http.StatusOK, &body)
	if body["status"] != "ok" {
		t.Errorf("Expected status ok, got %v", body)
	}
}

func TestScenes(t *testing.T) {
	ts := newTestServer(t)
	var response scene.ScenesResponse
	getJSON(t, ts.URL+"/api/scenes", http.StatusOK, &response)

	if len(response.Groups) != 2 {
		t.Fatalf("Expected built-in and file groups, got %d groups", len(response.Groups))
	}
	if len(response.Groups[0].Scenes) != len(scene.BuiltinNames()) {
		t.Errorf("Expected %d built-in scenes, got %d", len(scene.BuiltinNames()), len(response.Groups[0].Scenes))
	}
	files := response.Groups[1].Scenes
	if len(files) != 1 || files[0].ID != "file:ball" || files[0].Name != "Glass Ball" {
		t.Errorf("Unexpected scene files %+v", files)
	}
}

func TestSceneConfig(t *testing.T) {
	ts := newTestServer(t)

	var body map[string]interface{}
	getJSON(t, ts.URL+"/api/scene-config?scene=file:ball", http.StatusOK, &body)
	defaults := body["defaults"].(map[string]interface{})
	if defaults["width"].(float64) != 11 {
		t.Errorf("Expected width 11, got %v", defaults["width"])
	}
	if body["shapes"].(float64) != 1 {
		t.Errorf("Expected 1 shape, got %v", body["shapes"])
	}

	getJSON(t, ts.URL+"/api/scene-config?scene=nonexistent", http.StatusNotFound, nil)
	getJSON(t, ts.URL+"/api/scene-config?scene=file:missing", http.StatusNotFound, nil)
}

func TestRenderPNG(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/render?scene=default&width=16&height=9&maxDepth=2&stamp=true")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/png" {
		t.Errorf("Expected image/png, got %s", ct)
	}
	if resp.Header.Get("X-Render-Pixels") != "144" {
		t.Errorf("Expected 144 pixels, got %s", resp.Header.Get("X-Render-Pixels"))
	}

	img, err := png.Decode(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 9 {
		t.Errorf("Expected 16x9 image, got %v", b)
	}
}

func TestRenderPPM(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/render?scene=file:ball&format=ppm")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}

	scanner := bufio.NewScanner(resp.Body)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if len(lines) != 3+11 {
		t.Fatalf("Expected 14 lines, got %d", len(lines))
	}
	if lines[0] != "P3" || lines[1] != "11 11" || lines[2] != "255" {
		t.Errorf("Unexpected header %q", lines[:3])
	}
}

func TestRenderBadRequests(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name   string
		query  string
		status int
	}{
		{"width too large", "width=5000", http.StatusBadRequest},
		{"width not a number", "width=abc", http.StatusBadRequest},
		{"depth out of range", "maxDepth=99", http.StatusBadRequest},
		{"bad format", "format=gif", http.StatusBadRequest},
		{"bad bool", "softShadows=maybe", http.StatusBadRequest},
		{"unknown scene", "scene=nonexistent", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			getJSON(t, ts.URL+"/api/render?"+tt.query, tt.status, nil)
		})
	}
}

func TestRenderStream(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/render-stream?scene=file:ball&width=8&height=8")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var events []string
	var completeData string
	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)
	current := ""
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "event: "):
			current = strings.TrimPrefix(line, "event: ")
			events = append(events, current)
		case strings.HasPrefix(line, "data: ") && current == "complete":
			completeData = strings.TrimPrefix(line, "data: ")
		}
	}

	if len(events) == 0 || events[len(events)-1] != "complete" {
		t.Fatalf("Expected stream to end with a complete event, got %v", events)
	}
	if events[0] != "console" {
		t.Errorf("Expected console messages before completion, got %v", events)
	}

	var complete RenderComplete
	if err := json.Unmarshal([]byte(completeData), &complete); err != nil {
		t.Fatal(err)
	}
	if complete.Width != 8 || complete.Height != 8 || complete.Stats.TotalPixels != 64 {
		t.Errorf("Unexpected completion %+v", complete.Stats)
	}
	raw, err := base64.StdEncoding.DecodeString(complete.ImageData)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := png.Decode(strings.NewReader(string(raw))); err != nil {
		t.Errorf("Expected a PNG image: %v", err)
	}
}

func TestRenderStreamError(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/render-stream?scene=nonexistent")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	scanner := bufio.NewScanner(resp.Body)
	var events []string
	for scanner.Scan() {
		if line := scanner.Text(); strings.HasPrefix(line, "event: ") {
			events = append(events, strings.TrimPrefix(line, "event: "))
		}
	}
	if len(events) == 0 || events[len(events)-1] != "error" {
		t.Errorf("Expected stream to end with an error event, got %v", events)
	}
}

func TestInspect(t *testing.T) {
	ts := newTestServer(t)

	t.Run("hit", func(t *testing.T) {
		var response InspectResponse
		getJSON(t, ts.URL+"/api/inspect?scene=file:ball&x=5&y=5", http.StatusOK, &response)

		if !response.Hit {
			t.Fatal("Expected the center pixel to hit the sphere")
		}
		if response.GeometryType != "sphere" || response.ShapeID == "" {
			t.Errorf("Unexpected shape %s %q", response.GeometryType, response.ShapeID)
		}
		if math.Abs(response.Distance-4) > 1e-6 {
			t.Errorf("Expected distance 4, got %f", response.Distance)
		}
		if math.Abs(response.Point[2]+1) > 1e-6 || math.Abs(response.Normal[2]+1) > 1e-6 {
			t.Errorf("Expected point and normal at -z, got %v %v", response.Point, response.Normal)
		}
		if response.Inside {
			t.Error("Expected outside hit")
		}
		if response.N1 != 1.0 || response.N2 != 1.5 {
			t.Errorf("Expected n1=1.0 n2=1.5, got %f %f", response.N1, response.N2)
		}
		if response.Material["transparency"].(float64) != 1 {
			t.Errorf("Expected glass material, got %v", response.Material)
		}
	})

	t.Run("miss", func(t *testing.T) {
		var response InspectResponse
		getJSON(t, ts.URL+"/api/inspect?scene=file:ball&x=0&y=0", http.StatusOK, &response)
		if response.Hit {
			t.Error("Expected the corner pixel to miss")
		}
		if response.Color != "#000000" {
			t.Errorf("Expected black for a miss, got %s", response.Color)
		}
	})

	t.Run("bad requests", func(t *testing.T) {
		getJSON(t, ts.URL+"/api/inspect?scene=file:ball&x=11&y=0", http.StatusBadRequest, nil)
		getJSON(t, ts.URL+"/api/inspect?scene=file:ball&x=a&y=0", http.StatusBadRequest, nil)
		getJSON(t, ts.URL+"/api/inspect?scene=nonexistent&x=0&y=0", http.StatusNotFound, nil)
	})
}

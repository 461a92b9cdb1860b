package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

func TestCreateScene(t *testing.T) {
	dir := t.TempDir()
	sceneFile := filepath.Join(dir, "ball.toml")
	if err := os.WriteFile(sceneFile, []byte("[[shapes]]\ntype = \"sphere\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name        string
		sceneType   string
		file        string
		expectError bool
	}{
		// Built-in scenes
		{"default scene", "default", "", false},
		{"cornell scene", "cornell", "", false},
		{"reflections scene", "reflections", "", false},
		{"refraction scene", "refraction", "", false},
		{"sphere grid scene", "sphere-grid", "", false},

		// Scene files
		{"file by id", "file:ball", "", false},
		{"file by path", sceneFile, "", false},
		{"file flag wins", "nonexistent", sceneFile, false},

		// Invalid scenes
		{"unknown scene", "nonexistent", "", true},
		{"missing file", "", filepath.Join(dir, "missing.toml"), true},
		{"empty scene name", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := createScene(tt.sceneType, tt.file, dir, scene.CameraConfig{Width: 32})

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for scene '%s', but got none", tt.sceneType)
				}
				if s != nil {
					t.Errorf("Expected nil scene for invalid scene '%s'", tt.sceneType)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error for scene '%s': %v", tt.sceneType, err)
			}
			if s.Camera.Width != 32 {
				t.Errorf("Expected width override 32, got %d", s.Camera.Width)
			}
			if s.Camera.Height <= 0 {
				t.Errorf("Scene camera height should be positive, got %d", s.Camera.Height)
			}
		})
	}
}

func TestCreateOutputDir(t *testing.T) {
	tests := []struct {
		name      string
		sceneName string
		expected  string
	}{
		{"built-in scene", "default", filepath.Join("output", "default")},
		{"file id", "file:ball", filepath.Join("output", "ball")},
		{"toml path", filepath.Join("scenes", "subdir", "my-scene.toml"), filepath.Join("output", "my-scene")},
		{"empty", "", filepath.Join("output", "scene")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := createOutputDir(tt.sceneName); got != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestResolveFormat(t *testing.T) {
	tests := []struct {
		name     string
		format   string
		output   string
		expected string
		wantErr  bool
	}{
		{"default", "", "", "png", false},
		{"explicit", "ppm", "", "ppm", false},
		{"from output", "", "out/image.jpg", "jpeg", false},
		{"explicit wins", "bmp", "out/image.png", "bmp", false},
		{"unknown", "gif", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveFormat(tt.format, tt.output)
			if tt.wantErr {
				if err == nil {
					t.Error("Expected an error")
				}
				return
			}
			if err != nil || got != tt.expected {
				t.Errorf("Expected %s, got %s (err %v)", tt.expected, got, err)
			}
		})
	}
}

func TestOutputPath(t *testing.T) {
	now := time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC)

	got := outputPath(&options{}, "default", "png", now)
	expected := filepath.Join("output", "default", "render_20240305_143000.png")
	if got != expected {
		t.Errorf("Expected %s, got %s", expected, got)
	}

	if got := outputPath(&options{output: "x.ppm"}, "default", "ppm", now); got != "x.ppm" {
		t.Errorf("Expected explicit output to win, got %s", got)
	}
}

func TestParseFlagsValidation(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{"defaults", nil, false},
		{"watch without file", []string{"-watch"}, true},
		{"negative width", []string{"-width", "-5"}, true},
		{"unknown flag", []string{"-bogus"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := parseFlags(tt.args, &bytes.Buffer{})
			if (err != nil) != tt.wantErr {
				t.Errorf("Expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestApplyRenderOverrides(t *testing.T) {
	s, err := scene.NewBuiltin("default")
	if err != nil {
		t.Fatal(err)
	}
	applyRenderOverrides(s, &options{depth: 0, workers: 3, softShadows: true})
	if s.Render.MaxDepth != 0 || s.Render.Workers != 3 || !s.Render.SoftShadows {
		t.Errorf("Unexpected render config %+v", s.Render)
	}

	s, _ = scene.NewBuiltin("default")
	before := s.Render
	applyRenderOverrides(s, &options{depth: -1})
	if s.Render != before {
		t.Errorf("Expected untouched render config, got %+v", s.Render)
	}
}

func TestRunRendersPPM(t *testing.T) {
	output := filepath.Join(t.TempDir(), "render.ppm")
	var stdout, stderr bytes.Buffer

	code := run([]string{"-scene", "default", "-width", "12", "-height", "8", "-output", output, "-log-level", "error"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("Expected exit code 0, got %d: %s", code, stderr.String())
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	if lines[0] != "P3" || lines[1] != "12 8" || len(lines) != 3+8 {
		t.Errorf("Unexpected PPM header %q with %d lines", lines[:2], len(lines))
	}
}

func TestRunList(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-list", "-scenes", t.TempDir()}, &stdout, &stderr); code != 0 {
		t.Fatalf("Expected exit code 0, got %d", code)
	}
	for _, name := range scene.BuiltinNames() {
		if !strings.Contains(stdout.String(), name) {
			t.Errorf("Expected -list output to mention %s", name)
		}
	}
}

func TestRunUnknownScene(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-scene", "nonexistent", "-log-level", "error"}, &stdout, &stderr); code != 1 {
		t.Errorf("Expected exit code 1, got %d", code)
	}
}

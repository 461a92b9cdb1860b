package loaders

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

const testSceneTOML = `
# Scene: Loader Test
name = "loader-test"

[camera]
width = 20
height = 10
fov = 60.0
from = [0.0, 1.5, -5.0]
to = [0.0, 1.0, 0.0]
up = [0.0, 1.0, 0.0]

[render]
max_depth = 4
soft_shadows = true

[light]
position = [-10.0, 10.0, -10.0]
intensity = [1.0, 0.5, 1.0]

[[shapes]]
type = "plane"

[shapes.material]
reflective = 0.5

[shapes.material.pattern]
type = "checker"
a = [1.0, 1.0, 1.0]
b = [0.0, 0.0, 0.0]

[[shapes.material.pattern.transforms]]
type = "scale"
values = [0.5]

[[shapes]]
type = "sphere"

[[shapes.transforms]]
type = "scale"
values = [0.5]

[[shapes.transforms]]
type = "translate"
values = [0.0, 1.0, 0.0]

[shapes.material]
preset = "glass"
color = [0.1, 0.1, 0.1]

[[shapes]]
type = "cube"

[[shapes.transforms]]
type = "rotate_y"
degrees = 45.0
`

func TestParseScene(t *testing.T) {
	s, err := ParseScene(strings.NewReader(testSceneTOML), "fallback", ".")
	if err != nil {
		t.Fatalf("ParseScene failed: %v", err)
	}

	if s.Name != "loader-test" {
		t.Errorf("Expected name loader-test, got %s", s.Name)
	}
	if s.Camera.Width != 20 || s.Camera.Height != 10 || s.Camera.FieldOfView != 60 {
		t.Errorf("Unexpected camera %+v", s.Camera)
	}
	if !s.Camera.To.ApproxEqual(core.NewPoint(0, 1, 0)) {
		t.Errorf("Expected camera to (0,1,0), got %v", s.Camera.To)
	}
	if s.Render.MaxDepth != 4 || !s.Render.SoftShadows {
		t.Errorf("Unexpected render config %+v", s.Render)
	}
	if s.Render.SoftShadowRadius != 0.25 || s.Render.TileSize != 32 {
		t.Errorf("Expected unset render fields to keep defaults, got %+v", s.Render)
	}

	if s.World.Light == nil {
		t.Fatal("Expected a light")
	}
	if !s.World.Light.Position().ApproxEqual(core.NewPoint(-10, 10, -10)) {
		t.Errorf("Unexpected light position %v", s.World.Light.Position())
	}
	if !s.World.Light.Intensity().ApproxEqual(core.NewColor(1, 0.5, 1)) {
		t.Errorf("Unexpected light intensity %v", s.World.Light.Intensity())
	}

	if s.ShapeCount() != 3 {
		t.Fatalf("Expected 3 shapes, got %d", s.ShapeCount())
	}

	plane := s.World.Shapes[0]
	if plane.Material().Reflective != 0.5 {
		t.Errorf("Expected plane reflective 0.5, got %f", plane.Material().Reflective)
	}
	checker, ok := plane.Material().Pattern.(*material.CheckerPattern)
	if !ok {
		t.Fatalf("Expected checker pattern, got %T", plane.Material().Pattern)
	}
	if !checker.Transform().ApproxEqual(core.Scaling(0.5, 0.5, 0.5)) {
		t.Errorf("Unexpected pattern transform %v", checker.Transform())
	}

	sphere := s.World.Shapes[1]
	expected := core.Translation(0, 1, 0).Multiply(core.Scaling(0.5, 0.5, 0.5))
	if !sphere.Transform().ApproxEqual(expected) {
		t.Errorf("Expected transforms applied in list order, got %v", sphere.Transform())
	}
	m := sphere.Material()
	if m.Transparency != 1 || m.RefractiveIndex != material.RefractiveIndexGlass {
		t.Errorf("Expected glass preset, got %+v", *m)
	}
	if !m.Color.ApproxEqual(core.NewColor(0.1, 0.1, 0.1)) {
		t.Errorf("Expected color override on preset, got %v", m.Color)
	}

	cube := s.World.Shapes[2]
	if *cube.Material() != material.DefaultMaterial() {
		t.Errorf("Expected default material on cube, got %+v", *cube.Material())
	}
}

func TestParseSceneDefaults(t *testing.T) {
	s, err := ParseScene(strings.NewReader(""), "empty", ".")
	if err != nil {
		t.Fatal(err)
	}
	if s.Name != "empty" {
		t.Errorf("Expected fallback name, got %s", s.Name)
	}
	if s.World.Light != nil {
		t.Error("Expected no light")
	}
	if s.ShapeCount() != 0 {
		t.Errorf("Expected no shapes, got %d", s.ShapeCount())
	}
	if s.Camera.Width != 400 || s.Render.MaxDepth != 5 {
		t.Errorf("Expected default camera and render settings, got %+v %+v", s.Camera, s.Render)
	}
}

func TestParseSceneErrors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{
			name:    "unknown shape",
			doc:     "[[shapes]]\ntype = \"torus\"\n",
			wantErr: ErrUnknownShape,
		},
		{
			name:    "unknown pattern",
			doc:     "[[shapes]]\ntype = \"sphere\"\n[shapes.material.pattern]\ntype = \"marble\"\na = [1.0, 1.0, 1.0]\nb = [0.0, 0.0, 0.0]\n",
			wantErr: ErrUnknownPattern,
		},
		{
			name:    "unknown transform",
			doc:     "[[shapes]]\ntype = \"sphere\"\n[[shapes.transforms]]\ntype = \"skew\"\n",
			wantErr: ErrUnknownTransform,
		},
		{
			name:    "short vector",
			doc:     "[light]\nposition = [1.0, 2.0]\n",
			wantErr: ErrInvalidValue,
		},
		{
			name:    "texture without path",
			doc:     "[[shapes]]\ntype = \"sphere\"\n[shapes.material.pattern]\ntype = \"texture\"\n",
			wantErr: ErrInvalidValue,
		},
		{
			name:    "singular transform",
			doc:     "[[shapes]]\ntype = \"sphere\"\n[[shapes.transforms]]\ntype = \"scale\"\nvalues = [0.0]\n",
			wantErr: core.ErrSingularMatrix,
		},
		{
			name:    "inverted cylinder bounds",
			doc:     "[[shapes]]\ntype = \"cylinder\"\nminimum = 2.0\nmaximum = 1.0\n",
			wantErr: ErrInvalidValue,
		},
		{
			name:    "invalid material",
			doc:     "[[shapes]]\ntype = \"sphere\"\n[shapes.material]\nreflective = 2.0\n",
			wantErr: material.ErrInvalidMaterial,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScene(strings.NewReader(tt.doc), "bad", ".")
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestParseSceneQuadrics(t *testing.T) {
	doc := `
[[shapes]]
type = "cylinder"
minimum = -1.0
maximum = 2.0
capped = false

[[shapes]]
type = "cone"
`
	s, err := ParseScene(strings.NewReader(doc), "quadrics", ".")
	if err != nil {
		t.Fatal(err)
	}
	if s.ShapeCount() != 2 {
		t.Fatalf("Expected 2 shapes, got %d", s.ShapeCount())
	}

	cyl, ok := s.World.Shapes[0].(*geometry.Cylinder)
	if !ok {
		t.Fatalf("Expected *geometry.Cylinder, got %T", s.World.Shapes[0])
	}
	if cyl.Minimum != -1 || cyl.Maximum != 2 || cyl.Capped {
		t.Errorf("Unexpected cylinder bounds %+v", cyl)
	}

	cone, ok := s.World.Shapes[1].(*geometry.Cone)
	if !ok {
		t.Fatalf("Expected *geometry.Cone, got %T", s.World.Shapes[1])
	}
	if cone.Minimum != 0 || cone.Maximum != 1 || !cone.Capped {
		t.Errorf("Expected default cone bounds, got %+v", cone)
	}
}

func TestParseSceneRejectsUnknownFields(t *testing.T) {
	doc := "[[shapes]]\ntype = \"sphere\"\n[shapes.material]\ncolour = [1.0, 0.0, 0.0]\n"
	_, err := ParseScene(strings.NewReader(doc), "strict", ".")
	if err == nil {
		t.Fatal("Expected an error for an unknown key")
	}
	if !strings.Contains(err.Error(), "colour") {
		t.Errorf("Expected error to name the unknown key, got %v", err)
	}
}

func TestLoadSceneFileWithTexture(t *testing.T) {
	dir := t.TempDir()
	writeTestImage(t, filepath.Join(dir, "tex.png"))

	doc := `
[[shapes]]
type = "sphere"

[shapes.material.pattern]
type = "texture"
path = "tex.png"
mapping = "spherical"
`
	path := filepath.Join(dir, "textured-ball.toml")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadSceneFile(path)
	if err != nil {
		t.Fatalf("LoadSceneFile failed: %v", err)
	}
	if s.Name != "textured-ball" {
		t.Errorf("Expected name from file stem, got %s", s.Name)
	}
	tex, ok := s.World.Shapes[0].Material().Pattern.(*material.TexturePattern)
	if !ok {
		t.Fatalf("Expected texture pattern, got %T", s.World.Shapes[0].Material().Pattern)
	}
	if tex.Mapping != material.SphericalMapping || tex.Width != 2 {
		t.Errorf("Unexpected texture %dx%d mapping %v", tex.Width, tex.Height, tex.Mapping)
	}
}

func TestLoadSceneFileMissing(t *testing.T) {
	if _, err := LoadSceneFile(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Expected error for a missing file")
	}
}

func TestShippedScenesLoad(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("..", "..", "scenes", "*.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Skip("no scene files shipped")
	}

	for _, path := range files {
		t.Run(filepath.Base(path), func(t *testing.T) {
			s, err := LoadSceneFile(path)
			if err != nil {
				t.Fatalf("LoadSceneFile failed: %v", err)
			}
			if s.World.Light == nil {
				t.Error("Expected a light")
			}
			if s.ShapeCount() == 0 {
				t.Error("Expected at least one shape")
			}
		})
	}
}

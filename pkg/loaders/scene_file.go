package loaders

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

var (
	// ErrUnknownShape is returned for a [[shapes]] entry with an unsupported type
	ErrUnknownShape = errors.New("unknown shape type")
	// ErrUnknownPattern is returned for a pattern with an unsupported type
	ErrUnknownPattern = errors.New("unknown pattern type")
	// ErrUnknownTransform is returned for a transform with an unsupported type
	ErrUnknownTransform = errors.New("unknown transform type")
	// ErrInvalidValue is returned for malformed vectors, colors and transform arguments
	ErrInvalidValue = errors.New("invalid value")
)

// SceneFile is the TOML document describing a scene
type SceneFile struct {
	Name   string      `toml:"name"`
	Camera CameraSpec  `toml:"camera"`
	Render RenderSpec  `toml:"render"`
	Light  *LightSpec  `toml:"light"`
	Shapes []ShapeSpec `toml:"shapes"`
}

// CameraSpec mirrors scene.CameraConfig. Omitted fields keep their defaults.
type CameraSpec struct {
	Width       int       `toml:"width"`
	Height      int       `toml:"height"`
	FieldOfView float64   `toml:"fov"`
	From        []float64 `toml:"from"`
	To          []float64 `toml:"to"`
	Up          []float64 `toml:"up"`
}

// RenderSpec mirrors scene.RenderConfig
type RenderSpec struct {
	MaxDepth         int     `toml:"max_depth"`
	SoftShadows      bool    `toml:"soft_shadows"`
	SoftShadowRadius float64 `toml:"soft_shadow_radius"`
	Workers          int     `toml:"workers"`
	TileSize         int     `toml:"tile_size"`
}

// LightSpec describes the point light
type LightSpec struct {
	Position  []float64 `toml:"position"`
	Intensity []float64 `toml:"intensity"`
}

// ShapeSpec describes one shape. Minimum, Maximum and Capped apply to
// cylinders and cones and default to a capped unit height (0, 1).
type ShapeSpec struct {
	Type       string          `toml:"type"`
	Minimum    *float64        `toml:"minimum"`
	Maximum    *float64        `toml:"maximum"`
	Capped     *bool           `toml:"capped"`
	Transforms []TransformSpec `toml:"transforms"`
	Material   *MaterialSpec   `toml:"material"`
}

// TransformSpec is one step of a transform chain, applied in list order
type TransformSpec struct {
	Type    string    `toml:"type"`
	Values  []float64 `toml:"values"`
	Degrees float64   `toml:"degrees"`
}

// MaterialSpec overrides fields of the default material. Unset fields keep
// their default values.
type MaterialSpec struct {
	Preset          string       `toml:"preset"`
	Color           []float64    `toml:"color"`
	Ambient         *float64     `toml:"ambient"`
	Diffuse         *float64     `toml:"diffuse"`
	Specular        *float64     `toml:"specular"`
	Shininess       *float64     `toml:"shininess"`
	Reflective      *float64     `toml:"reflective"`
	Transparency    *float64     `toml:"transparency"`
	RefractiveIndex *float64     `toml:"refractive_index"`
	Pattern         *PatternSpec `toml:"pattern"`
}

// PatternSpec describes a material pattern
type PatternSpec struct {
	Type       string          `toml:"type"`
	A          []float64       `toml:"a"`
	B          []float64       `toml:"b"`
	Path       string          `toml:"path"`
	Mapping    string          `toml:"mapping"`
	Transforms []TransformSpec `toml:"transforms"`
}

// LoadSceneFile reads and builds a scene from a TOML file. Texture paths are
// resolved relative to the file's directory.
func LoadSceneFile(path string) (*scene.Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scene file: %w", err)
	}
	defer f.Close()

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	s, err := ParseScene(f, name, filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// ParseScene decodes a TOML scene document. defaultName is used when the
// document has no name; baseDir resolves relative texture paths.
func ParseScene(r io.Reader, defaultName, baseDir string) (*scene.Scene, error) {
	var sf SceneFile
	decoder := toml.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&sf); err != nil {
		var strictErr *toml.StrictMissingError
		if errors.As(err, &strictErr) {
			keys := make([]string, 0, len(strictErr.Errors))
			for _, e := range strictErr.Errors {
				keys = append(keys, strings.Join(e.Key(), "."))
			}
			return nil, fmt.Errorf("unknown fields in scene file: %s", strings.Join(keys, ", "))
		}
		return nil, fmt.Errorf("decode scene file: %w", err)
	}
	if sf.Name == "" {
		sf.Name = defaultName
	}
	return sf.Build(baseDir)
}

// Build converts the decoded document into a scene
func (sf *SceneFile) Build(baseDir string) (*scene.Scene, error) {
	camera, err := sf.Camera.config()
	if err != nil {
		return nil, fmt.Errorf("camera: %w", err)
	}

	world := scene.NewWorld()
	if sf.Light != nil {
		light, err := sf.Light.build()
		if err != nil {
			return nil, fmt.Errorf("light: %w", err)
		}
		world.Light = light
	}

	for i, spec := range sf.Shapes {
		shape, err := spec.build(baseDir)
		if err != nil {
			return nil, fmt.Errorf("shapes[%d]: %w", i, err)
		}
		world.Add(shape)
	}

	return &scene.Scene{
		Name:   sf.Name,
		World:  world,
		Camera: camera,
		Render: scene.MergeRenderConfig(scene.DefaultRenderConfig(), sf.Render.config()),
	}, nil
}

func (c CameraSpec) config() (scene.CameraConfig, error) {
	override := scene.CameraConfig{
		Width:       c.Width,
		Height:      c.Height,
		FieldOfView: c.FieldOfView,
	}
	var err error
	if c.From != nil {
		if override.From, err = point(c.From); err != nil {
			return override, fmt.Errorf("from: %w", err)
		}
	}
	if c.To != nil {
		if override.To, err = point(c.To); err != nil {
			return override, fmt.Errorf("to: %w", err)
		}
	}
	if c.Up != nil {
		if override.Up, err = vector(c.Up); err != nil {
			return override, fmt.Errorf("up: %w", err)
		}
	}
	return scene.MergeCameraConfig(scene.DefaultCameraConfig(), override), nil
}

func (r RenderSpec) config() scene.RenderConfig {
	return scene.RenderConfig{
		MaxDepth:         r.MaxDepth,
		SoftShadows:      r.SoftShadows,
		SoftShadowRadius: r.SoftShadowRadius,
		Workers:          r.Workers,
		TileSize:         r.TileSize,
	}
}

func (l LightSpec) build() (lights.Light, error) {
	position, err := point(l.Position)
	if err != nil {
		return nil, fmt.Errorf("position: %w", err)
	}
	intensity := core.White
	if l.Intensity != nil {
		if intensity, err = parseColor(l.Intensity); err != nil {
			return nil, fmt.Errorf("intensity: %w", err)
		}
	}
	return lights.NewPointLight(position, intensity), nil
}

func (s ShapeSpec) build(baseDir string) (geometry.Shape, error) {
	var shape interface {
		geometry.Shape
		SetTransform(core.Matrix) error
		SetMaterial(material.Material)
	}
	var err error
	switch strings.ToLower(s.Type) {
	case "sphere":
		shape = geometry.NewSphere()
	case "plane":
		shape = geometry.NewPlane()
	case "cube":
		shape = geometry.NewCube()
	case "cylinder":
		minimum, maximum, capped := s.bounds()
		if shape, err = geometry.NewCylinder(minimum, maximum, capped); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidValue, err)
		}
	case "cone":
		minimum, maximum, capped := s.bounds()
		if shape, err = geometry.NewCone(minimum, maximum, capped); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidValue, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownShape, s.Type)
	}

	transform, err := buildTransform(s.Transforms)
	if err != nil {
		return nil, err
	}
	if err := shape.SetTransform(transform); err != nil {
		return nil, err
	}

	m := material.DefaultMaterial()
	if s.Material != nil {
		if m, err = s.Material.build(baseDir); err != nil {
			return nil, fmt.Errorf("material: %w", err)
		}
	}
	shape.SetMaterial(m)
	return shape, nil
}

func (s ShapeSpec) bounds() (minimum, maximum float64, capped bool) {
	minimum, maximum, capped = 0, 1, true
	if s.Minimum != nil {
		minimum = *s.Minimum
	}
	if s.Maximum != nil {
		maximum = *s.Maximum
	}
	if s.Capped != nil {
		capped = *s.Capped
	}
	return minimum, maximum, capped
}

func (ms MaterialSpec) build(baseDir string) (material.Material, error) {
	var m material.Material
	switch strings.ToLower(ms.Preset) {
	case "", "default":
		m = material.DefaultMaterial()
	case "glass":
		m = material.Glass()
	default:
		return m, fmt.Errorf("%w: unknown preset %q", ErrInvalidValue, ms.Preset)
	}

	if ms.Color != nil {
		c, err := parseColor(ms.Color)
		if err != nil {
			return m, fmt.Errorf("color: %w", err)
		}
		m.Color = c
	}
	setIfPresent(&m.Ambient, ms.Ambient)
	setIfPresent(&m.Diffuse, ms.Diffuse)
	setIfPresent(&m.Specular, ms.Specular)
	setIfPresent(&m.Shininess, ms.Shininess)
	setIfPresent(&m.Reflective, ms.Reflective)
	setIfPresent(&m.Transparency, ms.Transparency)
	setIfPresent(&m.RefractiveIndex, ms.RefractiveIndex)

	if ms.Pattern != nil {
		p, err := ms.Pattern.build(baseDir)
		if err != nil {
			return m, fmt.Errorf("pattern: %w", err)
		}
		m.Pattern = p
	}
	return m, m.Validate()
}

func setIfPresent(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

// placedPattern is a pattern whose transform can be set
type placedPattern interface {
	material.Pattern
	SetTransform(core.Matrix) error
}

func (ps PatternSpec) build(baseDir string) (material.Pattern, error) {
	kind := strings.ToLower(ps.Type)

	var a, b core.Color
	if kind != "texture" {
		var err error
		if a, err = parseColor(ps.A); err != nil {
			return nil, fmt.Errorf("a: %w", err)
		}
		if kind != "solid" {
			if b, err = parseColor(ps.B); err != nil {
				return nil, fmt.Errorf("b: %w", err)
			}
		}
	}

	var p placedPattern
	switch kind {
	case "solid":
		p = material.NewSolidPattern(a)
	case "stripe":
		p = material.NewStripePattern(a, b)
	case "gradient":
		p = material.NewGradientPattern(a, b)
	case "ring":
		p = material.NewRingPattern(a, b)
	case "checker":
		p = material.NewCheckerPattern(a, b)
	case "texture":
		tex, err := ps.texture(baseDir)
		if err != nil {
			return nil, err
		}
		p = tex
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPattern, ps.Type)
	}

	transform, err := buildTransform(ps.Transforms)
	if err != nil {
		return nil, err
	}
	if err := p.SetTransform(transform); err != nil {
		return nil, err
	}
	return p, nil
}

func (ps PatternSpec) texture(baseDir string) (*material.TexturePattern, error) {
	if ps.Path == "" {
		return nil, fmt.Errorf("%w: texture pattern needs a path", ErrInvalidValue)
	}
	path := ps.Path
	if !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, path)
	}
	tex, err := LoadTexture(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(ps.Mapping) {
	case "", "planar":
		tex.Mapping = material.PlanarMapping
	case "spherical":
		tex.Mapping = material.SphericalMapping
	default:
		return nil, fmt.Errorf("%w: unknown mapping %q", ErrInvalidValue, ps.Mapping)
	}
	return tex, nil
}

// buildTransform composes the transforms so the first entry is applied first
func buildTransform(specs []TransformSpec) (core.Matrix, error) {
	steps := make([]core.Matrix, 0, len(specs))
	for i, spec := range specs {
		m, err := spec.matrix()
		if err != nil {
			return core.Matrix{}, fmt.Errorf("transforms[%d]: %w", i, err)
		}
		steps = append(steps, m)
	}
	return core.Chain(steps...), nil
}

func (ts TransformSpec) matrix() (core.Matrix, error) {
	v := ts.Values
	switch strings.ToLower(ts.Type) {
	case "translate":
		if len(v) != 3 {
			return core.Matrix{}, fmt.Errorf("%w: translate needs 3 values, got %d", ErrInvalidValue, len(v))
		}
		return core.Translation(v[0], v[1], v[2]), nil
	case "scale":
		switch len(v) {
		case 1:
			return core.Scaling(v[0], v[0], v[0]), nil
		case 3:
			return core.Scaling(v[0], v[1], v[2]), nil
		}
		return core.Matrix{}, fmt.Errorf("%w: scale needs 1 or 3 values, got %d", ErrInvalidValue, len(v))
	case "rotate_x":
		return core.RotationX(core.Radians(ts.Degrees)), nil
	case "rotate_y":
		return core.RotationY(core.Radians(ts.Degrees)), nil
	case "rotate_z":
		return core.RotationZ(core.Radians(ts.Degrees)), nil
	case "shear":
		if len(v) != 6 {
			return core.Matrix{}, fmt.Errorf("%w: shear needs 6 values, got %d", ErrInvalidValue, len(v))
		}
		return core.Shearing(v[0], v[1], v[2], v[3], v[4], v[5]), nil
	}
	return core.Matrix{}, fmt.Errorf("%w: %q", ErrUnknownTransform, ts.Type)
}

func point(v []float64) (core.Tuple, error) {
	if len(v) != 3 {
		return core.Tuple{}, fmt.Errorf("%w: expected [x, y, z], got %d values", ErrInvalidValue, len(v))
	}
	return core.NewPoint(v[0], v[1], v[2]), nil
}

func vector(v []float64) (core.Tuple, error) {
	if len(v) != 3 {
		return core.Tuple{}, fmt.Errorf("%w: expected [x, y, z], got %d values", ErrInvalidValue, len(v))
	}
	return core.NewVector(v[0], v[1], v[2]), nil
}

func parseColor(v []float64) (core.Color, error) {
	if len(v) != 3 {
		return core.Color{}, fmt.Errorf("%w: expected [r, g, b], got %d values", ErrInvalidValue, len(v))
	}
	return core.NewColor(v[0], v[1], v[2]), nil
}

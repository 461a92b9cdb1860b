package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/df07/go-whitted-raytracer/pkg/canvas"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for pixel inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	ShapeID      string                 `json:"shapeId,omitempty"`
	GeometryType string                 `json:"geometryType,omitempty"`
	Distance     float64                `json:"distance"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Inside       bool                   `json:"inside"`
	N1           float64                `json:"n1"`
	N2           float64                `json:"n2"`
	Color        string                 `json:"color"` // Shaded pixel color as #rrggbb
	Material     map[string]interface{} `json:"material,omitempty"`
}

// geometryType names the primitive behind a shape
func geometryType(shape geometry.Shape) string {
	switch shape.(type) {
	case *geometry.Sphere:
		return "sphere"
	case *geometry.Plane:
		return "plane"
	case *geometry.Cube:
		return "cube"
	case *geometry.Cylinder:
		return "cylinder"
	case *geometry.Cone:
		return "cone"
	default:
		return "unknown"
	}
}

// patternType names a material pattern
func patternType(p material.Pattern) string {
	switch p.(type) {
	case nil:
		return "none"
	case *material.SolidPattern:
		return "solid"
	case *material.StripePattern:
		return "stripe"
	case *material.GradientPattern:
		return "gradient"
	case *material.RingPattern:
		return "ring"
	case *material.CheckerPattern:
		return "checker"
	case *material.TexturePattern:
		return "texture"
	default:
		return "unknown"
	}
}

// extractMaterialInfo lists the Phong and secondary-ray coefficients
func extractMaterialInfo(mat *material.Material) map[string]interface{} {
	rgba := canvas.ToRGBA(mat.Color)
	return map[string]interface{}{
		"color":           fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B),
		"ambient":         mat.Ambient,
		"diffuse":         mat.Diffuse,
		"specular":        mat.Specular,
		"shininess":       mat.Shininess,
		"reflective":      mat.Reflective,
		"transparency":    mat.Transparency,
		"refractiveIndex": mat.RefractiveIndex,
		"pattern":         patternType(mat.Pattern),
	}
}

// inspectPixel casts the primary ray through the pixel and describes its hit
func inspectPixel(rt *renderer.Raytracer, world *scene.World, pixelX, pixelY int) InspectResponse {
	rgba := canvas.ToRGBA(rt.RenderPixel(pixelX, pixelY))
	response := InspectResponse{Color: fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B)}

	ray := rt.Camera().RayForPixel(pixelX, pixelY)
	comps, ok := integrator.PrepareHit(world, ray)
	if !ok {
		return response
	}

	response.Hit = true
	response.ShapeID = comps.Object.ID().String()
	response.GeometryType = geometryType(comps.Object)
	response.Distance = comps.T
	response.Point = tupleArray(comps.Point)
	response.Normal = tupleArray(comps.NormalV)
	response.Inside = comps.Inside
	response.N1 = comps.N1
	response.N2 = comps.N2
	response.Material = extractMaterialInfo(comps.Object.Material())
	return response
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	sceneName := query.Get("scene")
	if sceneName == "" {
		sceneName = "default"
	}

	width, err := parseIntParam(query, "width", 0, MinImageSize, MaxImageSize)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}
	height, err := parseIntParam(query, "height", 0, MinImageSize, MaxImageSize)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}

	pixelX, err := strconv.Atoi(query.Get("x"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}
	pixelY, err := strconv.Atoi(query.Get("y"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}

	sceneObj, err := s.createScene(sceneName, scene.CameraConfig{Width: width, Height: height})
	if err != nil {
		writeSceneError(w, err)
		return
	}

	// Validate pixel coordinates against the resolved image size
	if pixelX < 0 || pixelX >= sceneObj.Camera.Width || pixelY < 0 || pixelY >= sceneObj.Camera.Height {
		writeError(w, http.StatusBadRequest, "Pixel coordinates out of bounds")
		return
	}

	rt, err := renderer.NewRaytracer(sceneObj, s.logger)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, inspectPixel(rt, sceneObj.World, pixelX, pixelY))
}

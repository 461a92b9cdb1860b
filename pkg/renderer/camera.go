package renderer

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Camera maps pixels on a canvas one unit in front of the eye to world-space rays
type Camera struct {
	HSize       int     // Canvas width in pixels
	VSize       int     // Canvas height in pixels
	FieldOfView float64 // Horizontal (or vertical, for portrait canvases) view angle in radians

	transform  core.Matrix
	inverse    core.Matrix
	halfWidth  float64
	halfHeight float64
	pixelSize  float64
}

// NewCamera creates a camera at the origin looking down -z
func NewCamera(hsize, vsize int, fieldOfView float64) *Camera {
	c := &Camera{
		HSize:       hsize,
		VSize:       vsize,
		FieldOfView: fieldOfView,
		transform:   core.Identity(),
		inverse:     core.Identity(),
	}

	halfView := math.Tan(fieldOfView / 2)
	aspect := float64(hsize) / float64(vsize)
	if aspect >= 1 {
		c.halfWidth = halfView
		c.halfHeight = halfView / aspect
	} else {
		c.halfWidth = halfView * aspect
		c.halfHeight = halfView
	}
	c.pixelSize = c.halfWidth * 2 / float64(hsize)
	return c
}

// NewCameraFromConfig builds a camera from a scene camera configuration
func NewCameraFromConfig(config scene.CameraConfig) (*Camera, error) {
	if config.Width <= 0 || config.Height <= 0 {
		return nil, fmt.Errorf("camera: invalid image size %dx%d", config.Width, config.Height)
	}
	if config.FieldOfView <= 0 || config.FieldOfView >= 180 {
		return nil, fmt.Errorf("camera: field of view must be in (0, 180) degrees, got %g", config.FieldOfView)
	}
	if config.From == config.To {
		return nil, fmt.Errorf("camera: from and to are the same point %v", config.From)
	}
	c := NewCamera(config.Width, config.Height, core.Radians(config.FieldOfView))
	if err := c.SetTransform(core.ViewTransform(config.From, config.To, config.Up)); err != nil {
		return nil, err
	}
	return c, nil
}

// Transform returns the view transform
func (c *Camera) Transform() core.Matrix {
	return c.transform
}

// SetTransform sets the view transform. A singular matrix (for example when
// from equals to, or up is parallel to the view direction) is rejected.
func (c *Camera) SetTransform(m core.Matrix) error {
	inv, err := m.Inverse()
	if err != nil {
		return fmt.Errorf("camera transform: %w", err)
	}
	c.transform = m
	c.inverse = inv
	return nil
}

// PixelSize returns the world-space size of one pixel on the canvas plane
func (c *Camera) PixelSize() float64 {
	return c.pixelSize
}

// RayForPixel returns the ray from the eye through the center of pixel (px, py)
func (c *Camera) RayForPixel(px, py int) core.Ray {
	xOffset := (float64(px) + 0.5) * c.pixelSize
	yOffset := (float64(py) + 0.5) * c.pixelSize

	// the camera looks toward -z, so +x is to the left
	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	pixel := c.inverse.MultiplyTuple(core.NewPoint(worldX, worldY, -1))
	origin := c.inverse.MultiplyTuple(core.NewPoint(0, 0, 0))
	direction := pixel.Subtract(origin).Normalize()
	return core.NewRay(origin, direction)
}

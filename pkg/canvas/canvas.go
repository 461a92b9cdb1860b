package canvas

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Canvas is a width×height grid of linear colors, stored row-major
type Canvas struct {
	Width  int
	Height int
	pixels []core.Color
}

// New creates a new black canvas
func New(width, height int) *Canvas {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("canvas: invalid size %dx%d", width, height))
	}
	return &Canvas{
		Width:  width,
		Height: height,
		pixels: make([]core.Color, width*height),
	}
}

func (c *Canvas) index(x, y int) int {
	if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
		panic(fmt.Sprintf("canvas: pixel (%d, %d) out of bounds for %dx%d canvas", x, y, c.Width, c.Height))
	}
	return y*c.Width + x
}

// PixelAt returns the color at (x, y). Panics when out of bounds.
func (c *Canvas) PixelAt(x, y int) core.Color {
	return c.pixels[c.index(x, y)]
}

// WritePixel sets the color at (x, y). Panics when out of bounds.
func (c *Canvas) WritePixel(x, y int, color core.Color) {
	c.pixels[c.index(x, y)] = color
}

// Bounds returns the canvas rectangle
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.Width, c.Height)
}

// ToImage converts the canvas to an 8-bit RGBA image, clamping each channel
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(c.Bounds())
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			img.SetRGBA(x, y, ToRGBA(c.PixelAt(x, y)))
		}
	}
	return img
}

// ToRGBA converts a linear color to 8-bit RGBA
func ToRGBA(c core.Color) color.RGBA {
	return color.RGBA{
		R: uint8(scaleChannel(c.R)),
		G: uint8(scaleChannel(c.G)),
		B: uint8(scaleChannel(c.B)),
		A: 255,
	}
}

// scaleChannel maps [0,1] to [0,255] with rounding, clamping anything outside.
// NaN maps to 0.
func scaleChannel(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	return int(core.Clamp(v*255+0.5, 0, 255))
}

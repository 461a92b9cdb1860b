package material

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// NewCheckerboardTexture creates a procedural checkerboard texture
func NewCheckerboardTexture(width, height, checkSize int, color1, color2 core.Color) *TexturePattern {
	pixels := make([]core.Color, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			checkX := x / checkSize
			checkY := y / checkSize

			color := color2
			if (checkX+checkY)%2 == 0 {
				color = color1
			}
			pixels[y*width+x] = color
		}
	}

	return NewTexturePattern(width, height, pixels)
}

// NewUVDebugTexture creates a texture showing UV coordinates as colors.
// U maps to red, V maps to green.
func NewUVDebugTexture(width, height int) *TexturePattern {
	pixels := make([]core.Color, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			u := float64(x) / float64(max(width-1, 1))
			v := 1 - float64(y)/float64(max(height-1, 1))
			pixels[y*width+x] = core.NewColor(u, v, 0)
		}
	}

	return NewTexturePattern(width, height, pixels)
}

// NewGradientTexture creates a vertical gradient from color1 (top) to color2 (bottom)
func NewGradientTexture(width, height int, color1, color2 core.Color) *TexturePattern {
	pixels := make([]core.Color, width*height)

	for y := 0; y < height; y++ {
		t := float64(y) / float64(max(height-1, 1))
		color := color1.Multiply(1.0 - t).Add(color2.Multiply(t))
		for x := 0; x < width; x++ {
			pixels[y*width+x] = color
		}
	}

	return NewTexturePattern(width, height, pixels)
}

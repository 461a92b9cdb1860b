package canvas

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const stampPadding = 3

// Stamp draws a single line of text onto a dark band along the bottom of img
func Stamp(img draw.Image, text string) {
	face := basicfont.Face7x13
	bounds := img.Bounds()
	metrics := face.Metrics()
	lineHeight := (metrics.Ascent + metrics.Descent).Ceil()

	band := image.Rect(bounds.Min.X, bounds.Max.Y-lineHeight-2*stampPadding, bounds.Max.X, bounds.Max.Y)
	band = band.Intersect(bounds)
	draw.Draw(img, band, image.NewUniform(color.RGBA{0, 0, 0, 160}), image.Point{}, draw.Over)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
		Dot:  fixed.P(bounds.Min.X+stampPadding, bounds.Max.Y-stampPadding-metrics.Descent.Ceil()),
	}
	d.DrawString(text)
}

// StampedImage converts the canvas to an image with a caption line
func (c *Canvas) StampedImage(text string) *image.RGBA {
	img := c.ToImage()
	if text != "" {
		Stamp(img, text)
	}
	return img
}

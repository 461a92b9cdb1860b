package renderer

import (
	"fmt"
	"image"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels      int           // Number of pixels rendered
	PrimaryRays      int           // Camera rays traced, one per pixel
	Tiles            int           // Tiles rendered, 1 for a serial render
	Workers          int           // Workers used
	Elapsed          time.Duration // Wall-clock render time
	AverageLuminance float64       // Mean Rec. 709 luminance of the 8-bit output
}

// add merges the pixel counters of another stats block
func (s *RenderStats) add(other RenderStats) {
	s.TotalPixels += other.TotalPixels
	s.PrimaryRays += other.PrimaryRays
	s.Tiles += other.Tiles
}

// RaysPerSecond returns the primary ray throughput
func (s RenderStats) RaysPerSecond() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.PrimaryRays) / s.Elapsed.Seconds()
}

// String returns a one-line summary suitable for logs and image captions
func (s RenderStats) String() string {
	return fmt.Sprintf("%d px, %d rays, %d workers, %v, lum %.3f",
		s.TotalPixels, s.PrimaryRays, s.Workers, s.Elapsed.Round(time.Millisecond), s.AverageLuminance)
}

// CalculateAverageLuminance returns the mean Rec. 709 luminance of an image,
// with channels normalized to [0,1]
func CalculateAverageLuminance(img image.Image) float64 {
	bounds := img.Bounds()
	count := bounds.Dx() * bounds.Dy()
	if count == 0 {
		return 0
	}

	total := 0.0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			c := core.NewColor(float64(r)/0xffff, float64(g)/0xffff, float64(b)/0xffff)
			total += c.Luminance()
		}
	}
	return total / float64(count)
}

package canvas

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// WritePPM writes the canvas as a plain-text P3 portable pixmap. Each image
// row is written on its own line.
func (c *Canvas) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", c.Width, c.Height); err != nil {
		return fmt.Errorf("write ppm header: %w", err)
	}

	var row strings.Builder
	for y := 0; y < c.Height; y++ {
		row.Reset()
		for x := 0; x < c.Width; x++ {
			p := c.PixelAt(x, y)
			if x > 0 {
				row.WriteByte(' ')
			}
			fmt.Fprintf(&row, "%d %d %d", scaleChannel(p.R), scaleChannel(p.G), scaleChannel(p.B))
		}
		row.WriteByte('\n')
		if _, err := bw.WriteString(row.String()); err != nil {
			return fmt.Errorf("write ppm row %d: %w", y, err)
		}
	}
	return bw.Flush()
}

// PPM returns the canvas encoded as a P3 string
func (c *Canvas) PPM() string {
	var sb strings.Builder
	_ = c.WritePPM(&sb)
	return sb.String()
}

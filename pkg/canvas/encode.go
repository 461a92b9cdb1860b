package canvas

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ErrUnknownFormat is returned for output formats the canvas cannot encode
var ErrUnknownFormat = errors.New("unknown image format")

// Supported output formats
const (
	FormatPNG  = "png"
	FormatPPM  = "ppm"
	FormatJPEG = "jpeg"
	FormatBMP  = "bmp"
	FormatTIFF = "tiff"
)

// Formats lists every format Encode accepts
func Formats() []string {
	return []string{FormatPNG, FormatPPM, FormatJPEG, FormatBMP, FormatTIFF}
}

// NormalizeFormat maps aliases such as "jpg" or "tif" to a canonical format name
func NormalizeFormat(format string) (string, error) {
	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "png":
		return FormatPNG, nil
	case "ppm", "p3":
		return FormatPPM, nil
	case "jpg", "jpeg":
		return FormatJPEG, nil
	case "bmp":
		return FormatBMP, nil
	case "tif", "tiff":
		return FormatTIFF, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// FormatFromPath infers the output format from a file extension
func FormatFromPath(path string) (string, error) {
	return NormalizeFormat(filepath.Ext(path))
}

// Encode writes the canvas to w in the requested format
func (c *Canvas) Encode(w io.Writer, format string) error {
	format, err := NormalizeFormat(format)
	if err != nil {
		return err
	}
	if format == FormatPPM {
		return c.WritePPM(w)
	}
	return EncodeImage(w, c.ToImage(), format)
}

// EncodeImage writes an 8-bit image in one of the raster formats
func EncodeImage(w io.Writer, img image.Image, format string) error {
	format, err := NormalizeFormat(format)
	if err != nil {
		return err
	}
	switch format {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatJPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %s is not a raster format", ErrUnknownFormat, format)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", format, err)
	}
	return nil
}

// ContentType returns the MIME type for a canonical format name
func ContentType(format string) string {
	switch format {
	case FormatPNG:
		return "image/png"
	case FormatJPEG:
		return "image/jpeg"
	case FormatBMP:
		return "image/bmp"
	case FormatTIFF:
		return "image/tiff"
	case FormatPPM:
		return "image/x-portable-pixmap"
	}
	return "application/octet-stream"
}

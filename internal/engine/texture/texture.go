// Package texture provides CPU-side image sourcing for the demos: file
// decoding (TGA, PNG) and a procedural fallback pattern. GL upload lives in
// the renderer package.
package texture

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
)

// Load reads and decodes a texture file by extension. The result is flipped
// vertically so that (0,0) lands at the bottom-left, matching GL texture
// coordinates.
func Load(path string) (*image.RGBA, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading texture %s: %w", path, err)
	}

	var img image.Image
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tga":
		img, err = DecodeTGA(data)
	case ".png":
		img, err = png.Decode(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("unsupported texture format %q", filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("decoding texture %s: %w", path, err)
	}

	return FlipVertical(ToRGBA(img)), nil
}

// ToRGBA converts any image.Image to *image.RGBA.
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}

	bounds := img.Bounds()
	rgba := image.NewRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			rgba.Set(x, y, img.At(x, y))
		}
	}
	return rgba
}

// FlipVertical returns a copy with rows in reverse order.
func FlipVertical(img *image.RGBA) *image.RGBA {
	bounds := img.Bounds()
	flipped := image.NewRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		srcY := bounds.Max.Y - 1 - (y - bounds.Min.Y)
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			flipped.SetRGBA(x, y, img.RGBAAt(x, srcY))
		}
	}
	return flipped
}

// Checkerboard generates a size x size pattern of cells x cells squares in
// the two given colors. Used when no texture file is configured.
func Checkerboard(size, cells int, a, b color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	cell := size / cells
	if cell < 1 {
		cell = 1
	}

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := a
			if (x/cell+y/cell)%2 == 1 {
				c = b
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

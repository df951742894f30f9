package main

import (
	"errors"
	"fmt"
	"image"
)

var errInvalidDimensions = errors.New("width and height must be positive")

// validateSize rejects non-positive dimensions before anything is allocated.
func validateSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: got %dx%d", errInvalidDimensions, width, height)
	}
	return nil
}

// newCanvas allocates an opaque RGBA buffer filled with the background color.
func newCanvas(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	bg := backgroundColor
	pix := img.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i] = bg.R
		pix[i+1] = bg.G
		pix[i+2] = bg.B
		pix[i+3] = bg.A
	}
	return img
}

// fillRow blends the aurora onto a single row of the canvas.
func fillRow(img *image.RGBA, y int) {
	b := img.Bounds()
	width := float64(b.Dx())
	ny := float64(y-b.Min.Y) / float64(b.Dy())
	row := img.Pix[img.PixOffset(b.Min.X, y):]
	for x := 0; x < b.Dx(); x++ {
		nx := float64(x) / width
		r, g, bl := auroraColor(nx, ny)
		base := x * 4
		row[base] = addSaturate(row[base], r)
		row[base+1] = addSaturate(row[base+1], g)
		row[base+2] = addSaturate(row[base+2], bl)
	}
}

package main

import (
	"image"
	"math/rand"

	"github.com/fogleman/gg"
)

// star is a single bright dot in the upper half of the sky.
type star struct {
	x, y       int
	size       int
	brightness int
}

// generateStars places starCount stars using a fixed seed so the sky is the
// same on every run for a given size.
func generateStars(width, height int) []star {
	rng := rand.New(rand.NewSource(starSeed))
	// at least one row even for a 1px tall image
	skyHeight := height / 2
	if skyHeight < 1 {
		skyHeight = 1
	}
	stars := make([]star, 0, starCount)
	for i := 0; i < starCount; i++ {
		stars = append(stars, star{
			x:          rng.Intn(width),
			y:          rng.Intn(skyHeight),
			size:       starMinSize + rng.Intn(starMaxSize-starMinSize+1),
			brightness: starMinBrightness + rng.Intn(starMaxBrightness-starMinBrightness+1),
		})
	}
	return stars
}

// ellipse returns the center and radius of the filled circle covering the
// inclusive pixel box [x, x+size] × [y, y+size].
func (s star) ellipse() (cx, cy, r float64) {
	r = float64(s.size+1) / 2
	return float64(s.x) + r, float64(s.y) + r, r
}

// covers reports whether the center of pixel (px, py) lies inside the star.
func (s star) covers(px, py int) bool {
	cx, cy, r := s.ellipse()
	dx := float64(px) + 0.5 - cx
	dy := float64(py) + 0.5 - cy
	return dx*dx+dy*dy <= r*r
}

// drawStars paints the stars onto img in order as solid pixels without
// antialiasing; later stars overwrite earlier ones where they overlap.
// Pixels outside img are skipped.
func drawStars(img *image.RGBA, stars []star) {
	dc := gg.NewContextForRGBA(img)
	for _, s := range stars {
		dc.SetRGB255(s.brightness, s.brightness, s.brightness)
		for py := s.y; py <= s.y+s.size; py++ {
			for px := s.x; px <= s.x+s.size; px++ {
				if s.covers(px, py) {
					dc.SetPixel(px, py)
				}
			}
		}
	}
}

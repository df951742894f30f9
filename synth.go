package main

import (
	"image"
	"log"
	"time"

	"github.com/anthonynsimon/bild/blur"
)

// synthOptions controls how the aurora is computed; it never changes the
// resulting picture beyond single-level rounding on the OpenCL path.
type synthOptions struct {
	workers   int
	useOpenCL bool
}

// aurora is the output of a synthesis run together with the star list that
// was drawn onto it.
type aurora struct {
	img   *image.RGBA
	stars []star
}

// generate runs the complete pipeline: background, aurora fill, blur, stars.
func generate(width, height int, opts synthOptions) (*aurora, error) {
	if err := validateSize(width, height); err != nil {
		return nil, err
	}
	start := time.Now()
	img := newCanvas(width, height)
	fillPass(img, opts)
	log.Printf("Aurora fill done in %v", time.Since(start).Round(time.Millisecond))

	blurStart := time.Now()
	img = blurPasses(img)
	log.Printf("Blur done in %v", time.Since(blurStart).Round(time.Millisecond))

	stars := generateStars(width, height)
	drawStars(img, stars)
	return &aurora{img: img, stars: stars}, nil
}

// fillPass fills the canvas on the OpenCL device when requested and
// available, and on CPU workers otherwise.
func fillPass(img *image.RGBA, opts synthOptions) {
	if opts.useOpenCL {
		err := fillAuroraOpenCL(img)
		if err == nil {
			return
		}
		log.Printf("OpenCL fill unavailable, using CPU workers: %v", err)
	}
	workers := opts.workers
	if workers < 1 {
		workers = defaultWorkerCount()
	}
	fillAurora(img, workers)
}

// bildRadius converts a standard deviation into the radius parameter of
// blur.Gaussian, whose kernel is exp(-x²/(4·radius)).
func bildRadius(sigma float64) float64 {
	return sigma * sigma / 2
}

// blurPasses smooths the aurora with two successive Gaussian blurs. The
// result is forced opaque again since the convolution also runs over alpha.
func blurPasses(img *image.RGBA) *image.RGBA {
	out := blur.Gaussian(img, bildRadius(blurSigmaFirst))
	out = blur.Gaussian(out, bildRadius(blurSigmaSecond))
	for i := 3; i < len(out.Pix); i += 4 {
		out.Pix[i] = 255
	}
	return out
}

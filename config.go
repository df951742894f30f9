package main

import "image/color"

// Image and pipeline constants. The aurora pattern is fully determined by
// these values plus the requested width and height.
const (
	defaultWidth  = 1920
	defaultHeight = 1080

	outputFile  = "aurora-bg.jpg"
	jpegQuality = 95

	// wave frequencies: w1 = sin(a·nx + b·ny), w2 = sin(a·nx - b·ny), w3 = cos(a·nx + b·ny)
	wave1FreqX, wave1FreqY = 3.0, 2.0
	wave2FreqX, wave2FreqY = 2.0, 3.0
	wave3FreqX, wave3FreqY = 4.0, 1.5

	wave1Weight = 0.4
	wave2Weight = 0.3
	wave3Weight = 0.3

	// verticalFalloff dims the aurora towards the bottom of the image.
	verticalFalloff = 0.7
	bandThreshold   = 0.6

	brightMultiplier = 1.5
	softMultiplier   = 1.2

	// standard deviations of the two blur passes, in pixels
	blurSigmaFirst  = 30.0
	blurSigmaSecond = 20.0

	starCount         = 150
	starSeed          = 42
	starMinSize       = 1
	starMaxSize       = 2
	starMinBrightness = 150
	starMaxBrightness = 254
)

// backgroundColor is the night sky the aurora is blended onto.
var backgroundColor = color.RGBA{10, 14, 26, 255}

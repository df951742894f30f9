package main

import "math"

// band identifies one of the aurora hue groups.
type band int

const (
	bandPurple band = iota
	bandCyan
	bandGreen
	bandPink
)

func (b band) String() string {
	switch b {
	case bandPurple:
		return "purple"
	case bandCyan:
		return "cyan"
	case bandGreen:
		return "green"
	case bandPink:
		return "pink"
	}
	return "unknown"
}

// bandStyle is the base color of a band and the multiplier applied on top of
// the pixel intensity.
type bandStyle struct {
	r, g, b    float64
	multiplier float64
}

var bandStyles = [...]bandStyle{
	bandPurple: {138, 43, 226, brightMultiplier},
	bandCyan:   {64, 224, 208, brightMultiplier},
	bandGreen:  {50, 205, 50, brightMultiplier},
	bandPink:   {255, 105, 180, softMultiplier},
}

// waveSample holds the three wave scalars of a normalized coordinate. Each
// value lies in [0, 1].
type waveSample struct {
	w1, w2, w3 float64
}

// sampleWaves evaluates the wave functions at (nx, ny).
func sampleWaves(nx, ny float64) waveSample {
	return waveSample{
		w1: math.Sin(nx*wave1FreqX+ny*wave1FreqY)*0.5 + 0.5,
		w2: math.Sin(nx*wave2FreqX-ny*wave2FreqY)*0.5 + 0.5,
		w3: math.Cos(nx*wave3FreqX+ny*wave3FreqY)*0.5 + 0.5,
	}
}

// intensity weights the waves and attenuates the result by vertical position.
func (s waveSample) intensity(ny float64) float64 {
	return (s.w1*wave1Weight + s.w2*wave2Weight + s.w3*wave3Weight) * (1 - ny*verticalFalloff)
}

// band picks the hue group; the first wave above the threshold wins.
func (s waveSample) band() band {
	switch {
	case s.w1 > bandThreshold:
		return bandPurple
	case s.w2 > bandThreshold:
		return bandCyan
	case s.w3 > bandThreshold:
		return bandGreen
	default:
		return bandPink
	}
}

// auroraColor returns the unclamped additive contribution of the aurora at
// (nx, ny). Channels are truncated towards zero.
func auroraColor(nx, ny float64) (r, g, b int) {
	s := sampleWaves(nx, ny)
	in := s.intensity(ny)
	st := bandStyles[s.band()]
	r = int(st.r * in * st.multiplier)
	g = int(st.g * in * st.multiplier)
	b = int(st.b * in * st.multiplier)
	return r, g, b
}

// addSaturate adds delta to a channel, clamping at 255.
func addSaturate(c uint8, delta int) uint8 {
	v := int(c) + delta
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return uint8(v)
}

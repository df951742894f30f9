package main

import (
	"reflect"
	"testing"
)

func TestGenerateStarsDeterministic(t *testing.T) {
	a := generateStars(100, 50)
	b := generateStars(100, 50)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("star lists differ between runs")
	}
	if len(a) != starCount {
		t.Fatalf("got %d stars, want %d", len(a), starCount)
	}
	for i, s := range a {
		if s.x < 0 || s.x >= 100 || s.y < 0 || s.y >= 25 {
			t.Fatalf("star %d at (%d,%d) outside upper half", i, s.x, s.y)
		}
		if s.size < starMinSize || s.size > starMaxSize {
			t.Fatalf("star %d size %d", i, s.size)
		}
		if s.brightness < starMinBrightness || s.brightness > starMaxBrightness {
			t.Fatalf("star %d brightness %d", i, s.brightness)
		}
	}
}

func TestGenerateStarsSinglePixel(t *testing.T) {
	for _, s := range generateStars(1, 1) {
		if s.x != 0 || s.y != 0 {
			t.Fatalf("star at (%d,%d) in 1x1 image", s.x, s.y)
		}
	}
}

func TestStarEllipse(t *testing.T) {
	cx, cy, r := star{x: 10, y: 4, size: 2}.ellipse()
	if cx != 11.5 || cy != 5.5 || r != 1.5 {
		t.Fatalf("ellipse() = (%v, %v, %v), want (11.5, 5.5, 1.5)", cx, cy, r)
	}
}

func TestDrawStars(t *testing.T) {
	tests := []struct {
		name string
		s    star
	}{
		{"2x2 dimmest", star{x: 5, y: 5, size: 1, brightness: 150}},
		{"2x2 brightest", star{x: 20, y: 3, size: 1, brightness: 254}},
		{"3x3", star{x: 10, y: 10, size: 2, brightness: 200}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := newCanvas(40, 20)
			drawStars(img, []star{tt.s})
			want := uint8(tt.s.brightness)
			for py := tt.s.y; py <= tt.s.y+tt.s.size; py++ {
				for px := tt.s.x; px <= tt.s.x+tt.s.size; px++ {
					c := img.RGBAAt(px, py)
					if c.R != want || c.G != want || c.B != want || c.A != 255 {
						t.Fatalf("pixel (%d,%d) = %v, want gray %d", px, py, c, want)
					}
				}
			}
			// neighbours just outside the bounding box stay untouched
			for _, p := range [][2]int{
				{tt.s.x - 1, tt.s.y},
				{tt.s.x + tt.s.size + 1, tt.s.y},
				{tt.s.x, tt.s.y + tt.s.size + 1},
			} {
				if got := img.RGBAAt(p[0], p[1]); got != backgroundColor {
					t.Fatalf("pixel %v = %v, want background", p, got)
				}
			}
		})
	}
}

func TestDrawStarsClipsAtEdge(t *testing.T) {
	img := newCanvas(4, 4)
	drawStars(img, []star{{x: 3, y: 3, size: 2, brightness: 180}})
	if c := img.RGBAAt(3, 3); c.R != 180 {
		t.Fatalf("corner pixel = %v, want gray 180", c)
	}
}

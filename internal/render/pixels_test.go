package render

import (
	"image/color"
	"testing"
)

func TestFillShadedRGBA(t *testing.T) {
	cells := []float64{0, 1, 2}
	buf := make([]byte, 4*len(cells))
	FillShadedRGBA(buf, cells, func(v float64) color.RGBA {
		return color.RGBA{R: uint8(v * 10), G: 1, B: 2, A: 255}
	})
	for i, v := range cells {
		base := i * 4
		if buf[base] != uint8(v*10) || buf[base+1] != 1 || buf[base+2] != 2 || buf[base+3] != 255 {
			t.Fatalf("pixel %d = %v", i, buf[base:base+4])
		}
	}
}

func TestFillGradientRGBAEndpoints(t *testing.T) {
	lo := color.RGBA{R: 0, G: 0, B: 0, A: 255}
	hi := color.RGBA{R: 200, G: 100, B: 50, A: 255}
	cells := []float64{-10, 0, 10, 20}
	buf := make([]byte, 4*len(cells))
	FillGradientRGBA(buf, cells, 0, 10, lo, hi)

	// Below the range clamps to lo, above clamps to hi.
	if buf[0] != 0 || buf[1] != 0 || buf[2] != 0 {
		t.Fatalf("clamped low pixel = %v, want lo", buf[0:4])
	}
	if buf[8] != 200 || buf[9] != 100 || buf[10] != 50 {
		t.Fatalf("max pixel = %v, want hi", buf[8:12])
	}
	if buf[12] != 200 {
		t.Fatalf("clamped high pixel = %v, want hi", buf[12:16])
	}
	for i := range cells {
		if buf[i*4+3] != 255 {
			t.Fatalf("pixel %d alpha = %d, want 255", i, buf[i*4+3])
		}
	}
}

func TestFillGradientRGBAEmptyRange(t *testing.T) {
	lo := color.RGBA{R: 9, G: 8, B: 7, A: 255}
	hi := color.RGBA{R: 100, G: 100, B: 100, A: 255}
	cells := []float64{1, 2, 3}
	buf := make([]byte, 4*len(cells))
	FillGradientRGBA(buf, cells, 5, 5, lo, hi)
	for i := range cells {
		base := i * 4
		if buf[base] != 9 || buf[base+1] != 8 || buf[base+2] != 7 {
			t.Fatalf("pixel %d = %v, want lo for empty range", i, buf[base:base+4])
		}
	}
}

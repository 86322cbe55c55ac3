package render

import "image/color"

// FillShadedRGBA converts float cell values into RGBA pixels in buf using
// the provided shading function. buf must hold 4*len(cells) bytes.
func FillShadedRGBA(buf []byte, cells []float64, shade func(float64) color.RGBA) {
	for i, v := range cells {
		c := shade(v)
		base := i * 4
		buf[base+0] = c.R
		buf[base+1] = c.G
		buf[base+2] = c.B
		buf[base+3] = c.A
	}
}

// FillGradientRGBA converts cell values into RGBA pixels by linearly blending
// between lo and hi over the [min, max] value range. When the range is empty
// the buffer is filled with lo.
func FillGradientRGBA(buf []byte, cells []float64, min, max float64, lo, hi color.RGBA) {
	span := max - min
	for i, v := range cells {
		t := 0.0
		if span > 0 {
			t = (v - min) / span
		}
		if t < 0 {
			t = 0
		}
		if t > 1 {
			t = 1
		}
		base := i * 4
		buf[base+0] = lerp8(lo.R, hi.R, t)
		buf[base+1] = lerp8(lo.G, hi.G, t)
		buf[base+2] = lerp8(lo.B, hi.B, t)
		buf[base+3] = 255
	}
}

func lerp8(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

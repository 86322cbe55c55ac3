package terrain

import "image/color"

// Layer identifies one of the displayable map layers.
type Layer uint8

const (
	LayerElevation Layer = iota
	LayerWater
	LayerTemperature
	LayerLight
)

// Layers returns the displayable layers in cycling order.
func Layers() []Layer {
	return []Layer{LayerElevation, LayerWater, LayerTemperature, LayerLight}
}

// String returns the lowercase layer name.
func (l Layer) String() string {
	switch l {
	case LayerElevation:
		return "elevation"
	case LayerWater:
		return "water"
	case LayerTemperature:
		return "temperature"
	case LayerLight:
		return "light"
	default:
		return "unknown"
	}
}

// ElevationColor shades an elevation value: depths in blue, lowland in green
// shading through brown toward white peaks. Zero is the calibrated sea
// boundary.
func ElevationColor(v, minAltitude, maxAltitude float64) color.RGBA {
	if v <= 0 {
		deep := color.NRGBA{R: 8, G: 28, B: 90, A: 255}
		shallow := color.NRGBA{R: 60, G: 120, B: 200, A: 255}
		return toRGBA(blendColors(shallow, deep, unitClamp(v/minAltitude)))
	}
	low := color.NRGBA{R: 60, G: 130, B: 60, A: 255}
	high := color.NRGBA{R: 140, G: 110, B: 80, A: 255}
	peak := color.NRGBA{R: 240, G: 240, B: 245, A: 255}
	t := unitClamp(v / maxAltitude)
	if t < 0.5 {
		return toRGBA(blendColors(low, high, t*2))
	}
	return toRGBA(blendColors(high, peak, (t-0.5)*2))
}

// WaterColor shades a water presence percentage from dry sand to deep blue.
func WaterColor(pct float64) color.RGBA {
	dry := color.NRGBA{R: 210, G: 190, B: 140, A: 255}
	wet := color.NRGBA{R: 20, G: 60, B: 180, A: 255}
	return toRGBA(blendColors(dry, wet, unitClamp(pct/100)))
}

// TemperatureColor shades a temperature in a cold-to-hot ramp spanning
// -30..45 degrees.
func TemperatureColor(t float64) color.RGBA {
	cold := color.NRGBA{R: 40, G: 70, B: 200, A: 255}
	mild := color.NRGBA{R: 235, G: 235, B: 225, A: 255}
	hot := color.NRGBA{R: 200, G: 40, B: 30, A: 255}
	u := unitClamp((t + 30) / 75)
	if u < 0.5 {
		return toRGBA(blendColors(cold, mild, u*2))
	}
	return toRGBA(blendColors(mild, hot, (u-0.5)*2))
}

// LightColor shades daylight hours as a greyscale over a 24 hour day.
func LightColor(hours float64) color.RGBA {
	v := uint8(255 * unitClamp(hours/24))
	return color.RGBA{R: v, G: v, B: v, A: 255}
}

func unitClamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func toRGBA(c color.NRGBA) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func blendColors(a, b color.NRGBA, t float64) color.NRGBA {
	t = unitClamp(t)
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.NRGBA{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: 255}
}

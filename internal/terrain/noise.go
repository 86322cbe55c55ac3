package terrain

import (
	"github.com/aquilax/go-perlin"

	"worldmap/pkg/core"
)

// Offsets are drawn from [0, noiseOffsetRange) so that fields built for
// different purposes sample decorrelated regions of the noise domain.
const noiseOffsetRange = 10000

// Field samples band-limited gradient noise over grid coordinates. Values are
// roughly in [-1, 1] and vary smoothly between neighboring cells.
type Field struct {
	noise  *perlin.Perlin
	scale  float64
	offRow float64
	offCol float64
}

// NewField builds a noise field from the given parameters. The base offsets
// are drawn once from rng at construction time; sampling afterwards is pure.
func NewField(p NoiseParams, seed int64, rng *core.RNG) *Field {
	// go-perlin weights octave i by alpha^-i and scales its frequency by
	// beta^i, so persistence maps to 1/alpha and lacunarity to beta.
	return &Field{
		noise:  perlin.NewPerlin(1/p.Persistence, p.Lacunarity, int32(p.Octaves), seed),
		scale:  p.Scale,
		offRow: float64(rng.Offset(noiseOffsetRange)),
		offCol: float64(rng.Offset(noiseOffsetRange)),
	}
}

// Sample returns the noise value for cell (row, col).
func (f *Field) Sample(row, col int) float64 {
	return f.noise.Noise2D((float64(row)+f.offRow)*f.scale, (float64(col)+f.offCol)*f.scale)
}

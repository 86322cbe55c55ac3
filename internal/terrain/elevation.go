package terrain

import (
	"math"
	"slices"

	"worldmap/internal/core"
)

// generateElevation fills the base altitude grid from the elevation noise
// field, calibrates sea level as the configured percentile of the raw
// samples, and shifts the grid so that percentile sits at zero. It returns
// the shifted grid together with the raw sea level.
func generateElevation(cfg Config, field *Field) (*core.FloatGrid, float64) {
	p := cfg.Params
	grid := core.NewFloatGrid(cfg.Width, cfg.Height)
	cells := grid.Cells()
	span := p.MaxAltitude - p.MinAltitude

	forEachRow(cfg.Height, cfg.Workers, func(row int) {
		base := row * cfg.Width
		for col := 0; col < cfg.Width; col++ {
			n := field.Sample(row, col)
			cells[base+col] = p.MinAltitude + span*(n+1)/2
		}
	})

	seaLevel := percentile(cells, p.SeaFraction)
	for i := range cells {
		cells[i] -= seaLevel
	}
	return grid, seaLevel
}

// percentile returns the value at fraction p of the sample distribution,
// interpolating linearly between adjacent order statistics.
func percentile(samples []float64, p float64) float64 {
	sorted := slices.Clone(samples)
	slices.Sort(sorted)
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}
	rank := p * float64(n-1)
	lo := int(math.Floor(rank))
	if lo >= n-1 {
		return sorted[n-1]
	}
	frac := rank - float64(lo)
	return sorted[lo]*(1-frac) + sorted[lo+1]*frac
}

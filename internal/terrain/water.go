package terrain

import (
	"worldmap/internal/core"
	pkgcore "worldmap/pkg/core"
)

// Water presence percentages assigned by the classification rules.
const (
	waterOpenSea   = 100
	waterNearShore = 80
	waterSwamp     = 95

	valleyWaterMin = 15
	valleyWaterMax = 25
	desertWaterMin = 5
	desertWaterMax = 15
)

// Elevation bands above sea level, in meters.
const (
	shoreBand       = 50
	swampBand       = 100
	desertElevation = 2300
)

// sampleField evaluates a noise field over the full grid into a row-major
// slice.
func sampleField(field *Field, cfg Config) []float64 {
	out := make([]float64, cfg.Width*cfg.Height)
	forEachRow(cfg.Height, cfg.Workers, func(row int) {
		base := row * cfg.Width
		for col := 0; col < cfg.Width; col++ {
			out[base+col] = field.Sample(row, col)
		}
	})
	return out
}

// generateWaterPresence classifies every cell into a water presence
// percentage. The rules are layered: each pass unconditionally overwrites the
// cells it matches, so a later rule wins wherever two apply. The valley and
// desert overlays draw their values from rng per qualifying cell, in
// row-major order, which keeps the output deterministic for a fixed seed.
func generateWaterPresence(elevation *core.FloatGrid, seaLevel float64, cfg Config, lakeMap, riverMap, desertMap []float64, rng *pkgcore.RNG) *core.FloatGrid {
	p := cfg.Params
	water := core.NewFloatGrid(cfg.Width, cfg.Height)
	cells := water.Cells()
	elev := elevation.Cells()

	// Altitude bands: open sea, near shore, swamp.
	for i, e := range elev {
		switch {
		case e <= seaLevel:
			cells[i] = waterOpenSea
		case e <= seaLevel+shoreBand:
			cells[i] = waterNearShore
		case e <= seaLevel+swampBand:
			cells[i] = waterSwamp
		}
	}

	// River and lake noise override the low-altitude bands.
	for i, e := range elev {
		if riverMap[i] > p.RiverThreshold && e > seaLevel && e <= seaLevel+swampBand {
			cells[i] = waterNearShore
		}
	}
	for i, e := range elev {
		if lakeMap[i] > p.LakeThreshold && e > seaLevel && e <= seaLevel+swampBand {
			cells[i] = waterOpenSea
		}
	}

	// Stochastic valley overlay, then the desert overlay on top of it.
	for i, e := range elev {
		if e > seaLevel && desertMap[i] <= p.ValleyThreshold {
			cells[i] = float64(rng.IntBetween(valleyWaterMin, valleyWaterMax))
		}
	}
	for i, e := range elev {
		if e > seaLevel+desertElevation && desertMap[i] > p.ValleyThreshold*0.8 {
			cells[i] = float64(rng.IntBetween(desertWaterMin, desertWaterMax))
		}
	}

	return water
}

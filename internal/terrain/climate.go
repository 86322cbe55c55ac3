package terrain

import (
	"math"

	"worldmap/internal/core"
)

// generateTemperature derives one temperature grid per season. Each cell is
// the linear latitude interpolation between the configured north and south
// temperatures, plus the season shift, minus the altitude falloff times the
// cell elevation. Values are rounded to one decimal.
func generateTemperature(elevation *core.FloatGrid, cfg Config) map[Season]*core.FloatGrid {
	p := cfg.Params
	maps := make(map[Season]*core.FloatGrid, len(Seasons()))
	for _, season := range Seasons() {
		shift := p.SeasonShift[season]
		grid := core.NewFloatGrid(cfg.Width, cfg.Height)
		cells := grid.Cells()
		elev := elevation.Cells()
		forEachRow(cfg.Height, cfg.Workers, func(row int) {
			lat := latBase(p, row, cfg.Height)
			base := row * cfg.Width
			for col := 0; col < cfg.Width; col++ {
				i := base + col
				cells[i] = roundTenth(lat + shift - p.AltitudeFalloff*elev[i])
			}
		})
		maps[season] = grid
	}
	return maps
}

// generateLight builds one daylight grid per season. Daylight is a flat
// per-season constant: Params.LatitudeFactor is accepted but does not vary
// the result.
func generateLight(cfg Config) map[Season]*core.FloatGrid {
	maps := make(map[Season]*core.FloatGrid, len(Seasons()))
	for _, season := range Seasons() {
		grid := core.NewFloatGrid(cfg.Width, cfg.Height)
		grid.Fill(cfg.Params.DaylightHours[season])
		maps[season] = grid
	}
	return maps
}

// latBase interpolates the latitude temperature for a row, with row 0 at the
// configured north temperature and the last row at the south temperature.
func latBase(p Params, row, height int) float64 {
	if height <= 1 {
		return p.NorthTemperature
	}
	t := float64(row) / float64(height-1)
	return p.NorthTemperature + (p.SouthTemperature-p.NorthTemperature)*t
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

package terrain

import (
	"fmt"
	"time"

	"worldmap/internal/core"
	pkgcore "worldmap/pkg/core"
)

// Map bundles every generated layer of one world map. It is immutable after
// Generate returns and safe for concurrent readers.
type Map struct {
	size     core.Size
	seed     int64
	seaLevel float64

	elevation   *core.FloatGrid
	water       *core.FloatGrid
	temperature map[Season]*core.FloatGrid
	light       map[Season]*core.FloatGrid
}

// PointInfo collects every layer value for one cell.
type PointInfo struct {
	Elevation     float64
	WaterPresence float64
	Temperature   map[Season]float64
	Light         map[Season]float64
}

// CellRecord is one row of the full-grid export, identifying a cell and all
// of its layer values.
type CellRecord struct {
	Row, Col      int
	Elevation     float64
	WaterPresence float64
	Temperature   map[Season]float64
	Light         map[Season]float64
}

// Generate derives a complete map from the configuration. All layers share
// the configured dimensions; the elevation grid is calibrated so the
// configured fraction of cells sits at or below zero. Either a fully
// populated map is returned or an error, never a partial one.
func Generate(cfg Config) (*Map, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, cfg.Width, cfg.Height)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := pkgcore.NewRNG(seed)

	elevField := NewField(cfg.Params.Elevation, seed, rng)
	elevation, seaLevel := generateElevation(cfg, elevField)

	temperature := generateTemperature(elevation, cfg)
	light := generateLight(cfg)

	// Lake and river fields get distinct base seeds on top of their own
	// offsets, matching how multi-field noise generators decorrelate.
	lakeField := NewField(cfg.Params.Lake, seed+1, rng)
	riverField := NewField(cfg.Params.River, seed+2, rng)
	lakeMap := sampleField(lakeField, cfg)
	riverMap := sampleField(riverField, cfg)

	desertMap := make([]float64, cfg.Width*cfg.Height)
	pkgcore.FillUnit(rng, desertMap)

	// The stored elevation grid is already shifted so the calibrated sea
	// boundary is at zero.
	water := generateWaterPresence(elevation, 0, cfg, lakeMap, riverMap, desertMap, rng)

	return &Map{
		size:        core.Size{W: cfg.Width, H: cfg.Height},
		seed:        seed,
		seaLevel:    seaLevel,
		elevation:   elevation,
		water:       water,
		temperature: temperature,
		light:       light,
	}, nil
}

// Size reports the grid dimensions.
func (m *Map) Size() core.Size { return m.size }

// Seed returns the effective seed of the run, resolved when the config seed
// was zero.
func (m *Map) Seed() int64 { return m.seed }

// SeaLevel returns the raw altitude that was calibrated to zero.
func (m *Map) SeaLevel() float64 { return m.seaLevel }

// Elevation exposes the calibrated elevation grid.
func (m *Map) Elevation() *core.FloatGrid { return m.elevation }

// WaterPresence exposes the water presence grid, values in [0, 100].
func (m *Map) WaterPresence() *core.FloatGrid { return m.water }

// Temperature exposes the temperature grid for a season.
func (m *Map) Temperature(s Season) *core.FloatGrid { return m.temperature[s] }

// Light exposes the daylight grid for a season.
func (m *Map) Light(s Season) *core.FloatGrid { return m.light[s] }

// PointInfo returns every layer value at (x, y), where x is the column and y
// the row.
func (m *Map) PointInfo(x, y int) (PointInfo, error) {
	if !m.elevation.InBounds(y, x) {
		return PointInfo{}, fmt.Errorf("%w: (%d, %d) outside %dx%d", ErrOutOfBounds, x, y, m.size.W, m.size.H)
	}
	info := PointInfo{
		Elevation:     m.elevation.At(y, x),
		WaterPresence: m.water.At(y, x),
		Temperature:   make(map[Season]float64, len(Seasons())),
		Light:         make(map[Season]float64, len(Seasons())),
	}
	for _, s := range Seasons() {
		info.Temperature[s] = m.temperature[s].At(y, x)
		info.Light[s] = m.light[s].At(y, x)
	}
	return info, nil
}

// Export returns one record per cell in row-major order, exactly
// width*height records. Formatting is left to the caller.
func (m *Map) Export() []CellRecord {
	records := make([]CellRecord, 0, m.size.W*m.size.H)
	for row := 0; row < m.size.H; row++ {
		for col := 0; col < m.size.W; col++ {
			rec := CellRecord{
				Row:           row,
				Col:           col,
				Elevation:     m.elevation.At(row, col),
				WaterPresence: m.water.At(row, col),
				Temperature:   make(map[Season]float64, len(Seasons())),
				Light:         make(map[Season]float64, len(Seasons())),
			}
			for _, s := range Seasons() {
				rec.Temperature[s] = m.temperature[s].At(row, col)
				rec.Light[s] = m.light[s].At(row, col)
			}
			records = append(records, rec)
		}
	}
	return records
}

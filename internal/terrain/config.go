package terrain

import (
	"fmt"
	"strconv"
)

// NoiseParams describes one band-limited gradient noise field.
type NoiseParams struct {
	Scale       float64
	Octaves     int
	Persistence float64
	Lacunarity  float64
}

// Params holds the tunable values that shape a generated map.
type Params struct {
	// Altitude range the raw noise is remapped to, in meters.
	MinAltitude float64
	MaxAltitude float64

	// Fraction of cells at or below sea level after calibration, in [0, 1].
	SeaFraction float64

	// Latitude temperature endpoints: row 0 is the northernmost row.
	NorthTemperature float64
	SouthTemperature float64

	// Degrees lost per meter of altitude.
	AltitudeFalloff float64

	// Accepted for the light layer but not consumed: daylight is a flat
	// per-season constant.
	LatitudeFactor float64

	SeasonShift   map[Season]float64
	DaylightHours map[Season]float64

	Elevation NoiseParams
	Lake      NoiseParams
	River     NoiseParams

	RiverThreshold  float64
	LakeThreshold   float64
	ValleyThreshold float64
}

// Config controls a single map generation run.
type Config struct {
	Width  int
	Height int

	// Seed drives every random draw of the run. Zero means unseeded: a
	// time-derived seed is used and the map is not reproducible across runs.
	Seed int64

	// Workers bounds the per-row fan-out of the noise fills. Zero or
	// negative means one worker per CPU.
	Workers int

	Params Params
}

// DefaultConfig returns the standard Europe-like configuration.
func DefaultConfig() Config {
	return Config{
		Width:  100,
		Height: 100,
		Seed:   1337,
		Params: Params{
			MinAltitude:      -1000,
			MaxAltitude:      5000,
			SeaFraction:      0.4,
			NorthTemperature: -10,
			SouthTemperature: 30,
			AltitudeFalloff:  0.005,
			LatitudeFactor:   0.5,
			SeasonShift: map[Season]float64{
				SeasonWinter: -15,
				SeasonSpring: 0,
				SeasonSummer: 15,
				SeasonFall:   0,
			},
			DaylightHours: map[Season]float64{
				SeasonWinter: 8,
				SeasonSpring: 12,
				SeasonSummer: 16,
				SeasonFall:   12,
			},
			Elevation: NoiseParams{Scale: 0.03, Octaves: 5, Persistence: 0.6, Lacunarity: 2.1},
			Lake:      NoiseParams{Scale: 0.05, Octaves: 6, Persistence: 0.5, Lacunarity: 2.0},
			River:     NoiseParams{Scale: 0.02, Octaves: 6, Persistence: 0.5, Lacunarity: 2.0},

			RiverThreshold:  0.15,
			LakeThreshold:   0.25,
			ValleyThreshold: 0.9,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Workers = parsed
		}
	}
	if v, ok := cfg["min_altitude"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.MinAltitude = parsed
		}
	}
	if v, ok := cfg["max_altitude"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.MaxAltitude = parsed
		}
	}
	if v, ok := cfg["sea_fraction"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.SeaFraction = parsed
		}
	}
	if v, ok := cfg["north_temperature"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.NorthTemperature = parsed
		}
	}
	if v, ok := cfg["south_temperature"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.SouthTemperature = parsed
		}
	}
	if v, ok := cfg["altitude_falloff"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.AltitudeFalloff = parsed
		}
	}
	if v, ok := cfg["elevation_scale"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.Elevation.Scale = parsed
		}
	}
	if v, ok := cfg["elevation_octaves"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Params.Elevation.Octaves = parsed
		}
	}
	if v, ok := cfg["elevation_persistence"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.Elevation.Persistence = parsed
		}
	}
	if v, ok := cfg["elevation_lacunarity"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.Elevation.Lacunarity = parsed
		}
	}
	if v, ok := cfg["lake_scale"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.Lake.Scale = parsed
		}
	}
	if v, ok := cfg["river_scale"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.River.Scale = parsed
		}
	}
	if v, ok := cfg["river_threshold"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.RiverThreshold = parsed
		}
	}
	if v, ok := cfg["lake_threshold"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.LakeThreshold = parsed
		}
	}
	if v, ok := cfg["valley_threshold"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.ValleyThreshold = parsed
		}
	}
	return c
}

// Validate reports the first configuration value outside its allowed range.
func (c Config) Validate() error {
	p := c.Params
	if p.SeaFraction < 0 || p.SeaFraction > 1 {
		return fmt.Errorf("%w: sea fraction %v outside [0, 1]", ErrInvalidConfiguration, p.SeaFraction)
	}
	if p.MinAltitude >= p.MaxAltitude {
		return fmt.Errorf("%w: min altitude %v >= max altitude %v", ErrInvalidConfiguration, p.MinAltitude, p.MaxAltitude)
	}
	for _, np := range []struct {
		name string
		p    NoiseParams
	}{
		{"elevation", p.Elevation},
		{"lake", p.Lake},
		{"river", p.River},
	} {
		if np.p.Scale <= 0 {
			return fmt.Errorf("%w: %s noise scale %v must be positive", ErrInvalidConfiguration, np.name, np.p.Scale)
		}
		if np.p.Octaves < 1 {
			return fmt.Errorf("%w: %s noise octaves %d must be at least 1", ErrInvalidConfiguration, np.name, np.p.Octaves)
		}
		if np.p.Persistence <= 0 {
			return fmt.Errorf("%w: %s noise persistence %v must be positive", ErrInvalidConfiguration, np.name, np.p.Persistence)
		}
		if np.p.Lacunarity <= 0 {
			return fmt.Errorf("%w: %s noise lacunarity %v must be positive", ErrInvalidConfiguration, np.name, np.p.Lacunarity)
		}
	}
	for _, s := range Seasons() {
		if _, ok := p.SeasonShift[s]; !ok {
			return fmt.Errorf("%w: missing season shift for %s", ErrInvalidConfiguration, s)
		}
		if _, ok := p.DaylightHours[s]; !ok {
			return fmt.Errorf("%w: missing daylight hours for %s", ErrInvalidConfiguration, s)
		}
	}
	return nil
}

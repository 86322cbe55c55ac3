package terrain

import (
	"math"
	"testing"
)

func TestPercentileOrderStatistics(t *testing.T) {
	cases := []struct {
		name    string
		samples []float64
		p       float64
		want    float64
	}{
		{"median odd", []float64{1, 2, 3, 4, 5}, 0.5, 3},
		{"quarter", []float64{1, 2, 3, 4, 5}, 0.25, 2},
		{"interpolated", []float64{1, 2, 3, 4, 5}, 0.4, 2.6},
		{"min", []float64{1, 2, 3, 4, 5}, 0, 1},
		{"max", []float64{1, 2, 3, 4, 5}, 1, 5},
		{"unsorted input", []float64{5, 1, 4, 2, 3}, 0.5, 3},
		{"single sample", []float64{7}, 0.3, 7},
	}
	for _, tc := range cases {
		got := percentile(tc.samples, tc.p)
		if math.Abs(got-tc.want) > 1e-12 {
			t.Fatalf("%s: percentile(%v, %v) = %v, want %v", tc.name, tc.samples, tc.p, got, tc.want)
		}
	}
}

func TestPercentileLeavesInputUntouched(t *testing.T) {
	samples := []float64{5, 1, 4, 2, 3}
	percentile(samples, 0.5)
	want := []float64{5, 1, 4, 2, 3}
	for i := range samples {
		if samples[i] != want[i] {
			t.Fatalf("percentile reordered its input: %v", samples)
		}
	}
}

func TestGenerateElevationCalibration(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 24
	cfg.Height = 16
	cfg.Seed = 7
	cfg.Workers = 1

	m, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	cells := m.Elevation().Cells()
	if len(cells) != cfg.Width*cfg.Height {
		t.Fatalf("elevation has %d cells, want %d", len(cells), cfg.Width*cfg.Height)
	}

	// After subtracting the calibrated sea level, the configured fraction of
	// cells must sit at or below zero, within one cell.
	below := 0
	for _, v := range cells {
		if v <= 0 {
			below++
		}
	}
	want := cfg.Params.SeaFraction * float64(len(cells))
	if math.Abs(float64(below)-want) > 1.5 {
		t.Fatalf("%d of %d cells at or below sea level, want about %.0f", below, len(cells), want)
	}

	// Every value stays inside the shifted altitude range.
	lo := cfg.Params.MinAltitude - m.SeaLevel()
	hi := cfg.Params.MaxAltitude - m.SeaLevel()
	for i, v := range cells {
		if v < lo || v > hi {
			t.Fatalf("cell %d elevation %v outside [%v, %v]", i, v, lo, hi)
		}
	}
}

func TestGenerateElevationSeaLevelInRange(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 20
	cfg.Height = 20
	cfg.Seed = 3

	m, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if m.SeaLevel() < cfg.Params.MinAltitude || m.SeaLevel() > cfg.Params.MaxAltitude {
		t.Fatalf("sea level %v outside altitude range [%v, %v]",
			m.SeaLevel(), cfg.Params.MinAltitude, cfg.Params.MaxAltitude)
	}
}

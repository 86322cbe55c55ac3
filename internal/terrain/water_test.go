package terrain

import (
	"testing"

	"worldmap/internal/core"
	pkgcore "worldmap/pkg/core"
)

// waterFixture classifies a single-row elevation profile with fully
// controlled noise and desert inputs.
func waterFixture(t *testing.T, elevations, lake, river, desert []float64) []float64 {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Width = len(elevations)
	cfg.Height = 1
	cfg.Workers = 1

	elev := core.NewFloatGrid(cfg.Width, 1)
	copy(elev.Cells(), elevations)

	grid := generateWaterPresence(elev, 0, cfg, lake, river, desert, pkgcore.NewRNG(1))
	return grid.Cells()
}

func repeat(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func TestWaterAltitudeBands(t *testing.T) {
	elev := []float64{-400, 0, 25, 50, 75, 100, 150}
	n := len(elev)
	// Desert values above the valley threshold keep the stochastic overlays
	// out of the way.
	got := waterFixture(t, elev, repeat(-1, n), repeat(-1, n), repeat(0.95, n))

	want := []float64{100, 100, 80, 80, 95, 95, 0}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("cell %d (elevation %v): water %v, want %v", i, elev[i], got[i], want[i])
		}
	}
}

func TestWaterRiverOverridesBands(t *testing.T) {
	elev := []float64{25, 75, 150}
	river := []float64{0.2, 0.2, 0.2}
	got := waterFixture(t, elev, repeat(-1, 3), river, repeat(0.95, 3))

	// Swamp band becomes river-influenced; above the band the river signal is
	// ignored.
	want := []float64{80, 80, 0}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("cell %d: water %v, want %v", i, got[i], want[i])
		}
	}
}

func TestWaterLakeOverridesRiver(t *testing.T) {
	elev := []float64{75}
	got := waterFixture(t, elev, []float64{0.3}, []float64{0.3}, []float64{0.95})
	if got[0] != 100 {
		t.Fatalf("lake cell got water %v, want 100", got[0])
	}
}

func TestWaterThresholdsAreExclusive(t *testing.T) {
	elev := []float64{75, 75}
	// Values exactly at a threshold must not trigger the rule.
	got := waterFixture(t, elev, []float64{0.25, -1}, []float64{-1, 0.15}, repeat(0.95, 2))
	for i := range got {
		if got[i] != 95 {
			t.Fatalf("cell %d at exact threshold got water %v, want untouched 95", i, got[i])
		}
	}
}

func TestWaterValleyDraw(t *testing.T) {
	elev := repeat(500, 16)
	got := waterFixture(t, elev, repeat(-1, 16), repeat(-1, 16), repeat(0.5, 16))
	for i, v := range got {
		if v < valleyWaterMin || v > valleyWaterMax {
			t.Fatalf("valley cell %d got water %v, want within [%d, %d]", i, v, valleyWaterMin, valleyWaterMax)
		}
		if v != float64(int(v)) {
			t.Fatalf("valley cell %d got non-integral draw %v", i, v)
		}
	}
}

func TestWaterDesertBeatsValley(t *testing.T) {
	// Both overlays match: high altitude and a desert value inside the
	// overlap (above 0.72, below 0.9). The desert draw must win.
	elev := repeat(2400, 16)
	got := waterFixture(t, elev, repeat(-1, 16), repeat(-1, 16), repeat(0.85, 16))
	for i, v := range got {
		if v < desertWaterMin || v > desertWaterMax {
			t.Fatalf("desert cell %d got water %v, want within [%d, %d]", i, v, desertWaterMin, desertWaterMax)
		}
	}
}

func TestWaterDesertWithoutValley(t *testing.T) {
	elev := repeat(2400, 8)
	got := waterFixture(t, elev, repeat(-1, 8), repeat(-1, 8), repeat(0.95, 8))
	for i, v := range got {
		if v < desertWaterMin || v > desertWaterMax {
			t.Fatalf("desert cell %d got water %v, want within [%d, %d]", i, v, desertWaterMin, desertWaterMax)
		}
	}
}

func TestWaterSeaCellsNeverOverwritten(t *testing.T) {
	elev := repeat(-50, 8)
	// Desert values that would qualify land cells for the valley overlay.
	got := waterFixture(t, elev, repeat(0.9, 8), repeat(0.9, 8), repeat(0.1, 8))
	for i, v := range got {
		if v != 100 {
			t.Fatalf("sea cell %d got water %v, want 100", i, v)
		}
	}
}

func TestWaterPresenceRangeOnGeneratedMap(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 40
	cfg.Height = 30
	cfg.Seed = 21

	m, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for i, v := range m.WaterPresence().Cells() {
		if v < 0 || v > 100 {
			t.Fatalf("water presence cell %d = %v outside [0, 100]", i, v)
		}
	}
}

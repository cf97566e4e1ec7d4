package gamemath

import "testing"

func TestWrapPhase(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
		divisor  float64
		width    int
		want     int
	}{
		{"No scroll", 0, 1, 1612, 0},
		{"Within first tile", 100.7, 1, 1612, 100},
		{"Wraps past width", 1700, 1, 1612, 88},
		{"Exactly one width", 1612, 1, 1612, 0},
		{"Parallax divisor", 5123, 5, 1024, 0},
		{"Parallax truncates", 5129, 5, 1024, 1},
		{"Negative distance", -10, 1, 1612, 1602},
		{"Negative parallax", -26, 5, 1024, 1019},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WrapPhase(tt.distance, tt.divisor, tt.width); got != tt.want {
				t.Errorf("WrapPhase(%v, %v, %d) = %d, want %d", tt.distance, tt.divisor, tt.width, got, tt.want)
			}
		})
	}
}

func TestWrapPhaseStaysInRange(t *testing.T) {
	const width = 1024
	for d := -5000.0; d <= 5000.0; d += 37.3 {
		for _, div := range []float64{1, 5} {
			p := WrapPhase(d, div, width)
			if p < 0 || p >= width {
				t.Fatalf("WrapPhase(%v, %v) = %d, outside [0, %d)", d, div, p, width)
			}
		}
	}
}

func TestTileOffsetsCoverTile(t *testing.T) {
	const width = 1024
	for phase := 0; phase < width; phase += 97 {
		first, second := TileOffsets(phase, width)
		if first > 0 {
			t.Errorf("phase %d: first tile starts at %d, leaves a gap at 0", phase, first)
		}
		if second != first+width {
			t.Errorf("phase %d: second tile at %d, want %d", phase, second, first+width)
		}
		if second+width < width {
			t.Errorf("phase %d: tiles end at %d, short of %d", phase, second+width, width)
		}
	}
}

package gamemath

// WrapPhase returns how far a tile of the given width has scrolled, in
// [0, width). distance is divided by divisor and truncated toward zero before
// wrapping, so negative distances wrap the same way positive ones do.
func WrapPhase(distance, divisor float64, width int) int {
	if width <= 0 {
		return 0
	}
	if divisor == 0 {
		divisor = 1
	}
	p := Truncate(distance/divisor) % width
	if p < 0 {
		p += width
	}
	return p
}

// TileOffsets returns the x of the two copies of a tile scrolled by phase.
// Together they always cover [0, width].
func TileOffsets(phase, width int) (first, second int) {
	return -phase, width - phase
}

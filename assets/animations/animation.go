package animations

// Animation is a looping cursor over a strip of cells that advances with
// distance travelled instead of with ticks.
type Animation struct {
	First     int
	Last      int
	Step      int     // how many indices do we move per advance
	Threshold float64 // distance needed before the next cell
	frame     int
	Looped    bool
}

// Advance moves to the next cell when distance has reached the threshold and
// reports whether it did. At most one step is taken per call.
func (a *Animation) Advance(distance float64) bool {
	if distance < a.Threshold {
		return false
	}
	a.frame += a.Step
	if a.frame > a.Last {
		a.Looped = true
		// loop back to the beginning
		a.frame = a.First
	}
	return true
}

func (a *Animation) Frame() int {
	return a.frame
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.Looped = false
}

func NewAnimation(first, last, step int, threshold float64) *Animation {
	return &Animation{
		First:     first,
		Last:      last,
		Step:      step,
		Threshold: threshold,
		frame:     first,
	}
}

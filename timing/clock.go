// Package timing paces the frame loop to a fixed target frame rate.
package timing

import (
	"math"
	"time"
)

// Clock is the time source the frame clock reads and blocks on.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// SystemClock is the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

func (SystemClock) Sleep(d time.Duration) { time.Sleep(d) }

// FrameBudget returns the per-frame duration for fps, rounded to whole
// milliseconds. 60 fps gives 17ms.
func FrameBudget(fps int) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Duration(math.Round(1000/float64(fps))) * time.Millisecond
}

// FrameClock measures one tick and sleeps away whatever is left of its budget.
// It never catches up on late frames and never skips any.
type FrameClock struct {
	clock   Clock
	budget  time.Duration
	start   time.Time
	end     time.Time
	elapsed time.Duration
	started bool
}

func NewFrameClock(clock Clock, fps int) *FrameClock {
	return &FrameClock{
		clock:  clock,
		budget: FrameBudget(fps),
	}
}

// Start records the beginning of a tick.
func (f *FrameClock) Start() {
	f.start = f.clock.Now()
	f.started = true
}

// WaitForFrameBudget blocks for the remainder of the budget since Start.
// It returns how long it slept.
func (f *FrameClock) WaitForFrameBudget() time.Duration {
	if !f.started {
		return 0
	}
	f.end = f.clock.Now()
	f.elapsed = f.end.Sub(f.start)
	if f.elapsed >= f.budget {
		return 0
	}
	remaining := f.budget - f.elapsed
	f.clock.Sleep(remaining)
	return remaining
}

// Budget is the target frame duration.
func (f *FrameClock) Budget() time.Duration { return f.budget }

// Elapsed is the work time measured by the last WaitForFrameBudget.
func (f *FrameClock) Elapsed() time.Duration { return f.elapsed }

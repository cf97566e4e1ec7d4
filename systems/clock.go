package systems

import (
	"time"

	"github.com/automoto/parallax-runner/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock marks the start of a tick. Must run first.
func UpdateClock(ecs *ecs.ECS) {
	entry, ok := components.FrameClock.First(ecs.World)
	if !ok {
		return
	}
	components.FrameClock.Get(entry).Start()
}

// WaitForFrameBudget sleeps off whatever is left of the previous tick's
// budget and returns how long it slept.
func WaitForFrameBudget(ecs *ecs.ECS) time.Duration {
	entry, ok := components.FrameClock.First(ecs.World)
	if !ok {
		return 0
	}
	return components.FrameClock.Get(entry).WaitForFrameBudget()
}

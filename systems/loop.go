package systems

import (
	"log"

	"github.com/automoto/parallax-runner/components"
	cfg "github.com/automoto/parallax-runner/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLoop counts ticks and stops the loop on a quit request. The tick
// that observes the request still completes and is still rendered.
func UpdateLoop(ecs *ecs.ECS) {
	loop := GetOrCreateLoop(ecs)
	loop.Ticks++

	if loop.State == components.LoopStopped {
		return
	}

	input := getOrCreateInput(ecs)
	switch {
	case input.WindowClosing:
		loop.State = components.LoopStopped
		log.Println("Window close requested.")
	case GetAction(input, cfg.ActionQuit).Pressed:
		loop.State = components.LoopStopped
		log.Println("Quit requested.")
	}
}

// GetOrCreateLoop returns the singleton Loop component, creating if needed
func GetOrCreateLoop(ecs *ecs.ECS) *components.LoopData {
	entry, ok := components.Loop.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Loop))
	}
	return components.Loop.Get(entry)
}

func IsStopped(ecs *ecs.ECS) bool {
	return GetOrCreateLoop(ecs).State == components.LoopStopped
}

package factory

import (
	"github.com/automoto/parallax-runner/archetypes"
	"github.com/automoto/parallax-runner/components"
	cfg "github.com/automoto/parallax-runner/config"
	"github.com/automoto/parallax-runner/timing"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateFrameClock(ecs *ecs.ECS, clock timing.Clock) *donburi.Entry {
	entry := archetypes.FrameClock.Spawn(ecs)
	components.FrameClock.SetValue(entry, components.FrameClockData{
		FrameClock: timing.NewFrameClock(clock, cfg.C.TargetFPS),
	})
	return entry
}

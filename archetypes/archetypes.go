package archetypes

import (
	"github.com/automoto/parallax-runner/components"
	cfg "github.com/automoto/parallax-runner/config"
	"github.com/automoto/parallax-runner/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Sprite,
	)
	Background = newArchetype(
		tags.Background,
		components.ScrollLayer,
	)
	Ground = newArchetype(
		tags.Ground,
		components.ScrollLayer,
	)
	FrameClock = newArchetype(
		components.FrameClock,
	)
	Hint = newArchetype(
		components.Hint,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}

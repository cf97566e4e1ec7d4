package systems

import (
	"github.com/automoto/parallax-runner/components"
	"github.com/automoto/parallax-runner/gamemath"
	"github.com/automoto/parallax-runner/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateScroll derives each layer's phase from the player's world distance.
func UpdateScroll(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	distance := components.Player.Get(playerEntry).WorldDistance

	components.ScrollLayer.Each(ecs.World, func(e *donburi.Entry) {
		layer := components.ScrollLayer.Get(e)
		layer.Phase = gamemath.WrapPhase(distance, layer.Divisor, layer.TileWidth())
	})
}

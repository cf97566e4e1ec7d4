package systems

import (
	"github.com/automoto/parallax-runner/components"
	"github.com/automoto/parallax-runner/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimation must run after UpdatePlayer so it sees this tick's motion.
func UpdateAnimation(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		AdvanceAnimation(components.Player.Get(e), components.Sprite.Get(e))
	})
}

// AdvanceAnimation steps to the next run cell once enough motion has
// accumulated. At most one cell per tick; the remainder is discarded.
func AdvanceAnimation(p *components.PlayerData, sprite *components.SpriteData) {
	if !sprite.Run.Advance(p.AnimDistance) {
		return
	}
	p.AnimDistance = 0
	sprite.SetCell(sprite.Run.Frame())
}

package factory

import (
	"github.com/automoto/parallax-runner/archetypes"
	"github.com/automoto/parallax-runner/assets"
	"github.com/automoto/parallax-runner/assets/animations"
	"github.com/automoto/parallax-runner/components"
	cfg "github.com/automoto/parallax-runner/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player standing at StartX, facing right, on cell 0.
func CreatePlayer(ecs *ecs.ECS) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	components.Player.SetValue(player, components.PlayerData{
		X:      cfg.Player.StartX,
		Y:      cfg.C.Height - cfg.Player.FloorOffset - cfg.Player.FrameHeight,
		Facing: components.FacingRight,
	})

	sprite := components.SpriteData{
		Texture:     assets.TexturePlayerRun,
		FrameWidth:  cfg.Player.FrameWidth,
		FrameHeight: cfg.Player.FrameHeight,
		Run:         animations.NewAnimation(0, cfg.Animation.SpriteCount-1, 1, cfg.Animation.CycleThreshold),
	}
	sprite.SetCell(sprite.Run.Frame())
	components.Sprite.SetValue(player, sprite)

	return player
}

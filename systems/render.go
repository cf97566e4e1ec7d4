package systems

import (
	"github.com/automoto/parallax-runner/components"
	"github.com/automoto/parallax-runner/render"
	"github.com/automoto/parallax-runner/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Renderer draws one part of the frame. Renderers run in registration order.
type Renderer func(ecs *ecs.ECS, canvas render.Canvas)

// DrawLayers draws the background then the ground, two tiles each.
func DrawLayers(ecs *ecs.ECS, canvas render.Canvas) {
	tags.Background.Each(ecs.World, func(e *donburi.Entry) {
		drawLayer(components.ScrollLayer.Get(e), canvas)
	})
	tags.Ground.Each(ecs.World, func(e *donburi.Entry) {
		drawLayer(components.ScrollLayer.Get(e), canvas)
	})
}

func drawLayer(layer *components.ScrollLayerData, canvas render.Canvas) {
	first, second := layer.Tiles()
	canvas.DrawTexture(layer.Texture, layer.Source, first, false)
	canvas.DrawTexture(layer.Texture, layer.Source, second, false)
}

// DrawPlayer draws the current run cell, mirrored when facing left.
func DrawPlayer(ecs *ecs.ECS, canvas render.Canvas) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		sprite := components.Sprite.Get(e)
		dst := player.Rect(sprite.FrameWidth, sprite.FrameHeight)
		canvas.DrawTexture(sprite.Texture, sprite.Src, dst, player.Facing == components.FacingLeft)
	})
}

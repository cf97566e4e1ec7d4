package factory

import (
	"github.com/automoto/parallax-runner/archetypes"
	"github.com/automoto/parallax-runner/assets"
	"github.com/automoto/parallax-runner/components"
	cfg "github.com/automoto/parallax-runner/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateBackground(ecs *ecs.ECS) *donburi.Entry {
	layer := archetypes.Background.Spawn(ecs)
	components.ScrollLayer.SetValue(layer, newLayer(assets.TextureBackground, cfg.Layers.Background))
	return layer
}

func CreateGround(ecs *ecs.ECS) *donburi.Entry {
	layer := archetypes.Ground.Spawn(ecs)
	components.ScrollLayer.SetValue(layer, newLayer(assets.TextureGround, cfg.Layers.Ground))
	return layer
}

func newLayer(tex assets.TextureID, lc cfg.LayerConfig) components.ScrollLayerData {
	return components.ScrollLayerData{
		Texture: tex,
		Source:  lc.Source,
		Dest:    lc.Dest,
		Divisor: lc.Divisor,
	}
}

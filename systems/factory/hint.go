package factory

import (
	"github.com/automoto/parallax-runner/archetypes"
	"github.com/automoto/parallax-runner/components"
	cfg "github.com/automoto/parallax-runner/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateHint spawns the controls hint. Its alpha holds at 1 for Hint.Hold
// seconds, then eases out to 0 over Hint.Fade seconds.
func CreateHint(ecs *ecs.ECS) *donburi.Entry {
	hint := archetypes.Hint.Spawn(ecs)

	tw := gween.NewSequence()
	tw.Add(
		gween.New(1, 1, cfg.Hint.Hold, ease.Linear),
		gween.New(1, 0, cfg.Hint.Fade, ease.InQuad),
	)
	components.Hint.SetValue(hint, components.HintData{
		Text:  cfg.Hint.Text,
		Tween: tw,
		Alpha: 1,
	})

	return hint
}

package systems

import (
	"image/color"

	"github.com/automoto/parallax-runner/components"
	cfg "github.com/automoto/parallax-runner/config"
	"github.com/automoto/parallax-runner/fonts"
	"github.com/automoto/parallax-runner/render"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// UpdateHint advances the hint fade by one fixed tick.
func UpdateHint(ecs *ecs.ECS) {
	entry, ok := components.Hint.First(ecs.World)
	if !ok {
		return
	}
	hint := components.Hint.Get(entry)
	if hint.Done || hint.Tween == nil {
		return
	}

	dt := 1 / float32(cfg.C.TargetFPS)
	alpha, _, done := hint.Tween.Update(dt)
	hint.Alpha = alpha
	if done {
		hint.Alpha = 0
		hint.Done = true
	}
}

// DrawHint draws the controls hint centered near the top with a drop shadow.
func DrawHint(ecs *ecs.ECS, canvas render.Canvas) {
	entry, ok := components.Hint.First(ecs.World)
	if !ok {
		return
	}
	hint := components.Hint.Get(entry)
	if hint.Done || hint.Alpha <= 0 {
		return
	}

	width := font.MeasureString(fonts.Hint.Get(), hint.Text).Round()
	x := (cfg.C.Width - width) / 2
	y := cfg.Hint.Y

	canvas.DrawText(hint.Text, fonts.Hint, x+2, y+2, fade(cfg.Hint.Shadow, hint.Alpha))
	canvas.DrawText(hint.Text, fonts.Hint, x, y, fade(cfg.Hint.TextColor, hint.Alpha))
}

func fade(c color.RGBA, alpha float32) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(float32(c.A) * alpha)}
}

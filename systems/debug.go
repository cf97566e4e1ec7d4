package systems

import (
	"fmt"

	"github.com/automoto/parallax-runner/components"
	cfg "github.com/automoto/parallax-runner/config"
	"github.com/automoto/parallax-runner/fonts"
	"github.com/automoto/parallax-runner/render"
	"github.com/automoto/parallax-runner/tags"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateDebug toggles the stats overlay.
func UpdateDebug(ecs *ecs.ECS) {
	debug := GetOrCreateDebug(ecs)
	if GetAction(getOrCreateInput(ecs), cfg.ActionToggleDebug).JustPressed {
		debug.Enabled = !debug.Enabled
	}
}

// GetOrCreateDebug returns the singleton Debug component, creating if needed
func GetOrCreateDebug(ecs *ecs.ECS) *components.DebugData {
	entry, ok := components.Debug.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Debug))
		components.Debug.Get(entry).Enabled = cfg.Debug.ShowStats
	}
	return components.Debug.Get(entry)
}

func DrawDebug(ecs *ecs.ECS, canvas render.Canvas) {
	if !GetOrCreateDebug(ecs).Enabled {
		return
	}

	origin := cfg.Debug.Origin
	for i, line := range debugLines(ecs) {
		pos := math.Vec2{X: origin.X, Y: origin.Y + float64(i*cfg.Debug.LineGap)}
		canvas.DrawText(line, fonts.Small, int(pos.X), int(pos.Y), cfg.Debug.TextColor)
	}
}

func debugLines(ecs *ecs.ECS) []string {
	var lines []string

	if entry, ok := tags.Player.First(ecs.World); ok {
		p := components.Player.Get(entry)
		lines = append(lines,
			fmt.Sprintf("x: %d  speed: %.1f  facing: %s", p.X, p.SpeedX, p.Facing),
			fmt.Sprintf("world: %.1f  cell: %d", p.WorldDistance, components.Sprite.Get(entry).Run.Frame()),
		)
	}

	if entry, ok := components.FrameClock.First(ecs.World); ok {
		clock := components.FrameClock.Get(entry)
		lines = append(lines, fmt.Sprintf("frame: %v / %v", clock.Elapsed(), clock.Budget()))
	}

	lines = append(lines, fmt.Sprintf("tick: %d", GetOrCreateLoop(ecs).Ticks))
	return lines
}

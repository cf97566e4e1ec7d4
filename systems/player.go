package systems

import (
	"math"

	"github.com/automoto/parallax-runner/components"
	cfg "github.com/automoto/parallax-runner/config"
	"github.com/automoto/parallax-runner/gamemath"
	"github.com/automoto/parallax-runner/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdatePlayer(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	moveLeft := GetAction(input, cfg.ActionMoveLeft).Pressed
	moveRight := GetAction(input, cfg.ActionMoveRight).Pressed

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		StepPlayer(components.Player.Get(e), moveLeft, moveRight)
	})
}

// StepPlayer advances the player by one tick. Holding both directions
// cancels out; holding left at x=0 does nothing.
func StepPlayer(p *components.PlayerData, moveLeft, moveRight bool) {
	pc := cfg.Player

	if moveLeft && p.X > 0 {
		p.SpeedX = gamemath.Accelerate(p.SpeedX, -pc.Acceleration, pc.MaxSpeed)
	}
	if moveRight {
		p.SpeedX = gamemath.Accelerate(p.SpeedX, pc.Acceleration, pc.MaxSpeed)
	}

	// Facing only changes outside the dead zone.
	switch {
	case p.SpeedX >= pc.Decay:
		p.Facing = components.FacingRight
	case p.SpeedX <= -pc.Decay:
		p.Facing = components.FacingLeft
	}
	p.SpeedX = gamemath.ApplyDecay(p.SpeedX, pc.Decay)

	if p.X < 0 {
		p.X = 0
		p.SpeedX = 0
	}

	boundary := cfg.C.RightBoundary()
	if p.X >= boundary && p.SpeedX > 0 {
		// Pinned: the world moves instead.
		p.X = boundary
		p.WorldDistance += p.SpeedX
	} else {
		p.X += gamemath.Truncate(p.SpeedX)
		if p.X < 0 {
			p.X = 0
			p.SpeedX = 0
		}
		// Arriving at the boundary lands on it; the world takes over next tick.
		p.X = min(p.X, boundary)
	}

	p.AnimDistance += math.Abs(p.SpeedX)
}

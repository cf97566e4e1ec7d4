package scenes

import (
	"sync"

	"github.com/automoto/parallax-runner/fonts"
	"github.com/automoto/parallax-runner/render"
	"github.com/automoto/parallax-runner/systems"
	"github.com/automoto/parallax-runner/systems/factory"
	"github.com/automoto/parallax-runner/timing"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ScrollerScene is the single running scene: one player over two parallax
// layers, ticked at a fixed rate.
type ScrollerScene struct {
	ecs       *ecs.ECS
	device    systems.DeviceState
	clock     timing.Clock
	renderers []systems.Renderer
	once      sync.Once
}

func NewScrollerScene(device systems.DeviceState, clock timing.Clock) *ScrollerScene {
	return &ScrollerScene{device: device, clock: clock}
}

// Update runs one tick. The previous tick's leftover budget is slept off
// first, so the tick that requests quit is rendered once more and the call
// after it returns ebiten.Termination without waiting.
func (s *ScrollerScene) Update() error {
	s.once.Do(s.configure)

	if systems.IsStopped(s.ecs) {
		return ebiten.Termination
	}

	systems.WaitForFrameBudget(s.ecs)
	s.ecs.Update()
	return nil
}

func (s *ScrollerScene) Render(canvas render.Canvas) {
	if s.ecs == nil {
		return
	}
	for _, r := range s.renderers {
		r(s.ecs, canvas)
	}
}

func (s *ScrollerScene) configure() {
	if err := fonts.LoadDefaults(); err != nil {
		panic("failed to load fonts: " + err.Error())
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	// Timer starts before anything else in the tick
	ecs.AddSystem(systems.UpdateClock)
	ecs.AddSystem(systems.NewUpdateInput(s.device))
	ecs.AddSystem(systems.UpdateLoop)
	ecs.AddSystem(systems.UpdateDebug)

	// Motion, then the things derived from it
	ecs.AddSystem(systems.UpdatePlayer)
	ecs.AddSystem(systems.UpdateAnimation)
	ecs.AddSystem(systems.UpdateScroll)
	ecs.AddSystem(systems.UpdateHint)

	s.renderers = []systems.Renderer{
		systems.DrawLayers,
		systems.DrawPlayer,
		systems.DrawHint,
		systems.DrawDebug,
	}

	s.ecs = ecs

	factory.CreateFrameClock(s.ecs, s.clock)
	factory.CreateBackground(s.ecs)
	factory.CreateGround(s.ecs)
	factory.CreatePlayer(s.ecs)
	factory.CreateHint(s.ecs)
	systems.GetOrCreateLoop(s.ecs)
}

package systems

import (
	"github.com/automoto/parallax-runner/components"
	cfg "github.com/automoto/parallax-runner/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// DeviceState is the slice of ebiten's input API the game polls.
type DeviceState interface {
	IsKeyPressed(key ebiten.Key) bool
	IsWindowBeingClosed() bool
	AppendGamepadIDs(ids []ebiten.GamepadID) []ebiten.GamepadID
	IsStandardGamepadLayoutAvailable(id ebiten.GamepadID) bool
	IsStandardGamepadButtonPressed(id ebiten.GamepadID, button ebiten.StandardGamepadButton) bool
}

// EbitenDevice reads the real keyboard, gamepads and window.
type EbitenDevice struct{}

func (EbitenDevice) IsKeyPressed(key ebiten.Key) bool { return ebiten.IsKeyPressed(key) }
func (EbitenDevice) IsWindowBeingClosed() bool { return ebiten.IsWindowBeingClosed() }

func (EbitenDevice) AppendGamepadIDs(ids []ebiten.GamepadID) []ebiten.GamepadID {
	return ebiten.AppendGamepadIDs(ids)
}

func (EbitenDevice) IsStandardGamepadLayoutAvailable(id ebiten.GamepadID) bool {
	return ebiten.IsStandardGamepadLayoutAvailable(id)
}

func (EbitenDevice) IsStandardGamepadButtonPressed(id ebiten.GamepadID, button ebiten.StandardGamepadButton) bool {
	return ebiten.IsStandardGamepadButtonPressed(id, button)
}

// NewUpdateInput returns a system that samples device into the Input component.
// Must run BEFORE UpdateLoop and UpdatePlayer in the system order.
func NewUpdateInput(device DeviceState) ecs.System {
	// Reusable slice for gamepad IDs to avoid allocations
	var gamepadIDs []ebiten.GamepadID

	return func(ecs *ecs.ECS) {
		input := getOrCreateInput(ecs)

		// Swap buffers: current becomes previous, then zero out current
		input.Previous = input.Current
		input.Current = [cfg.ActionCount]bool{}

		gamepadIDs = device.AppendGamepadIDs(gamepadIDs[:0])

		for actionID, binding := range cfg.Input.Bindings {
			for _, key := range binding.Keys {
				if device.IsKeyPressed(key) {
					input.Current[actionID] = true
				}
			}

			for _, gpID := range gamepadIDs {
				if !device.IsStandardGamepadLayoutAvailable(gpID) {
					continue
				}
				for _, btn := range binding.StandardGamepadButtons {
					if device.IsStandardGamepadButtonPressed(gpID, btn) {
						input.Current[actionID] = true
					}
				}
			}
		}

		input.WindowClosing = device.IsWindowBeingClosed()
	}
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

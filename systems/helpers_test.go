package systems

import (
	"math"

	"github.com/automoto/parallax-runner/components"
	cfg "github.com/automoto/parallax-runner/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type fakeDevice struct {
	keys        map[ebiten.Key]bool
	buttons     map[ebiten.GamepadID]map[ebiten.StandardGamepadButton]bool
	nonStandard map[ebiten.GamepadID]bool
	closing     bool
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{
		keys:        map[ebiten.Key]bool{},
		buttons:     map[ebiten.GamepadID]map[ebiten.StandardGamepadButton]bool{},
		nonStandard: map[ebiten.GamepadID]bool{},
	}
}

func (d *fakeDevice) IsKeyPressed(key ebiten.Key) bool { return d.keys[key] }
func (d *fakeDevice) IsWindowBeingClosed() bool { return d.closing }

func (d *fakeDevice) AppendGamepadIDs(ids []ebiten.GamepadID) []ebiten.GamepadID {
	for id := range d.buttons {
		ids = append(ids, id)
	}
	return ids
}

func (d *fakeDevice) IsStandardGamepadLayoutAvailable(id ebiten.GamepadID) bool {
	return !d.nonStandard[id]
}

func (d *fakeDevice) IsStandardGamepadButtonPressed(id ebiten.GamepadID, button ebiten.StandardGamepadButton) bool {
	return d.buttons[id][button]
}

func newTestECS() *ecs.ECS {
	return ecs.NewECS(donburi.NewWorld())
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func restingPlayer() components.PlayerData {
	return components.PlayerData{
		X:      cfg.Player.StartX,
		Y:      400,
		Facing: components.FacingRight,
	}
}

package systems

import (
	"testing"

	cfg "github.com/automoto/parallax-runner/config"
	"github.com/hajimehoshi/ebiten/v2"
)

func TestUpdateInputBindings(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(d *fakeDevice)
		action cfg.ActionID
		want   bool
	}{
		{"A moves left", func(d *fakeDevice) { d.keys[ebiten.KeyA] = true }, cfg.ActionMoveLeft, true},
		{"Left arrow moves left", func(d *fakeDevice) { d.keys[ebiten.KeyLeft] = true }, cfg.ActionMoveLeft, true},
		{"D moves right", func(d *fakeDevice) { d.keys[ebiten.KeyD] = true }, cfg.ActionMoveRight, true},
		{"D does not move left", func(d *fakeDevice) { d.keys[ebiten.KeyD] = true }, cfg.ActionMoveLeft, false},
		{"Escape quits", func(d *fakeDevice) { d.keys[ebiten.KeyEscape] = true }, cfg.ActionQuit, true},
		{"Dpad right moves right", func(d *fakeDevice) {
			d.buttons[0] = map[ebiten.StandardGamepadButton]bool{ebiten.StandardGamepadButtonLeftRight: true}
		}, cfg.ActionMoveRight, true},
		{"Non-standard gamepad is ignored", func(d *fakeDevice) {
			d.buttons[1] = map[ebiten.StandardGamepadButton]bool{ebiten.StandardGamepadButtonLeftRight: true}
			d.nonStandard[1] = true
		}, cfg.ActionMoveRight, false},
		{"Nothing held", func(d *fakeDevice) {}, cfg.ActionMoveRight, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			device := newFakeDevice()
			tt.setup(device)
			e := newTestECS()

			NewUpdateInput(device)(e)

			if got := GetAction(getOrCreateInput(e), tt.action).Pressed; got != tt.want {
				t.Errorf("Pressed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetActionEdges(t *testing.T) {
	device := newFakeDevice()
	e := newTestECS()
	update := NewUpdateInput(device)

	steps := []struct {
		held                       bool
		pressed, just, justRelease bool
	}{
		{true, true, true, false},
		{true, true, false, false},
		{false, false, false, true},
		{false, false, false, false},
	}

	for i, s := range steps {
		device.keys[ebiten.KeyF3] = s.held
		update(e)

		got := GetAction(getOrCreateInput(e), cfg.ActionToggleDebug)
		if got.Pressed != s.pressed || got.JustPressed != s.just || got.JustReleased != s.justRelease {
			t.Errorf("step %d: got %+v", i, got)
		}
	}
}

func TestUpdateInputWindowClosing(t *testing.T) {
	device := newFakeDevice()
	device.closing = true
	e := newTestECS()

	NewUpdateInput(device)(e)

	if !getOrCreateInput(e).WindowClosing {
		t.Error("Expected WindowClosing to be set")
	}
}

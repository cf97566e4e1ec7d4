package main

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"testing"
	"testing/fstest"
	"time"

	"github.com/automoto/parallax-runner/render"
	"github.com/hajimehoshi/ebiten/v2"
)

type fakeEngine struct {
	configured bool
	ran        bool
	err        error
	frames     int
	quitAfter  int
	device     *fakeDevice
}

func (e *fakeEngine) Configure(title string, width, height int) {
	e.configured = true
}

// RunGame drives the game the way ebiten would, drawing into a recorder.
func (e *fakeEngine) RunGame(game ebiten.Game) error {
	e.ran = true
	if e.err != nil {
		return e.err
	}
	g := game.(*Game)
	rec := &render.Recorder{}
	for {
		if e.frames == e.quitAfter-1 {
			e.device.keys[ebiten.KeyEscape] = true
		}
		if err := g.Update(); err != nil {
			if errors.Is(err, ebiten.Termination) {
				return nil
			}
			return err
		}
		rec.Reset()
		g.scene.Render(rec)
		e.frames++
	}
}

type fakeDevice struct {
	keys map[ebiten.Key]bool
}

func (d *fakeDevice) IsKeyPressed(key ebiten.Key) bool { return d.keys[key] }
func (d *fakeDevice) IsWindowBeingClosed() bool { return false }

func (d *fakeDevice) AppendGamepadIDs(ids []ebiten.GamepadID) []ebiten.GamepadID { return ids }

func (d *fakeDevice) IsStandardGamepadLayoutAvailable(ebiten.GamepadID) bool { return false }

func (d *fakeDevice) IsStandardGamepadButtonPressed(ebiten.GamepadID, ebiten.StandardGamepadButton) bool {
	return false
}

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }
func (c *fakeClock) Sleep(d time.Duration) { c.now = c.now.Add(d) }

func assetFS(t *testing.T) fstest.MapFS {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4))); err != nil {
		t.Fatalf("Failed to encode fixture: %v", err)
	}
	return fstest.MapFS{
		"PlayerRun.png":  {Data: buf.Bytes()},
		"Background.png": {Data: buf.Bytes()},
		"Ground.png":     {Data: buf.Bytes()},
	}
}

func TestRun(t *testing.T) {
	tests := []struct {
		name           string
		fsys           func(t *testing.T) fstest.MapFS
		engineErr      error
		wantCode       int
		wantConfigured bool
		wantRan        bool
		wantFrames     int
	}{
		{
			name:           "Quits cleanly",
			fsys:           assetFS,
			wantCode:       0,
			wantConfigured: true,
			wantRan:        true,
			wantFrames:     3,
		},
		{
			name: "Missing asset never opens a window",
			fsys: func(t *testing.T) fstest.MapFS {
				m := assetFS(t)
				delete(m, "Ground.png")
				return m
			},
			wantCode: 1,
		},
		{
			name:           "Window failure",
			fsys:           assetFS,
			engineErr:      errors.New("no display"),
			wantCode:       1,
			wantConfigured: true,
			wantRan:        true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			device := &fakeDevice{keys: map[ebiten.Key]bool{}}
			engine := &fakeEngine{err: tt.engineErr, quitAfter: 3, device: device}

			code := run(engine, tt.fsys(t), device, &fakeClock{now: time.Unix(0, 0)})

			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d", code, tt.wantCode)
			}
			if engine.configured != tt.wantConfigured {
				t.Errorf("configured = %v, want %v", engine.configured, tt.wantConfigured)
			}
			if engine.ran != tt.wantRan {
				t.Errorf("ran = %v, want %v", engine.ran, tt.wantRan)
			}
			if engine.frames != tt.wantFrames {
				t.Errorf("frames = %d, want %d", engine.frames, tt.wantFrames)
			}
		})
	}
}

func TestLayoutIsFixed(t *testing.T) {
	g := NewGame(nil, nil)
	for _, size := range [][2]int{{800, 600}, {1920, 1080}} {
		w, h := g.Layout(size[0], size[1])
		if w != 1024 || h != 768 {
			t.Errorf("Layout(%d, %d) = %d, %d; want 1024, 768", size[0], size[1], w, h)
		}
	}
}

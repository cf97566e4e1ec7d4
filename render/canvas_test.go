package render

import (
	"image"
	"testing"

	"github.com/automoto/parallax-runner/assets"
	"github.com/automoto/parallax-runner/config"
	"github.com/automoto/parallax-runner/fonts"
)

func TestRecorderKeepsOrder(t *testing.T) {
	var r Recorder
	r.DrawTexture(assets.TextureBackground, image.Rect(0, 0, 8, 8), image.Rect(0, 0, 16, 16), false)
	r.DrawText("hello", fonts.Small, 3, 4, config.White)
	r.DrawTexture(assets.TexturePlayerRun, image.Rect(0, 0, 4, 4), image.Rect(10, 10, 14, 14), true)

	if len(r.Commands) != 3 {
		t.Fatalf("Expected 3 commands, got %d", len(r.Commands))
	}

	blits := r.Blits()
	if len(blits) != 2 {
		t.Fatalf("Expected 2 blits, got %d", len(blits))
	}
	if blits[0].Texture != assets.TextureBackground || blits[1].Texture != assets.TexturePlayerRun {
		t.Errorf("Blits out of order: %+v", blits)
	}
	if !blits[1].FlipX {
		t.Error("Expected second blit to be mirrored")
	}

	texts := r.Texts()
	if len(texts) != 1 || texts[0].Text != "hello" || texts[0].X != 3 || texts[0].Y != 4 {
		t.Errorf("Unexpected texts: %+v", texts)
	}

	r.Reset()
	if len(r.Commands) != 0 {
		t.Errorf("Expected no commands after Reset, got %d", len(r.Commands))
	}
}

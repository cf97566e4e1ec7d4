// Package render isolates drawing behind a small capability interface so the
// game systems can be exercised without a window.
package render

import (
	"image"
	"image/color"

	"github.com/automoto/parallax-runner/assets"
	"github.com/automoto/parallax-runner/fonts"
)

// Canvas is the drawing surface a frame is composed onto.
type Canvas interface {
	// DrawTexture blits src of a texture into dst, scaling to fit and
	// mirroring horizontally when flipX is set.
	DrawTexture(id assets.TextureID, src, dst image.Rectangle, flipX bool)
	// DrawText draws msg with its baseline at (x, y).
	DrawText(msg string, face fonts.FontName, x, y int, clr color.Color)
}

// CommandKind distinguishes recorded draw calls.
type CommandKind int

const (
	CommandTexture CommandKind = iota
	CommandText
)

// Command is one recorded draw call.
type Command struct {
	Kind    CommandKind
	Texture assets.TextureID
	Src     image.Rectangle
	Dst     image.Rectangle
	FlipX   bool

	Text  string
	Font  fonts.FontName
	X, Y  int
	Color color.Color
}

// Recorder is a Canvas that keeps every call instead of drawing it.
type Recorder struct {
	Commands []Command
}

func (r *Recorder) DrawTexture(id assets.TextureID, src, dst image.Rectangle, flipX bool) {
	r.Commands = append(r.Commands, Command{
		Kind:    CommandTexture,
		Texture: id,
		Src:     src,
		Dst:     dst,
		FlipX:   flipX,
	})
}

func (r *Recorder) DrawText(msg string, face fonts.FontName, x, y int, clr color.Color) {
	r.Commands = append(r.Commands, Command{
		Kind:  CommandText,
		Text:  msg,
		Font:  face,
		X:     x,
		Y:     y,
		Color: clr,
	})
}

// Blits returns the recorded texture draws in order.
func (r *Recorder) Blits() []Command {
	var out []Command
	for _, c := range r.Commands {
		if c.Kind == CommandTexture {
			out = append(out, c)
		}
	}
	return out
}

// Texts returns the recorded text draws in order.
func (r *Recorder) Texts() []Command {
	var out []Command
	for _, c := range r.Commands {
		if c.Kind == CommandText {
			out = append(out, c)
		}
	}
	return out
}

// Reset drops all recorded commands.
func (r *Recorder) Reset() {
	r.Commands = r.Commands[:0]
}

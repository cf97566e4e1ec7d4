package components

import (
	"image"

	"github.com/automoto/parallax-runner/assets"
	"github.com/automoto/parallax-runner/assets/animations"
	"github.com/yohamta/donburi"
)

type SpriteData struct {
	Texture     assets.TextureID
	Src         image.Rectangle // Current cell within the sheet
	FrameWidth  int
	FrameHeight int
	Run         *animations.Animation // Cell cursor for the run strip
}

// SetCell moves the source rectangle to the given cell of a horizontal strip.
func (s *SpriteData) SetCell(cell int) {
	x := cell * s.FrameWidth
	s.Src = image.Rect(x, 0, x+s.FrameWidth, s.FrameHeight)
}

var Sprite = donburi.NewComponentType[SpriteData]()

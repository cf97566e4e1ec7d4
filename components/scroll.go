package components

import (
	"image"

	"github.com/automoto/parallax-runner/assets"
	"github.com/automoto/parallax-runner/gamemath"
	"github.com/yohamta/donburi"
)

// ScrollLayerData is one tiled layer drawn twice side by side.
type ScrollLayerData struct {
	Texture assets.TextureID
	Source  image.Rectangle
	Dest    image.Rectangle // First tile at zero scroll
	Divisor float64
	Phase   int // In [0, TileWidth())
}

func (l *ScrollLayerData) TileWidth() int {
	return l.Dest.Dx()
}

// Tiles returns the destinations of both copies for the current phase.
func (l *ScrollLayerData) Tiles() (first, second image.Rectangle) {
	x1, x2 := gamemath.TileOffsets(l.Phase, l.TileWidth())
	w := l.TileWidth()
	first = image.Rect(x1, l.Dest.Min.Y, x1+w, l.Dest.Max.Y)
	second = image.Rect(x2, l.Dest.Min.Y, x2+w, l.Dest.Max.Y)
	return first, second
}

var ScrollLayer = donburi.NewComponentType[ScrollLayerData]()

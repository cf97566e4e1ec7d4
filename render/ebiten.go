package render

import (
	"image"
	"image/color"

	"github.com/automoto/parallax-runner/assets"
	"github.com/automoto/parallax-runner/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
)

// EbitenCanvas draws onto an ebiten screen image.
type EbitenCanvas struct {
	screen   *ebiten.Image
	textures *assets.Textures
	op       ebiten.DrawImageOptions
}

func NewEbitenCanvas(screen *ebiten.Image, textures *assets.Textures) *EbitenCanvas {
	return &EbitenCanvas{screen: screen, textures: textures}
}

// Retarget points the canvas at a new screen image, reusing its draw options.
func (c *EbitenCanvas) Retarget(screen *ebiten.Image) {
	c.screen = screen
}

func (c *EbitenCanvas) DrawTexture(id assets.TextureID, src, dst image.Rectangle, flipX bool) {
	tex := c.textures.Get(id)
	if tex == nil || src.Empty() || dst.Empty() {
		return
	}
	img := tex.SubImage(src).(*ebiten.Image)

	c.op.GeoM.Reset()
	c.op.ColorScale.Reset()

	// Mirror around the source's own width before scaling into dst.
	if flipX {
		c.op.GeoM.Scale(-1, 1)
		c.op.GeoM.Translate(float64(src.Dx()), 0)
	}
	c.op.GeoM.Scale(float64(dst.Dx())/float64(src.Dx()), float64(dst.Dy())/float64(src.Dy()))
	c.op.GeoM.Translate(float64(dst.Min.X), float64(dst.Min.Y))

	c.screen.DrawImage(img, &c.op)
}

func (c *EbitenCanvas) DrawText(msg string, face fonts.FontName, x, y int, clr color.Color) {
	text.Draw(c.screen, msg, face.Get(), x, y, clr)
}

package assets

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/png" // Register PNG format
	"io/fs"

	"github.com/automoto/parallax-runner/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// ErrAssetLoad is returned when an image asset is missing or cannot be decoded.
var ErrAssetLoad = errors.New("asset load failure")

// TextureID names one of the fixed image assets.
type TextureID int

const (
	TexturePlayerRun TextureID = iota
	TextureBackground
	TextureGround
	TextureCount // Must be last - used for array sizing
)

func (id TextureID) String() string {
	switch id {
	case TexturePlayerRun:
		return "PlayerRun"
	case TextureBackground:
		return "Background"
	case TextureGround:
		return "Ground"
	}
	return fmt.Sprintf("TextureID(%d)", int(id))
}

// Path returns the file the texture is read from.
func (id TextureID) Path() string {
	switch id {
	case TexturePlayerRun:
		return config.Assets.PlayerRun
	case TextureBackground:
		return config.Assets.Background
	case TextureGround:
		return config.Assets.Ground
	}
	return ""
}

// Images holds the decoded assets before they are uploaded to the GPU.
type Images [TextureCount]image.Image

// Textures holds the uploaded assets, indexed by TextureID.
type Textures [TextureCount]*ebiten.Image

// Get returns the texture for id, or nil if id is out of range.
func (t *Textures) Get(id TextureID) *ebiten.Image {
	if t == nil || id < 0 || id >= TextureCount {
		return nil
	}
	return t[id]
}

// Decode reads and decodes every texture from fsys. It fails on the first
// missing or unreadable file so nothing is drawn with a nil texture.
func Decode(fsys fs.FS) (*Images, error) {
	var imgs Images
	for id := TextureID(0); id < TextureCount; id++ {
		img, err := decodeImage(fsys, id.Path())
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrAssetLoad, id, err)
		}
		imgs[id] = img
	}
	return &imgs, nil
}

func decodeImage(fsys fs.FS, path string) (image.Image, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image file %s: %w", path, err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return img, nil
}

// Upload converts decoded images into ebiten textures. It must run after the
// graphics driver is available.
func Upload(imgs *Images) *Textures {
	var tex Textures
	for id, img := range imgs {
		if img != nil {
			tex[id] = ebiten.NewImageFromImage(img)
		}
	}
	return &tex
}

package components

import (
	"image"

	"github.com/yohamta/donburi"
)

// Facing is the direction the player sprite looks.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

func (f Facing) String() string {
	if f == FacingLeft {
		return "Left"
	}
	return "Right"
}

type PlayerData struct {
	X, Y   int     // Top-left of the sprite on screen; Y never changes
	SpeedX float64 // Signed, within [-MaxSpeed, MaxSpeed]
	Facing Facing

	// AnimDistance accumulates |SpeedX| until it crosses the cycle threshold.
	AnimDistance float64

	// WorldDistance is how far the world has scrolled under the player while
	// held at the right boundary. It only grows.
	WorldDistance float64
}

// Rect is the player's destination rectangle for a sprite of size w×h.
func (p *PlayerData) Rect(w, h int) image.Rectangle {
	return image.Rect(p.X, p.Y, p.X+w, p.Y+h)
}

var Player = donburi.NewComponentType[PlayerData]()

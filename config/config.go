package config

import (
	"image"
	"image/color"

	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// Default is the render layer every entity is created on.
const Default ecs.LayerID = 0

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	Acceleration float64 // Added per tick while a direction is held
	Decay        float64 // Removed per tick; also the dead zone half-width
	MaxSpeed     float64

	// Spawn
	StartX int
	// Distance from the bottom of the window to the sprite's feet
	FloorOffset int

	// Dimensions
	FrameWidth  int
	FrameHeight int
}

// AnimationConfig contains animation-related configuration values
type AnimationConfig struct {
	CycleThreshold float64 // Accumulated motion needed to advance one cell
	SpriteCount    int     // Cells in the run sheet
}

// LayerConfig describes one tiled scroll layer
type LayerConfig struct {
	Source  image.Rectangle // Region of the texture to sample
	Dest    image.Rectangle // First tile's destination at zero scroll
	Divisor float64         // World distance is divided by this before wrapping
}

// LayersConfig contains the two parallax layers
type LayersConfig struct {
	Background LayerConfig
	Ground     LayerConfig
}

// AssetsConfig maps logical textures to files in the working directory
type AssetsConfig struct {
	PlayerRun  string
	Background string
	Ground     string
}

// HintConfig contains the on-screen controls hint configuration
type HintConfig struct {
	Text      string
	Hold      float32 // seconds fully visible
	Fade      float32 // seconds to fade out
	Y         int
	TextColor color.RGBA
	Shadow    color.RGBA
}

// DebugConfig contains debug overlay options
type DebugConfig struct {
	ShowStats bool // Initial visibility of the stats overlay
	TextColor color.RGBA
	Origin    math.Vec2 // Baseline of the first line
	LineGap   int
}

// Config holds general game configuration
type Config struct {
	Width     int
	Height    int
	TargetFPS int
	Title     string
}

// RightBoundary is the x the player is held at while the world scrolls.
func (c *Config) RightBoundary() int {
	return 2*c.Width/3 - Player.FrameWidth
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Animation AnimationConfig
var Layers LayersConfig
var Assets AssetsConfig
var Hint HintConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black       = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	ShadowBlack = color.RGBA{R: 0, G: 0, B: 0, A: 160}
	LightGreen  = color.RGBA{R: 100, G: 255, B: 100, A: 255}
)

func init() {
	C = &Config{
		Width:     1024,
		Height:    768,
		TargetFPS: 60,
		Title:     "A - Move left, D - Move right",
	}

	Player = PlayerConfig{
		Acceleration: 0.5,
		Decay:        0.2,
		MaxSpeed:     30,

		StartX:      100,
		FloorOffset: 240,

		FrameWidth:  128,
		FrameHeight: 128,
	}

	Animation = AnimationConfig{
		CycleThreshold: 30,
		SpriteCount:    8,
	}

	groundH := 277
	Layers = LayersConfig{
		Background: LayerConfig{
			Source:  image.Rect(0, 0, 8192, 1024),
			Dest:    image.Rect(0, 0, C.Width, C.Height-200),
			Divisor: 5,
		},
		Ground: LayerConfig{
			Source:  image.Rect(0, 0, 1612, groundH),
			Dest:    image.Rect(0, C.Height-groundH, 1612, C.Height),
			Divisor: 1,
		},
	}

	Assets = AssetsConfig{
		PlayerRun:  "PlayerRun.png",
		Background: "Background.png",
		Ground:     "Ground.png",
	}

	Hint = HintConfig{
		Text:      "Use 'A' to move left, and 'D' to move right",
		Hold:      3,
		Fade:      1.5,
		Y:         40,
		TextColor: White,
		Shadow:    ShadowBlack,
	}

	Debug = DebugConfig{
		ShowStats: false,
		TextColor: LightGreen,
		Origin:    math.Vec2{X: 10, Y: 20},
		LineGap:   14,
	}
}

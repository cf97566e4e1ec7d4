package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"sync"

	"github.com/automoto/parallax-runner/assets"
	"github.com/automoto/parallax-runner/config"
	"github.com/automoto/parallax-runner/render"
	"github.com/automoto/parallax-runner/scenes"
	"github.com/automoto/parallax-runner/systems"
	"github.com/automoto/parallax-runner/timing"
	"github.com/hajimehoshi/ebiten/v2"
)

// ErrInitialization is returned when the window or graphics context
// cannot be brought up.
var ErrInitialization = errors.New("initialization failed")

type Scene interface {
	Update() error
	Render(canvas render.Canvas)
}

type Game struct {
	scene    Scene
	images   *assets.Images
	textures *assets.Textures
	canvas   *render.EbitenCanvas
	upload   sync.Once
}

func NewGame(images *assets.Images, scene Scene) *Game {
	return &Game{
		scene:  scene,
		images: images,
	}
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Upload on the first frame; run() only decodes.
	g.upload.Do(func() {
		g.textures = assets.Upload(g.images)
		g.canvas = render.NewEbitenCanvas(screen, g.textures)
	})

	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(config.Black)

	g.canvas.Retarget(screen)
	g.scene.Render(g.canvas)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

// Engine opens the window and drives a game until it terminates.
type Engine interface {
	Configure(title string, width, height int)
	RunGame(game ebiten.Game) error
}

type ebitenEngine struct{}

func (ebitenEngine) Configure(title string, width, height int) {
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetWindowClosingHandled(true)

	// One Update per frame; the frame clock does the pacing.
	ebiten.SetTPS(ebiten.SyncWithFPS)
	ebiten.SetVsyncEnabled(false)
}

func (ebitenEngine) RunGame(game ebiten.Game) error {
	return ebiten.RunGame(game)
}

// run loads assets, runs the game and returns the process exit code.
func run(engine Engine, fsys fs.FS, device systems.DeviceState, clock timing.Clock) int {
	log.Println("Initializing game.")

	images, err := assets.Decode(fsys)
	if err != nil {
		log.Printf("Initialization failed: %v", err)
		return 1
	}

	engine.Configure(config.C.Title, config.C.Width, config.C.Height)
	game := NewGame(images, scenes.NewScrollerScene(device, clock))

	log.Println("Success!")
	log.Println(config.Hint.Text)

	if err := engine.RunGame(game); err != nil {
		log.Printf("%v", fmt.Errorf("%w: %v", ErrInitialization, err))
		return 1
	}

	log.Println("Cleaning game.")
	return 0
}

func main() {
	os.Exit(run(ebitenEngine{}, os.DirFS("."), systems.EbitenDevice{}, timing.SystemClock{}))
}

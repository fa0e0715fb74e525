//go:build ebiten

package app

import (
	"errors"
	"image"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/artgrid/internal/anim"
	"github.com/vovakirdan/artgrid/internal/core"
)

const flashFor = 3 * time.Second

// bindings maps window keys to viewer actions.
var bindings = []struct {
	key    ebiten.Key
	action core.Action
}{
	{ebiten.KeySpace, core.ActionTogglePlay},
	{ebiten.KeyR, core.ActionReset},
	{ebiten.KeyS, core.ActionNewSeed},
	{ebiten.KeyN, core.ActionNewSeed},
	{ebiten.KeyG, core.ActionSurprise},
	{ebiten.KeyD, core.ActionDesigner},
	{ebiten.KeyP, core.ActionNextPalette},
	{ebiten.KeyBracketLeft, core.ActionComplexityDown},
	{ebiten.KeyBracketRight, core.ActionComplexityUp},
	{ebiten.KeyMinus, core.ActionSpeedDown},
	{ebiten.KeyEqual, core.ActionSpeedUp},
	{ebiten.KeyComma, core.ActionGridShrink},
	{ebiten.KeyPeriod, core.ActionGridGrow},
	{ebiten.KeyF5, core.ActionRegenerate},
	{ebiten.KeyBackspace, core.ActionResetDefaults},
	{ebiten.KeyE, core.ActionExport},
}

// Game adapts a viewer session to the ebiten.Game interface.
type Game struct {
	session *core.Session
	opts    Options
	pacer   *anim.Pacer

	canvas *ebiten.Image
	drawn  *image.RGBA

	showStatus bool
	flash      string
	flashUntil time.Time
}

// New constructs a Game for the provided session.
func New(session *core.Session, opts Options) *Game {
	opts = opts.withDefaults()
	return &Game{
		session:    session,
		opts:       opts,
		pacer:      anim.NewPacer(opts.FPS),
		showStatus: true,
	}
}

// Update polls input every tick and advances the animation at the
// configured frame rate.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showStatus = !g.showStatus
	}

	for _, b := range bindings {
		if !inpututil.IsKeyJustPressed(b.key) {
			continue
		}
		if b.action == core.ActionExport {
			g.export()
			continue
		}
		g.session.Apply(b.action)
	}

	if g.pacer.Due() {
		g.session.Tick()
	}
	return nil
}

func (g *Game) export() {
	if g.opts.Export == nil {
		g.setFlash("export disabled")
		return
	}
	path, err := g.opts.Export(g.session)
	if err != nil {
		g.setFlash("export failed: " + err.Error())
		return
	}
	g.setFlash("saved " + path)
}

func (g *Game) setFlash(s string) {
	g.flash = s
	g.flashUntil = time.Now().Add(flashFor)
}

// Draw copies the session frame to the screen.
func (g *Game) Draw(screen *ebiten.Image) {
	frame := g.session.Frame()
	if frame == nil {
		return
	}
	if frame != g.drawn {
		b := frame.Bounds()
		if g.canvas == nil || g.canvas.Bounds().Size() != b.Size() {
			g.canvas = ebiten.NewImage(b.Dx(), b.Dy())
		}
		g.canvas.WritePixels(frame.Pix)
		g.drawn = frame
	}
	screen.DrawImage(g.canvas, nil)

	if !g.showStatus {
		return
	}
	face := basicfont.Face7x13
	h := screen.Bounds().Dy()
	text.Draw(screen, g.session.Status(), face, 8, h-8, color.White)
	if g.flash != "" && time.Now().Before(g.flashUntil) {
		text.Draw(screen, g.flash, face, 8, h-24, color.RGBA{R: 255, G: 230, B: 140, A: 255})
	}
}

// Layout returns the logical screen size: the current frame size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if frame := g.session.Frame(); frame != nil {
		return frame.Bounds().Dx(), frame.Bounds().Dy()
	}
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until it is closed.
func Run(session *core.Session, opts Options) error {
	opts = opts.withDefaults()
	game := New(session, opts)

	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(max(opts.FPS, ebiten.DefaultTPS))

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// Package gui is a desktop frontend built on ebiten.
package gui

import (
	"fmt"
	"image"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/tomz197/dodger/internal/asset"
	"github.com/tomz197/dodger/internal/input"
	"github.com/tomz197/dodger/internal/loop"
	"github.com/tomz197/dodger/internal/physics"
)

// debugCharWidth is the glyph width of ebitenutil's debug font.
const debugCharWidth = 6

var directionKeys = [...]struct {
	key ebiten.Key
	dir input.Direction
}{
	{ebiten.KeyArrowUp, input.Up},
	{ebiten.KeyArrowDown, input.Down},
	{ebiten.KeyArrowLeft, input.Left},
	{ebiten.KeyArrowRight, input.Right},
}

// Keyboard reports edge-triggered key state for the current tick.
type Keyboard interface {
	JustPressed(key ebiten.Key) bool
	JustReleased(key ebiten.Key) bool
}

type inputKeyboard struct{}

func (inputKeyboard) JustPressed(key ebiten.Key) bool  { return inpututil.IsKeyJustPressed(key) }
func (inputKeyboard) JustReleased(key ebiten.Key) bool { return inpututil.IsKeyJustReleased(key) }

// Game implements ebiten.Game for one session.
type Game struct {
	session  *loop.Session
	gate     *loop.Gate
	sprites  *asset.Set
	keyboard Keyboard
	logger   *log.Logger

	images  map[asset.Name]*ebiten.Image
	started bool
	loadErr <-chan error
}

var _ ebiten.Game = (*Game)(nil)

// NewGame creates a desktop game. Ticking starts once gate is ready.
func NewGame(session *loop.Session, gate *loop.Gate, sprites *asset.Set, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.Default()
	}
	return &Game{
		session:  session,
		gate:     gate,
		sprites:  sprites,
		keyboard: inputKeyboard{},
		logger:   logger,
		images:   make(map[asset.Name]*ebiten.Image, len(asset.Names)),
	}
}

// WatchLoad makes the game fail with the first non-nil error from errc, so a
// broken sprite ends the run instead of leaving the loading screen up.
func (g *Game) WatchLoad(errc <-chan error) {
	g.loadErr = errc
}

// Update handles input and advances the session by one tick.
func (g *Game) Update() error {
	return g.step(g.keyboard)
}

func (g *Game) step(kb Keyboard) error {
	if kb.JustPressed(ebiten.KeyEscape) {
		g.logger.Info("window closed by player", "score", g.session.Score)
		return ebiten.Termination
	}
	select {
	case err := <-g.loadErr:
		g.loadErr = nil
		if err != nil {
			return fmt.Errorf("load sprites: %w", err)
		}
	default:
	}
	if !g.gate.Ready() {
		return nil
	}
	if !g.started {
		g.started = true
		g.logger.Debug("assets ready, starting session")
	}

	for _, dk := range directionKeys {
		if kb.JustPressed(dk.key) {
			g.session.OnDirectionDown(dk.dir)
		}
		if kb.JustReleased(dk.key) {
			g.session.OnDirectionUp(dk.dir)
		}
	}
	if kb.JustPressed(ebiten.KeySpace) {
		g.session.OnFire()
	}

	g.session.Tick()
	return nil
}

// Draw renders the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	if !g.gate.Ready() {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Loading %v", g.gate.Pending()), 10, 10)
		return
	}

	v := g.session.View()
	g.drawSprite(screen, asset.Background, physics.Rect{Width: v.Screen.Width, Height: v.Screen.Height})
	g.drawSprite(screen, asset.Player, v.Player.Rect())
	for _, o := range v.Obstacles {
		g.drawSprite(screen, asset.Obstacle, o.Rect())
	}
	for _, p := range v.Projectiles {
		g.drawSprite(screen, asset.Projectile, p.Rect())
	}

	if v.Over {
		cx, cy := int(v.Screen.Width/2), int(v.Screen.Height/2)
		drawCentered(screen, "GAME OVER", cx, cy-20)
		drawCentered(screen, fmt.Sprintf("Final score: %d", v.Score), cx, cy)
		drawCentered(screen, "Press Esc to quit", cx, cy+20)
		return
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", v.Score), 10, 10)
}

// Layout keeps the logical canvas size regardless of the window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.session.Screen
	return int(s.Width), int(s.Height)
}

// drawSprite draws sprite n stretched over rect.
func (g *Game) drawSprite(screen *ebiten.Image, n asset.Name, rect physics.Rect) {
	img := g.image(n)
	if img == nil {
		return
	}
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(rect.Width/float64(b.Dx()), rect.Height/float64(b.Dy()))
	op.GeoM.Translate(rect.X, rect.Y)
	screen.DrawImage(img, op)
}

// image converts sprites to GPU images on first use.
func (g *Game) image(n asset.Name) *ebiten.Image {
	if img, ok := g.images[n]; ok {
		return img
	}
	src := g.sprites.Get(n)
	if src == nil || src.Bounds().Empty() {
		return nil
	}
	img := ebiten.NewImageFromImage(src)
	g.images[n] = img
	return img
}

func drawCentered(screen *ebiten.Image, s string, cx, y int) {
	ebitenutil.DebugPrintAt(screen, s, cx-len(s)*debugCharWidth/2, y)
}

// WindowSize halves the canvas size until it fits inside limit.
func WindowSize(canvas, limit image.Point) image.Point {
	w, h := canvas.X, canvas.Y
	for w > limit.X || h > limit.Y {
		w, h = w/2, h/2
	}
	return image.Pt(w, h)
}

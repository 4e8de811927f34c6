//go:build ebiten

package ui

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/sheikhrachel/go-life/engine"
	"github.com/sheikhrachel/go-life/model"
)

var keyCommands = []struct {
	key ebiten.Key
	cmd engine.Command
}{
	{ebiten.KeyF1, engine.StartStop},
	{ebiten.KeyF2, engine.ClearGrid},
	{ebiten.KeyF3, engine.EditToggle},
	{ebiten.KeyF4, engine.SavePattern},
	{ebiten.KeyF5, engine.Quit},
	{ebiten.KeyEscape, engine.Cancel},
}

// Game adapts a Session to the ebiten.Game interface
type Game struct {
	session *engine.Session
	canvas  *screenCanvas
}

// NewGame constructs a Game for the provided session
func NewGame(session *engine.Session) *Game {
	return &Game{
		session: session,
		canvas:  &screenCanvas{cellSize: session.CellSize()},
	}
}

// Update handles input and advances the simulation when it is due
func (g *Game) Update() error {
	for _, kc := range keyCommands {
		if inpututil.IsKeyJustPressed(kc.key) && g.session.Handle(kc.cmd) {
			return ebiten.Termination
		}
	}
	// q quits from the main menu only
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) && g.session.Mode() == engine.Idle {
		return ebiten.Termination
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.session.SetCellAt(ebiten.CursorPosition())
	} else if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.session.UnsetCellAt(ebiten.CursorPosition())
	}

	g.session.Tick(time.Now())
	return nil
}

// Draw renders the current grid and the legend
func (g *Game) Draw(screen *ebiten.Image) {
	var (
		cfg  = g.session.Config()
		grid = g.session.Grid()
	)
	g.canvas.dst = screen
	model.Draw(grid, g.canvas, cfg.Foreground, cfg.Background)
	drawLegend(screen, g.session.MenuItems(), grid.GetHeight()*g.session.CellSize())
}

// Layout returns the logical screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	grid := g.session.Grid()
	return ScreenSize(grid.GetWidth(), grid.GetHeight(), g.session.CellSize())
}

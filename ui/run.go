//go:build ebiten

package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/engine"
)

// Run opens the window and drives session until the user quits
func Run(session *engine.Session) error {
	game := NewGame(session)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle(WindowTitle)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return errors.Wrap(err, "[Run]")
	}
	return nil
}

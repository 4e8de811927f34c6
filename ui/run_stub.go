//go:build !ebiten

package ui

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/engine"
)

// Run reports that this binary was built without a window backend.
// Rebuild with `-tags ebiten`.
func Run(*engine.Session) error {
	return errors.Wrap(ErrNoDisplay, "[Run] built without the ebiten tag")
}

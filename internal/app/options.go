// Package app hosts the live grid in a desktop window. The window needs the
// ebiten build tag; without it Run reports ErrNoGUI.
package app

import (
	"errors"

	"github.com/vovakirdan/artgrid/internal/core"
)

// ErrNoGUI is returned by Run in builds without the ebiten tag.
var ErrNoGUI = errors.New("app: the desktop window requires building with -tags ebiten")

// Options configures the desktop window.
type Options struct {
	Title  string
	Width  int // initial window size in pixels
	Height int
	FPS    int

	// Export writes the current grid and returns the path. nil disables
	// the export key.
	Export func(s *core.Session) (string, error)
}

func (o Options) withDefaults() Options {
	if o.Title == "" {
		o.Title = "artgrid"
	}
	if o.Width <= 0 {
		o.Width = 800
	}
	if o.Height <= 0 {
		o.Height = 800
	}
	if o.FPS <= 0 {
		o.FPS = 30
	}
	return o
}

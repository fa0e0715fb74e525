//go:build !ebiten

package app

import "github.com/vovakirdan/artgrid/internal/core"

// Run reports that the window is unavailable in this build.
func Run(*core.Session, Options) error {
	return ErrNoGUI
}

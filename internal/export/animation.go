package export

import (
	"errors"
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
)

// ErrNoFrames is returned when an animation has nothing to encode.
var ErrNoFrames = errors.New("export: no frames")

// DelayFor converts a frame rate into a GIF delay in hundredths of a second.
func DelayFor(fps int) int {
	if fps <= 0 {
		return 10
	}
	return max(2, 100/fps)
}

// Animation quantizes frames into a looping GIF with delay hundredths of a
// second between frames.
func Animation(frames []image.Image, delay int) (*gif.GIF, error) {
	if len(frames) == 0 {
		return nil, ErrNoFrames
	}
	anim := &gif.GIF{LoopCount: 0}
	for _, frame := range frames {
		b := frame.Bounds()
		p := image.NewPaletted(b, palette.Plan9)
		draw.FloydSteinberg.Draw(p, b, frame, b.Min)
		anim.Image = append(anim.Image, p)
		anim.Delay = append(anim.Delay, delay)
	}
	return anim, nil
}

// EncodeGIF writes frames as an animated GIF to w.
func EncodeGIF(w io.Writer, frames []image.Image, delay int) error {
	anim, err := Animation(frames, delay)
	if err != nil {
		return err
	}
	if err := gif.EncodeAll(w, anim); err != nil {
		return fmt.Errorf("export: cannot encode animation: %w", err)
	}
	return nil
}

// WriteGIF writes frames as an animated GIF at path.
func WriteGIF(path string, frames []image.Image, delay int) error {
	f, err := create(path)
	if err != nil {
		return err
	}
	if err := EncodeGIF(f, frames, delay); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("export: cannot close %s: %w", path, err)
	}
	return nil
}

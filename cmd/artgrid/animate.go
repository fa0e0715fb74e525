package main

import (
	"context"
	"fmt"
	"image"
	"path/filepath"
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/artgrid/internal/anim"
	"github.com/vovakirdan/artgrid/internal/config"
	"github.com/vovakirdan/artgrid/internal/export"
	"github.com/vovakirdan/artgrid/internal/grid"
	"github.com/vovakirdan/artgrid/internal/tiles"
)

var (
	flagAnimFrames   int
	flagAnimFPS      int
	flagAnimDuration float64
	flagAnimTileSize int
	flagAnimOut      string
)

var animateCmd = &cobra.Command{
	Use:   "animate",
	Short: "Render the animated grid to GIF",
	Long: `Render a looping GIF of the grid animating at the configured speed.

Frames are sampled at --fps from an animation clock running at the
settings' speed multiplier, so --speed 2 covers twice as much animation
time in the same number of frames.

Examples:
  artgrid animate --seed 42
  artgrid animate --duration 5 --fps 15 --speed 1.5
  artgrid animate --frames 24 --tile-size 96 --out ./loop.gif`,
	Run: runAnimate,
}

func init() {
	animateCmd.Flags().IntVar(&flagAnimFrames, "frames", 0, "Number of frames (default from config)")
	animateCmd.Flags().IntVar(&flagAnimFPS, "fps", 0, "Frames per second (default from config)")
	animateCmd.Flags().Float64Var(&flagAnimDuration, "duration", 0, "Length in seconds; overrides --frames")
	animateCmd.Flags().IntVar(&flagAnimTileSize, "tile-size", 160, "Tile edge in pixels")
	animateCmd.Flags().StringVarP(&flagAnimOut, "out", "o", "", "Output file (default: generated name in the export directory)")
}

func runAnimate(cmd *cobra.Command, args []string) {
	cfg, s, err := loadSettings(cmd)
	if err != nil {
		fatal("loading settings", err)
	}

	fps := cfg.Export.FrameRate
	if flagAnimFPS > 0 {
		fps = flagAnimFPS
	}
	frames := cfg.Export.Frames
	if flagAnimFrames > 0 {
		frames = flagAnimFrames
	}
	if flagAnimDuration > 0 {
		frames = max(1, int(flagAnimDuration*float64(fps)+0.5))
	}
	cfg.Render.TileSize = max(flagAnimTileSize, 16)

	store := openStore(cfg)
	if store != nil {
		defer store.Close()
	}

	start := time.Now()
	specs := s.Specs()
	images, err := renderFrames(cmd.Context(), gridLayout(cfg, s), specs, FrameTimes(frames, fps, s.AnimationSpeed))
	if err != nil {
		fatal("rendering frames", err)
	}

	path := flagAnimOut
	if path == "" {
		path = filepath.Join(config.ExpandHome(cfg.Export.Dir), export.AnimationFilename(s.Seed, start))
	}
	if err := export.WriteGIF(path, images, export.DelayFor(fps)); err != nil {
		fatal("writing animation", err)
	}
	record(store, string(export.KindAnimation), s, path)
	logger.Info("rendered animation", "path", path, "frames", frames, "fps", fps, "took", time.Since(start).Round(time.Millisecond))
	fmt.Println(path)
}

// FrameTimes samples n animation times at fps from a clock running at
// speed, starting at zero.
func FrameTimes(n, fps int, speed float64) []float64 {
	if n <= 0 {
		return nil
	}
	fps = max(fps, 1)
	now := time.Unix(0, 0)
	clock := anim.NewClockWithNow(func() time.Time { return now })
	clock.SetSpeed(speed)
	clock.Play()

	step := time.Second / time.Duration(fps)
	out := make([]float64, n)
	for i := range out {
		out[i] = clock.Elapsed()
		now = now.Add(step)
	}
	return out
}

// renderFrames draws one frame per time in parallel. Each worker owns its
// renderer since renderers reuse a drawing surface.
func renderFrames(ctx context.Context, layout grid.Layout, specs []tiles.Spec, times []float64) ([]image.Image, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	out := make([]image.Image, len(times))
	workers := max(1, min(runtime.NumCPU(), len(times)))
	next := make(chan int)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(next)
		for i := range times {
			select {
			case next <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})
	for range workers {
		g.Go(func() error {
			r := grid.NewRenderer(layout)
			for i := range next {
				out[i] = r.Frame(specs, times[i])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

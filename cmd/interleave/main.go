// Command interleave renders the 3D/2D interleaving demo headlessly and
// writes PNG snapshots of selected frames.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/interleave"
	"github.com/gogpu/interleave/host"
)

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	interleave.SetLogger(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("interleave failed", "error", err)
		os.Exit(1)
	}
}

// snapshot is a copy of the surface taken after a frame.
type snapshot struct {
	frame uint64
	img   *image.RGBA
}

// run renders frames on a headless host while a second goroutine encodes
// the snapshots.
func run(ctx context.Context, cfg config, logger *slog.Logger) error {
	bg, err := cfg.clearColor()
	if err != nil {
		return err
	}
	demo, err := interleave.NewDemo(cfg.Width, cfg.Height,
		interleave.WithClearColor(bg),
		interleave.WithLogger(logger))
	if err != nil {
		return err
	}
	if err := os.MkdirAll(cfg.Out, 0o750); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	snapshots := make(chan snapshot, 4)

	h := host.NewHeadless(cfg.Width, cfg.Height,
		host.WithFPS(cfg.FPS),
		host.WithFrameLimit(cfg.Frames),
		host.WithLogger(logger),
		host.WithFrameHook(func(n uint64) error {
			if !cfg.shouldWrite(n) {
				return nil
			}
			select {
			case snapshots <- snapshot{frame: n, img: demo.Surface().Snapshot()}:
				return nil
			case <-gctx.Done():
				return gctx.Err()
			}
		}))
	interleave.NewLoop(demo.Interleaver, h).Start()

	g.Go(func() error {
		defer close(snapshots)
		return h.Run(gctx)
	})
	g.Go(func() error {
		for s := range snapshots {
			path := filepath.Join(cfg.Out, fmt.Sprintf("frame_%05d.png", s.frame))
			if err := savePNG(path, s.img); err != nil {
				return fmt.Errorf("write frame %d: %w", s.frame, err)
			}
			logger.Info("frame written", "path", path)
		}
		return nil
	})
	return g.Wait()
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

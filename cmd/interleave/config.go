package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/gogpu/gputypes"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/interleave/host"
)

// config is the demo configuration. Values come from defaults, then an
// optional TOML file, then explicitly set flags.
type config struct {
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Frames     uint64 `toml:"frames"`
	FPS        int    `toml:"fps"`
	Every      uint64 `toml:"every"`
	Out        string `toml:"out"`
	ClearColor string `toml:"clear_color"`

	Verbose bool `toml:"-"`
}

func defaultConfig() config {
	return config{
		Width:      800,
		Height:     600,
		Frames:     120,
		FPS:        60,
		Every:      30,
		Out:        "frames",
		ClearColor: "#000000",
	}
}

var errInvalidConfig = errors.New("invalid config")

// parseFlags builds the configuration from command-line arguments.
func parseFlags(args []string, stderr io.Writer) (config, error) {
	fs := flag.NewFlagSet("interleave", flag.ContinueOnError)
	fs.SetOutput(stderr)

	flagged := defaultConfig()
	fs.IntVar(&flagged.Width, "width", flagged.Width, "surface width")
	fs.IntVar(&flagged.Height, "height", flagged.Height, "surface height")
	fs.Uint64Var(&flagged.Frames, "frames", flagged.Frames, "frames to render, 0 runs until interrupted")
	fs.IntVar(&flagged.FPS, "fps", flagged.FPS, "frames per second")
	fs.Uint64Var(&flagged.Every, "every", flagged.Every, "write a PNG every N frames, 0 writes only the last")
	fs.StringVar(&flagged.Out, "out", flagged.Out, "output directory for PNG frames")
	fs.BoolVar(&flagged.Verbose, "v", false, "debug logging")
	configPath := fs.String("config", "", "TOML config file")

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	cfg := defaultConfig()
	if *configPath != "" {
		if err := loadConfig(*configPath, &cfg); err != nil {
			return config{}, err
		}
	}

	// Explicit flags win over the file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Width = flagged.Width
		case "height":
			cfg.Height = flagged.Height
		case "frames":
			cfg.Frames = flagged.Frames
		case "fps":
			cfg.FPS = flagged.FPS
		case "every":
			cfg.Every = flagged.Every
		case "out":
			cfg.Out = flagged.Out
		case "v":
			cfg.Verbose = flagged.Verbose
		}
	})

	return cfg, cfg.validate()
}

// loadConfig decodes the TOML file at path into cfg. Unknown keys are
// rejected.
func loadConfig(path string, cfg *config) error {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	return decodeConfig(data, cfg)
}

func decodeConfig(data []byte, cfg *config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}
	return nil
}

func (c config) validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: size %dx%d", errInvalidConfig, c.Width, c.Height)
	case c.FPS <= 0 || c.FPS > host.MaxFPS:
		return fmt.Errorf("%w: fps %d", errInvalidConfig, c.FPS)
	case c.Out == "":
		return fmt.Errorf("%w: empty output directory", errInvalidConfig)
	}
	if _, err := c.clearColor(); err != nil {
		return err
	}
	return nil
}

// clearColor parses ClearColor as a hex color such as "#1e1e2e".
func (c config) clearColor() (gputypes.Color, error) {
	col, err := colorful.Hex(c.ClearColor)
	if err != nil {
		return gputypes.Color{}, fmt.Errorf("%w: clear_color %q: %w", errInvalidConfig, c.ClearColor, err)
	}
	col = col.Clamped()
	return gputypes.Color{R: col.R, G: col.G, B: col.B, A: 1}, nil
}

// shouldWrite reports whether frame n is written to disk.
func (c config) shouldWrite(n uint64) bool {
	if c.Frames > 0 && n == c.Frames {
		return true
	}
	return c.Every > 0 && n%c.Every == 0
}

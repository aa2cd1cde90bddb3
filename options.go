package interleave

import (
	"log/slog"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// DefaultStep is the rotation applied to the 3D scene per frame, in radians
// per axis.
const DefaultStep = 0.01

// DefaultLogoText is the text rendered into the demo sprite.
const DefaultLogoText = "gogpu"

// Option configures an Interleaver or Demo during creation.
//
// Example:
//
//	demo, err := interleave.NewDemo(800, 600,
//	    interleave.WithTimeStep(0.02),
//	    interleave.WithLogger(slog.Default()))
type Option func(*options)

// options holds optional configuration.
type options struct {
	logger     *slog.Logger
	step       float64
	device     gpucontext.DeviceProvider
	clearColor gputypes.Color
	logoText   string
}

// defaultOptions returns the default options.
func defaultOptions() options {
	return options{
		step:       DefaultStep,
		clearColor: gputypes.Color{R: 0, G: 0, B: 0, A: 1},
		logoText:   DefaultLogoText,
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = Logger()
	}
	return o
}

// WithLogger sets the logger. By default the package-wide logger from
// Logger is used.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithTimeStep sets the per-frame step used when a FrameState carries none.
// Non-positive values are ignored.
func WithTimeStep(step float64) Option {
	return func(o *options) {
		if step > 0 {
			o.step = step
		}
	}
}

// WithDevice attaches a device provider to the surface NewDemo creates.
// Without it the surface uses a null device and draws on the CPU only.
func WithDevice(d gpucontext.DeviceProvider) Option {
	return func(o *options) {
		o.device = d
	}
}

// WithClearColor sets the color the 3D pass clears to.
func WithClearColor(c gputypes.Color) Option {
	return func(o *options) {
		o.clearColor = c
	}
}

// WithLogoText sets the text of the demo sprite. Empty text is ignored.
func WithLogoText(text string) Option {
	return func(o *options) {
		if text != "" {
			o.logoText = text
		}
	}
}

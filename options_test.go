package interleave

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/gogpu/gputypes"
)

func TestDefaultOptions(t *testing.T) {
	o := applyOptions(nil)
	if o.step != DefaultStep {
		t.Errorf("step = %v, want %v", o.step, DefaultStep)
	}
	if o.logoText != DefaultLogoText {
		t.Errorf("logoText = %q, want %q", o.logoText, DefaultLogoText)
	}
	if o.clearColor != (gputypes.Color{A: 1}) {
		t.Errorf("clearColor = %+v, want opaque black", o.clearColor)
	}
	if o.logger == nil || o.device != nil {
		t.Errorf("logger = %v, device = %v", o.logger, o.device)
	}
}

func TestOptionsIgnoreInvalid(t *testing.T) {
	o := applyOptions([]Option{WithTimeStep(-1), WithTimeStep(0), WithLogoText("")})
	if o.step != DefaultStep {
		t.Errorf("step = %v, want default", o.step)
	}
	if o.logoText != DefaultLogoText {
		t.Errorf("logoText = %q, want default", o.logoText)
	}
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, nil))
	if o := applyOptions([]Option{WithLogger(l)}); o.logger != l {
		t.Error("WithLogger not applied")
	}
}

func TestWithLogoText(t *testing.T) {
	d := newTestDemo(t, 64, 48)
	other := newTestDemo(t, 64, 48, WithLogoText("a much longer logo"))
	w1, _ := d.Overlay.Sprite.Size()
	w2, _ := other.Overlay.Sprite.Size()
	if w2 <= w1 {
		t.Errorf("sprite width %d with longer text, want > %d", w2, w1)
	}
}

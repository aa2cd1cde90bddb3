// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scene2d

import (
	"errors"
	"testing"

	"github.com/go-text/typesetting/di"
)

func TestNewLogo(t *testing.T) {
	img, err := NewLogo("gogpu", 48)
	if err != nil {
		t.Fatalf("NewLogo() error = %v", err)
	}
	b := img.Bounds()
	if b.Dx() < 48 || b.Dy() < 48 {
		t.Fatalf("logo size = %v, too small", b)
	}

	var text, bar bool
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.RGBAAt(x, y)
			if c.R > 200 && c.G > 200 && c.B > 200 {
				text = true
			}
			if c == logoLeft || c == logoRight {
				bar = true
			}
		}
	}
	if !text {
		t.Error("logo has no text pixels")
	}
	if !bar {
		t.Error("logo has no bar pixels")
	}
}

func TestNewLogoEmpty(t *testing.T) {
	if _, err := NewLogo("", 32); !errors.Is(err, ErrEmptyText) {
		t.Errorf("NewLogo(\"\") error = %v, want ErrEmptyText", err)
	}
}

func TestParagraphDirection(t *testing.T) {
	if got := paragraphDirection("hello"); got != di.DirectionLTR {
		t.Errorf("paragraphDirection(latin) = %v, want LTR", got)
	}
	if got := paragraphDirection("שלום"); got != di.DirectionRTL {
		t.Errorf("paragraphDirection(hebrew) = %v, want RTL", got)
	}
}

func TestNewLogoCached(t *testing.T) {
	a, err := NewLogo("cached", 24)
	if err != nil {
		t.Fatal(err)
	}
	before := logos.Stats().Hits
	b, err := NewLogo("cached", 24)
	if err != nil {
		t.Fatal(err)
	}
	if logos.Stats().Hits != before+1 {
		t.Error("second NewLogo did not hit the cache")
	}
	if a.Bounds() != b.Bounds() {
		t.Errorf("bounds differ: %v vs %v", a.Bounds(), b.Bounds())
	}
	a.Pix[0] ^= 0xff
	if a.Pix[0] == b.Pix[0] {
		t.Error("logos share pixel memory")
	}
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scene2d

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/go-text/typesetting/di"
	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/draw"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"

	"github.com/gogpu/interleave/internal/texcache"
)

// ErrEmptyText is returned by NewLogo for empty text.
var ErrEmptyText = errors.New("scene2d: logo text is empty")

// Logo bar colors.
var (
	logoLeft  = color.RGBA{R: 0x04, G: 0x9e, B: 0xf4, A: 0xff}
	logoRight = color.RGBA{R: 0xe9, G: 0x1e, B: 0x63, A: 0xff}
)

type logoKey struct {
	text string
	size float64
}

// logos memoizes rendered logos; font parsing and shaping dominate their
// cost.
var logos = texcache.New[logoKey](texcache.DefaultCapacity)

// NewLogo renders text in Go Regular at size pixels into a premultiplied
// texture with a two-tone bar underneath. The texture is sized to the
// shaped text, so kerning and ligatures are accounted for.
//
// Each call returns a new image that the caller may modify.
func NewLogo(text string, size float64) (*image.RGBA, error) {
	if text == "" {
		return nil, ErrEmptyText
	}
	return logos.GetOrCreate(logoKey{text: text, size: size}, func() (*image.RGBA, error) {
		return renderLogo(text, size)
	})
}

func renderLogo(text string, size float64) (*image.RGBA, error) {
	advance, err := shapedAdvance(text, size)
	if err != nil {
		return nil, err
	}

	otf, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("scene2d: parse logo font: %w", err)
	}
	face, err := opentype.NewFace(otf, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: xfont.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("scene2d: create logo face: %w", err)
	}
	defer func() {
		_ = face.Close()
	}()

	if measured := xfont.MeasureString(face, text); measured > advance {
		advance = measured
	}

	metrics := face.Metrics()
	pad := int(size / 4)
	bar := max(int(size/8), 2)
	width := advance.Ceil() + 2*pad
	textHeight := (metrics.Ascent + metrics.Descent).Ceil()
	height := textHeight + bar + 3*pad

	img := image.NewRGBA(image.Rect(0, 0, width, height))

	drawer := &xfont.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(pad), Y: fixed.I(pad) + metrics.Ascent},
	}
	drawer.DrawString(text)

	barTop := pad + textHeight + pad
	mid := width / 2
	draw.Draw(img, image.Rect(pad, barTop, mid, barTop+bar), image.NewUniform(logoLeft), image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(mid, barTop, width-pad, barTop+bar), image.NewUniform(logoRight), image.Point{}, draw.Src)

	return img, nil
}

// shapedAdvance shapes text with HarfBuzz and returns its advance width.
func shapedAdvance(text string, size float64) (fixed.Int26_6, error) {
	parsed, err := gtfont.ParseTTF(bytes.NewReader(goregular.TTF))
	if err != nil {
		return 0, fmt.Errorf("scene2d: parse logo font: %w", err)
	}

	runes := []rune(text)
	var shaper shaping.HarfbuzzShaper
	out := shaper.Shape(shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: paragraphDirection(text),
		Face:      parsed,
		Size:      fixed.Int26_6(size * 64),
		Script:    language.LookupScript(runes[0]),
		Language:  language.NewLanguage("en"),
	})

	adv := out.Advance
	if adv < 0 {
		adv = -adv
	}
	return adv, nil
}

// paragraphDirection returns the base direction of text per the Unicode
// bidirectional algorithm.
func paragraphDirection(text string) di.Direction {
	p := bidi.Paragraph{}
	if _, err := p.SetString(text); err != nil {
		return di.DirectionLTR
	}
	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return di.DirectionLTR
	}
	run := ordering.Run(0)
	if run.Direction() == bidi.RightToLeft {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

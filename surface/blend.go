// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import "github.com/gogpu/gputypes"

// blend writes src into the color buffer at byte offset off using the
// current blend state.
func (s *Surface) blend(off int, src [4]float32) {
	pix := s.color.Pix[off : off+4 : off+4]
	b := s.state.Blend
	if !b.Enabled {
		for k := 0; k < 4; k++ {
			pix[k] = unitToByte(src[k])
		}
		return
	}

	var dst [4]float32
	for k := 0; k < 4; k++ {
		dst[k] = float32(pix[k]) / 255
	}
	for k := 0; k < 3; k++ {
		pix[k] = unitToByte(blendChannel(b.Color, k, src, dst))
	}
	pix[3] = unitToByte(blendChannel(b.Alpha, 3, src, dst))
}

func blendChannel(c BlendComponent, k int, src, dst [4]float32) float32 {
	switch c.Operation {
	case gputypes.BlendOperationMin:
		return min(src[k], dst[k])
	case gputypes.BlendOperationMax:
		return max(src[k], dst[k])
	}

	s := src[k] * factor(c.SrcFactor, k, src, dst)
	d := dst[k] * factor(c.DstFactor, k, src, dst)
	switch c.Operation {
	case gputypes.BlendOperationSubtract:
		return s - d
	case gputypes.BlendOperationReverseSubtract:
		return d - s
	default:
		return s + d
	}
}

func factor(f gputypes.BlendFactor, k int, src, dst [4]float32) float32 {
	switch f {
	case gputypes.BlendFactorZero:
		return 0
	case gputypes.BlendFactorOne:
		return 1
	case gputypes.BlendFactorSrc:
		return src[k]
	case gputypes.BlendFactorOneMinusSrc:
		return 1 - src[k]
	case gputypes.BlendFactorSrcAlpha:
		return src[3]
	case gputypes.BlendFactorOneMinusSrcAlpha:
		return 1 - src[3]
	case gputypes.BlendFactorDst:
		return dst[k]
	case gputypes.BlendFactorOneMinusDst:
		return 1 - dst[k]
	case gputypes.BlendFactorDstAlpha:
		return dst[3]
	case gputypes.BlendFactorOneMinusDstAlpha:
		return 1 - dst[3]
	default:
		return 1
	}
}

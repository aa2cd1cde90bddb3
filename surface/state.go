// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import "github.com/gogpu/gputypes"

// Handle identifies a program or buffer object created on a Surface.
// The zero Handle means "nothing bound".
type Handle uint64

// State is the graphics-context state shared by all renderers drawing to a
// surface. It is comparable, so two states can be checked with ==.
type State struct {
	// DepthTest enables the depth test. Depth writes only happen while the
	// test is enabled.
	DepthTest bool

	// DepthWrite enables writes to the depth buffer.
	DepthWrite bool

	// DepthCompare is the depth comparison function.
	DepthCompare gputypes.CompareFunction

	// Blend is the color blending configuration.
	Blend BlendState

	// CullMode defines which faces to cull.
	CullMode gputypes.CullMode

	// FrontFace defines which winding is considered front-facing.
	FrontFace gputypes.FrontFace

	// Program is the bound program, 0 if none.
	Program Handle

	// VertexBuffer is the bound vertex buffer, 0 if none.
	VertexBuffer Handle

	// ClearColor is used by Clear for the color buffer.
	ClearColor gputypes.Color
}

// BlendState describes the color blending configuration.
// A disabled BlendState writes source fragments unchanged.
type BlendState struct {
	// Enabled turns blending on.
	Enabled bool

	// Color is the color blending configuration.
	Color BlendComponent

	// Alpha is the alpha blending configuration.
	Alpha BlendComponent
}

// BlendComponent describes a blend component (color or alpha).
type BlendComponent struct {
	// SrcFactor is the source blend factor.
	SrcFactor gputypes.BlendFactor

	// DstFactor is the destination blend factor.
	DstFactor gputypes.BlendFactor

	// Operation is the blend operation.
	Operation gputypes.BlendOperation
}

// DefaultState returns the state of a freshly created context.
func DefaultState() State {
	return State{
		DepthTest:    false,
		DepthWrite:   true,
		DepthCompare: gputypes.CompareFunctionLess,
		Blend:        BlendDisabled(),
		CullMode:     gputypes.CullModeNone,
		FrontFace:    gputypes.FrontFaceCCW,
		ClearColor:   gputypes.Color{R: 0, G: 0, B: 0, A: 1},
	}
}

// BlendDisabled returns a disabled blend state.
func BlendDisabled() BlendState {
	return BlendState{
		Color: BlendComponent{
			SrcFactor: gputypes.BlendFactorOne,
			DstFactor: gputypes.BlendFactorZero,
			Operation: gputypes.BlendOperationAdd,
		},
		Alpha: BlendComponent{
			SrcFactor: gputypes.BlendFactorOne,
			DstFactor: gputypes.BlendFactorZero,
			Operation: gputypes.BlendOperationAdd,
		},
	}
}

// BlendPremultiplied returns source-over blending for premultiplied colors.
func BlendPremultiplied() BlendState {
	return BlendState{
		Enabled: true,
		Color: BlendComponent{
			SrcFactor: gputypes.BlendFactorOne,
			DstFactor: gputypes.BlendFactorOneMinusSrcAlpha,
			Operation: gputypes.BlendOperationAdd,
		},
		Alpha: BlendComponent{
			SrcFactor: gputypes.BlendFactorOne,
			DstFactor: gputypes.BlendFactorOneMinusSrcAlpha,
			Operation: gputypes.BlendOperationAdd,
		},
	}
}

// BlendAdditive returns additive blending.
func BlendAdditive() BlendState {
	return BlendState{
		Enabled: true,
		Color: BlendComponent{
			SrcFactor: gputypes.BlendFactorOne,
			DstFactor: gputypes.BlendFactorOne,
			Operation: gputypes.BlendOperationAdd,
		},
		Alpha: BlendComponent{
			SrcFactor: gputypes.BlendFactorOne,
			DstFactor: gputypes.BlendFactorOne,
			Operation: gputypes.BlendOperationAdd,
		},
	}
}

// BlendScreen returns screen blending for premultiplied colors.
// Formula: D' = S + D * (1 - S)
func BlendScreen() BlendState {
	return BlendState{
		Enabled: true,
		Color: BlendComponent{
			SrcFactor: gputypes.BlendFactorOne,
			DstFactor: gputypes.BlendFactorOneMinusSrc,
			Operation: gputypes.BlendOperationAdd,
		},
		Alpha: BlendComponent{
			SrcFactor: gputypes.BlendFactorOne,
			DstFactor: gputypes.BlendFactorOneMinusSrcAlpha,
			Operation: gputypes.BlendOperationAdd,
		},
	}
}

// BlendMultiply returns multiply blending for premultiplied colors.
// Formula: D' = S * D + D * (1 - Sa)
func BlendMultiply() BlendState {
	return BlendState{
		Enabled: true,
		Color: BlendComponent{
			SrcFactor: gputypes.BlendFactorDst,
			DstFactor: gputypes.BlendFactorOneMinusSrcAlpha,
			Operation: gputypes.BlendOperationAdd,
		},
		Alpha: BlendComponent{
			SrcFactor: gputypes.BlendFactorOne,
			DstFactor: gputypes.BlendFactorOneMinusSrcAlpha,
			Operation: gputypes.BlendOperationAdd,
		},
	}
}

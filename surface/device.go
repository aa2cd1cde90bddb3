// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// DeviceHandle provides GPU device access from the host application.
//
// A host that owns a GPU device passes it to the surface so renderers can
// share it. The surface never creates a device itself. Software-only hosts
// use [NullDevice].
type DeviceHandle = gpucontext.DeviceProvider

// NullDevice is a DeviceHandle that provides nil implementations.
// Used for CPU-only rendering where no GPU is available.
type NullDevice struct{}

// Device returns nil for the null device.
func (NullDevice) Device() gpucontext.Device { return nil }

// Queue returns nil for the null device.
func (NullDevice) Queue() gpucontext.Queue { return nil }

// Adapter returns nil for the null device.
func (NullDevice) Adapter() gpucontext.Adapter { return nil }

// AdapterInfo reports an unknown adapter for the null device.
func (NullDevice) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{Type: gpucontext.AdapterTypeUnknown}
}

// SurfaceFormat returns undefined format for the null device.
func (NullDevice) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatUndefined
}

// Ensure NullDevice implements DeviceHandle.
var _ DeviceHandle = NullDevice{}

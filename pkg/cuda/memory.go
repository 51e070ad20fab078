// Copyright 2026 go-cuda contributors
// SPDX-License-Identifier: Apache-2.0

package cuda

import (
	"math"
	"runtime"
)

// DeviceBuffer owns a device memory allocation. Buffers are created with
// MemAlloc and released with Free; a finalizer releases buffers that were
// never freed explicitly, but only Free lets the caller observe a release
// failure.
type DeviceBuffer struct {
	ptr  DevicePtr
	size uint64
}

// MemAlloc allocates size bytes of device memory.
//
// A request the driver cannot represent (zero bytes, or a size beyond the
// signed 64-bit range) fails with ErrInvalidMemoryAllocation before any
// driver call is made.
func MemAlloc(size uint64) (*DeviceBuffer, error) {
	if size == 0 || size > math.MaxInt64 {
		return nil, ErrInvalidMemoryAllocation
	}
	ptr, ret := drv.MemAlloc(size)
	if err := ret.ToError(); err != nil {
		return nil, err
	}
	b := &DeviceBuffer{ptr: ptr, size: size}
	runtime.SetFinalizer(b, finalizeBuffer)
	return b, nil
}

// Ptr returns the raw device pointer.
func (b *DeviceBuffer) Ptr() DevicePtr {
	return b.ptr
}

// Size returns the allocation size in bytes.
func (b *DeviceBuffer) Size() uint64 {
	return b.size
}

// Free releases the device memory. On failure the returned error is a
// *DropError[*DeviceBuffer] carrying the failure kind and the buffer, which
// is still live; the caller may retry or leak it deliberately. Freeing an
// already freed buffer is a no-op.
func (b *DeviceBuffer) Free() error {
	if b.ptr == 0 {
		return nil
	}
	if err := drv.MemFree(b.ptr).ToError(); err != nil {
		return &DropError[*DeviceBuffer]{Kind: err.(Error), Resource: b}
	}
	runtime.SetFinalizer(b, nil)
	b.ptr = 0
	b.size = 0
	return nil
}

func finalizeBuffer(b *DeviceBuffer) {
	if b.ptr == 0 {
		return
	}
	if err := drv.MemFree(b.ptr).ToError(); err != nil {
		releaseFailure("device_buffer", err)
		return
	}
	b.ptr = 0
	b.size = 0
}

// Copyright 2026 go-cuda contributors
// SPDX-License-Identifier: Apache-2.0

//go:build cgo
// +build cgo

package cuda

/*
#cgo LDFLAGS: -lcuda
#include <cuda.h>
*/
import "C"

import (
	"bytes"
	"unsafe"
)

// realDriver implements Driver over libcuda. It requires the NVIDIA driver
// (libcuda.so) to be installed on the host.
type realDriver struct{}

func newPlatformDriver() Driver {
	return &realDriver{}
}

func (*realDriver) Init(flags uint32) Result {
	return Result(C.cuInit(C.uint(flags)))
}

func (*realDriver) DriverGetVersion() (int, Result) {
	var v C.int
	ret := C.cuDriverGetVersion(&v)
	return int(v), Result(ret)
}

func (*realDriver) DeviceGetCount() (int, Result) {
	var n C.int
	ret := C.cuDeviceGetCount(&n)
	return int(n), Result(ret)
}

func (*realDriver) DeviceGet(ordinal int) (Device, Result) {
	var dev C.CUdevice
	ret := C.cuDeviceGet(&dev, C.int(ordinal))
	return Device(dev), Result(ret)
}

func (*realDriver) DeviceGetName(dev Device) (string, Result) {
	buf := make([]byte, 256)
	ret := C.cuDeviceGetName((*C.char)(unsafe.Pointer(&buf[0])), C.int(len(buf)), C.CUdevice(dev))
	if Result(ret) != Success {
		return "", Result(ret)
	}
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		buf = buf[:i]
	}
	return string(buf), Success
}

func (*realDriver) DeviceTotalMem(dev Device) (uint64, Result) {
	var n C.size_t
	ret := C.cuDeviceTotalMem(&n, C.CUdevice(dev))
	return uint64(n), Result(ret)
}

func (*realDriver) CtxCreate(flags uint32, dev Device) (ContextHandle, Result) {
	var ctx C.CUcontext
	ret := C.cuCtxCreate(&ctx, C.uint(flags), C.CUdevice(dev))
	return ContextHandle(uintptr(unsafe.Pointer(ctx))), Result(ret)
}

func (*realDriver) CtxDestroy(h ContextHandle) Result {
	return Result(C.cuCtxDestroy(C.CUcontext(unsafe.Pointer(h))))
}

func (*realDriver) MemAlloc(size uint64) (DevicePtr, Result) {
	var p C.CUdeviceptr
	ret := C.cuMemAlloc(&p, C.size_t(size))
	return DevicePtr(p), Result(ret)
}

func (*realDriver) MemFree(ptr DevicePtr) Result {
	return Result(C.cuMemFree(C.CUdeviceptr(ptr)))
}

func (*realDriver) GetErrorString(r Result) (string, Result) {
	var p *C.char
	ret := C.cuGetErrorString(C.CUresult(r), &p)
	if Result(ret) != Success {
		return "", Result(ret)
	}
	// The driver returns a borrowed pointer into its own storage; GoString
	// copies it out so nothing retains the pointer.
	return C.GoString(p), Success
}

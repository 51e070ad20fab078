// Copyright 2026 go-cuda contributors
// SPDX-License-Identifier: Apache-2.0

//go:build !cgo
// +build !cgo

package cuda

// stubDriver stands in for the real driver when the binary is built without
// CGO. Every entry point reports not-initialized, so callers see ordinary
// driver errors instead of a build failure. Rebuild with CGO_ENABLED=1 to
// talk to real hardware.
type stubDriver struct{}

func newPlatformDriver() Driver {
	return &stubDriver{}
}

func (*stubDriver) Init(flags uint32) Result {
	return Result(ErrNotInitialized)
}

func (*stubDriver) DriverGetVersion() (int, Result) {
	return 0, Result(ErrNotInitialized)
}

func (*stubDriver) DeviceGetCount() (int, Result) {
	return 0, Result(ErrNotInitialized)
}

func (*stubDriver) DeviceGet(ordinal int) (Device, Result) {
	return 0, Result(ErrNotInitialized)
}

func (*stubDriver) DeviceGetName(dev Device) (string, Result) {
	return "", Result(ErrNotInitialized)
}

func (*stubDriver) DeviceTotalMem(dev Device) (uint64, Result) {
	return 0, Result(ErrNotInitialized)
}

func (*stubDriver) CtxCreate(flags uint32, dev Device) (ContextHandle, Result) {
	return 0, Result(ErrNotInitialized)
}

func (*stubDriver) CtxDestroy(h ContextHandle) Result {
	return Result(ErrNotInitialized)
}

func (*stubDriver) MemAlloc(size uint64) (DevicePtr, Result) {
	return 0, Result(ErrNotInitialized)
}

func (*stubDriver) MemFree(ptr DevicePtr) Result {
	return Result(ErrNotInitialized)
}

func (*stubDriver) GetErrorString(r Result) (string, Result) {
	return "", Result(ErrInvalidValue)
}

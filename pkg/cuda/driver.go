// Copyright 2026 go-cuda contributors
// SPDX-License-Identifier: Apache-2.0

package cuda

// Device is a raw device handle (CUdevice).
type Device int32

// ContextHandle is a raw context handle (CUcontext).
type ContextHandle uintptr

// DevicePtr is a raw device memory pointer (CUdeviceptr).
type DevicePtr uintptr

// Driver is the foreign-function surface of the CUDA driver library used by
// this binding. Every entry point returns a raw Result exactly as the driver
// reported it; interpretation of the numeric status happens only in
// Result.ToError.
//
// Three implementations exist: the real cgo-backed driver (cgo builds), a
// stub that reports not-initialized (non-cgo builds), and MockDriver for
// testing without hardware.
type Driver interface {
	// Init initializes the driver (cuInit). Must succeed before any entry
	// point other than GetErrorString is used.
	Init(flags uint32) Result

	// DriverGetVersion returns the driver version encoded as
	// major*1000 + minor*10.
	DriverGetVersion() (int, Result)

	// DeviceGetCount returns the number of compute-capable devices.
	DeviceGetCount() (int, Result)

	// DeviceGet returns the device handle for the given ordinal.
	DeviceGet(ordinal int) (Device, Result)

	// DeviceGetName returns the product name of the device.
	DeviceGetName(dev Device) (string, Result)

	// DeviceTotalMem returns the total device memory in bytes.
	DeviceTotalMem(dev Device) (uint64, Result)

	// CtxCreate creates a context on the device and makes it current.
	CtxCreate(flags uint32, dev Device) (ContextHandle, Result)

	// CtxDestroy destroys the context.
	CtxDestroy(h ContextHandle) Result

	// MemAlloc allocates size bytes of device memory.
	MemAlloc(size uint64) (DevicePtr, Result)

	// MemFree releases device memory allocated with MemAlloc.
	MemFree(ptr DevicePtr) Result

	// GetErrorString looks up the driver's own message for a status code.
	// The driver documents this as callable without initialization and
	// thread-safe; the returned string is copied out of driver-owned
	// storage before this method returns.
	GetErrorString(r Result) (string, Result)
}

// drv is the active driver. The real (or stub, on non-cgo builds) driver is
// installed at package init; tests swap in a MockDriver via SetDriver.
var drv Driver = newPlatformDriver()

// SetDriver replaces the active driver and returns the previous one.
// Intended for tests:
//
//	old := cuda.SetDriver(cuda.NewMockDriver(2))
//	defer cuda.SetDriver(old)
func SetDriver(d Driver) Driver {
	if d == nil {
		panic("cuda: SetDriver called with nil Driver")
	}
	old := drv
	drv = d
	return old
}

// Copyright 2026 go-cuda contributors
// SPDX-License-Identifier: Apache-2.0

package cuda

// Compile-time interface satisfaction checks.
var (
	_ Driver = UnimplementedDriver{}
)

// UnimplementedDriver provides default implementations that report
// not-supported for every Driver entry point. Embed this in a partial
// implementation for forward compatibility when entry points are added to
// the interface.
//
// Example:
//
//	type MyDriver struct {
//	    cuda.UnimplementedDriver
//	    // your fields
//	}
type UnimplementedDriver struct{}

// Init reports not-supported.
func (UnimplementedDriver) Init(_ uint32) Result {
	return Result(ErrNotSupported)
}

// DriverGetVersion reports not-supported.
func (UnimplementedDriver) DriverGetVersion() (int, Result) {
	return 0, Result(ErrNotSupported)
}

// DeviceGetCount reports not-supported.
func (UnimplementedDriver) DeviceGetCount() (int, Result) {
	return 0, Result(ErrNotSupported)
}

// DeviceGet reports not-supported.
func (UnimplementedDriver) DeviceGet(_ int) (Device, Result) {
	return 0, Result(ErrNotSupported)
}

// DeviceGetName reports not-supported.
func (UnimplementedDriver) DeviceGetName(_ Device) (string, Result) {
	return "", Result(ErrNotSupported)
}

// DeviceTotalMem reports not-supported.
func (UnimplementedDriver) DeviceTotalMem(_ Device) (uint64, Result) {
	return 0, Result(ErrNotSupported)
}

// CtxCreate reports not-supported.
func (UnimplementedDriver) CtxCreate(_ uint32, _ Device) (ContextHandle, Result) {
	return 0, Result(ErrNotSupported)
}

// CtxDestroy reports not-supported.
func (UnimplementedDriver) CtxDestroy(_ ContextHandle) Result {
	return Result(ErrNotSupported)
}

// MemAlloc reports not-supported.
func (UnimplementedDriver) MemAlloc(_ uint64) (DevicePtr, Result) {
	return 0, Result(ErrNotSupported)
}

// MemFree reports not-supported.
func (UnimplementedDriver) MemFree(_ DevicePtr) Result {
	return Result(ErrNotSupported)
}

// GetErrorString reports not-supported.
func (UnimplementedDriver) GetErrorString(_ Result) (string, Result) {
	return "", Result(ErrNotSupported)
}

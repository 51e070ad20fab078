// Copyright 2026 go-cuda contributors
// SPDX-License-Identifier: Apache-2.0

package cuda

import (
	"fmt"
	"sync"
)

// MockDriver is a mock implementation of the Driver interface for testing.
// It simulates a small set of fake GPUs and a working allocator without
// requiring real hardware.
//
// Individual entry points can be forced to fail through Results, and the
// message table is backed by ErrorStrings, so tests can exercise every
// failure path of the binding deterministically.
type MockDriver struct {
	// Results forces the raw status returned by the named entry point
	// ("Init", "MemFree", ...). Entry points without an entry succeed.
	Results map[string]Result

	// ErrorStrings backs GetErrorString. Statuses without an entry fail
	// the lookup with an invalid-value status, matching the driver's
	// behavior for codes it does not recognize.
	ErrorStrings map[Result]string

	mu      sync.Mutex
	devices []mockDevice
	calls   []string

	nextPtr  DevicePtr
	live     map[DevicePtr]uint64
	nextCtx  ContextHandle
	liveCtxs map[ContextHandle]Device
}

type mockDevice struct {
	name     string
	totalMem uint64
}

// NewMockDriver creates a mock driver with the specified number of fake GPU
// devices.
func NewMockDriver(deviceCount int) *MockDriver {
	if deviceCount <= 0 {
		deviceCount = 2 // Default to 2 fake GPUs
	}

	m := &MockDriver{
		Results: make(map[string]Result),
		ErrorStrings: map[Result]string{
			Result(ErrInvalidValue):   "invalid argument",
			Result(ErrOutOfMemory):    "out of memory",
			Result(ErrNotInitialized): "initialization error",
			Result(ErrInvalidHandle):  "invalid resource handle",
			Result(ErrIllegalAddress): "an illegal memory access was encountered",
			Result(ErrLaunchFailed):   "unspecified launch failure",
			Result(ErrUnknown):        "unknown error",
		},
		devices:  make([]mockDevice, deviceCount),
		nextPtr:  0xd0000000,
		live:     make(map[DevicePtr]uint64),
		nextCtx:  0x1000,
		liveCtxs: make(map[ContextHandle]Device),
	}

	for i := range m.devices {
		m.devices[i] = mockDevice{
			name:     fmt.Sprintf("NVIDIA A100-SXM4-40GB (Mock %d)", i),
			totalMem: 42949672960, // 40 GB
		}
	}

	return m
}

// Calls returns the names of the entry points invoked so far, in order.
func (m *MockDriver) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.calls))
	copy(out, m.calls)
	return out
}

// record notes the call and returns the forced status for the entry point,
// or Success when none is configured.
func (m *MockDriver) record(name string) Result {
	m.calls = append(m.calls, name)
	if ret, ok := m.Results[name]; ok {
		return ret
	}
	return Success
}

// Init initializes the mock driver (no-op).
func (m *MockDriver) Init(flags uint32) Result {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.record("Init")
}

// DriverGetVersion reports a fixed CUDA 12.4 driver.
func (m *MockDriver) DriverGetVersion() (int, Result) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if ret := m.record("DriverGetVersion"); ret != Success {
		return 0, ret
	}
	return 12040, Success
}

// DeviceGetCount returns the number of fake devices.
func (m *MockDriver) DeviceGetCount() (int, Result) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if ret := m.record("DeviceGetCount"); ret != Success {
		return 0, ret
	}
	return len(m.devices), Success
}

// DeviceGet returns the handle for the given ordinal.
func (m *MockDriver) DeviceGet(ordinal int) (Device, Result) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if ret := m.record("DeviceGet"); ret != Success {
		return 0, ret
	}
	if ordinal < 0 || ordinal >= len(m.devices) {
		return 0, Result(ErrInvalidDevice)
	}
	return Device(ordinal), Success
}

// DeviceGetName returns the fake device name.
func (m *MockDriver) DeviceGetName(dev Device) (string, Result) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if ret := m.record("DeviceGetName"); ret != Success {
		return "", ret
	}
	if int(dev) < 0 || int(dev) >= len(m.devices) {
		return "", Result(ErrInvalidDevice)
	}
	return m.devices[dev].name, Success
}

// DeviceTotalMem returns the fake device memory size.
func (m *MockDriver) DeviceTotalMem(dev Device) (uint64, Result) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if ret := m.record("DeviceTotalMem"); ret != Success {
		return 0, ret
	}
	if int(dev) < 0 || int(dev) >= len(m.devices) {
		return 0, Result(ErrInvalidDevice)
	}
	return m.devices[dev].totalMem, Success
}

// CtxCreate creates a fake context on the device.
func (m *MockDriver) CtxCreate(flags uint32, dev Device) (ContextHandle, Result) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if ret := m.record("CtxCreate"); ret != Success {
		return 0, ret
	}
	if int(dev) < 0 || int(dev) >= len(m.devices) {
		return 0, Result(ErrInvalidDevice)
	}
	h := m.nextCtx
	m.nextCtx += 0x10
	m.liveCtxs[h] = dev
	return h, Success
}

// CtxDestroy destroys a fake context. Destroying an unknown or already
// destroyed handle reports invalid-context.
func (m *MockDriver) CtxDestroy(h ContextHandle) Result {
	m.mu.Lock()
	defer m.mu.Unlock()
	if ret := m.record("CtxDestroy"); ret != Success {
		return ret
	}
	if _, ok := m.liveCtxs[h]; !ok {
		return Result(ErrInvalidContext)
	}
	delete(m.liveCtxs, h)
	return Success
}

// MemAlloc hands out a fake device pointer.
func (m *MockDriver) MemAlloc(size uint64) (DevicePtr, Result) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if ret := m.record("MemAlloc"); ret != Success {
		return 0, ret
	}
	p := m.nextPtr
	step := (size + 255) &^ 255
	if step == 0 {
		step = 256
	}
	m.nextPtr += DevicePtr(step)
	m.live[p] = size
	return p, Success
}

// MemFree releases a fake allocation. Freeing an unknown or already freed
// pointer reports invalid-handle.
func (m *MockDriver) MemFree(ptr DevicePtr) Result {
	m.mu.Lock()
	defer m.mu.Unlock()
	if ret := m.record("MemFree"); ret != Success {
		return ret
	}
	if _, ok := m.live[ptr]; !ok {
		return Result(ErrInvalidHandle)
	}
	delete(m.live, ptr)
	return Success
}

// GetErrorString looks the status up in ErrorStrings.
func (m *MockDriver) GetErrorString(r Result) (string, Result) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if ret := m.record("GetErrorString"); ret != Success {
		return "", ret
	}
	if msg, ok := m.ErrorStrings[r]; ok {
		return msg, Success
	}
	return "", Result(ErrInvalidValue)
}

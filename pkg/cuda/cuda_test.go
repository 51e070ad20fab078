// Copyright 2026 go-cuda contributors
// SPDX-License-Identifier: Apache-2.0

package cuda

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withMockDriver installs a fresh MockDriver for the duration of the test
// and restores the previous driver afterwards.
func withMockDriver(t *testing.T, deviceCount int) *MockDriver {
	t.Helper()
	m := NewMockDriver(deviceCount)
	old := SetDriver(m)
	t.Cleanup(func() { SetDriver(old) })
	return m
}

func TestInit(t *testing.T) {
	withMockDriver(t, 2)
	assert.NoError(t, Init())
}

func TestInit_NoDevice(t *testing.T) {
	mock := withMockDriver(t, 2)
	mock.Results["Init"] = Result(ErrNoDevice)

	err := Init()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoDevice))
}

func TestDriverVersion(t *testing.T) {
	withMockDriver(t, 2)

	major, minor, err := DriverVersion()
	require.NoError(t, err)
	assert.Equal(t, 12, major)
	assert.Equal(t, 4, minor)
}

func TestDriverVersion_Error(t *testing.T) {
	mock := withMockDriver(t, 2)
	mock.Results["DriverGetVersion"] = Result(ErrNotInitialized)

	_, _, err := DriverVersion()
	assert.True(t, errors.Is(err, ErrNotInitialized))
}

func TestDeviceCount(t *testing.T) {
	withMockDriver(t, 3)

	n, err := DeviceCount()
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestDeviceGet(t *testing.T) {
	withMockDriver(t, 2)

	dev, err := DeviceGet(1)
	require.NoError(t, err)
	assert.Equal(t, Device(1), dev)
}

func TestDeviceGet_InvalidOrdinal(t *testing.T) {
	withMockDriver(t, 2)

	tests := []struct {
		name    string
		ordinal int
	}{
		{"negative", -1},
		{"out of range", 99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DeviceGet(tt.ordinal)
			assert.True(t, errors.Is(err, ErrInvalidDevice))
		})
	}
}

func TestDevice_Name(t *testing.T) {
	withMockDriver(t, 2)

	dev, err := DeviceGet(0)
	require.NoError(t, err)

	name, err := dev.Name()
	require.NoError(t, err)
	assert.Contains(t, name, "NVIDIA")
}

func TestDevice_TotalMem(t *testing.T) {
	withMockDriver(t, 2)

	dev, err := DeviceGet(0)
	require.NoError(t, err)

	mem, err := dev.TotalMem()
	require.NoError(t, err)
	assert.Equal(t, uint64(42949672960), mem)
}

func TestSetDriver_NilPanics(t *testing.T) {
	assert.Panics(t, func() { SetDriver(nil) })
}

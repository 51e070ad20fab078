// Copyright 2026 go-cuda contributors
// SPDX-License-Identifier: Apache-2.0

package cuda

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnimplementedDriver(t *testing.T) {
	var d Driver = UnimplementedDriver{}
	notSupported := Result(ErrNotSupported)

	assert.Equal(t, notSupported, d.Init(0))

	_, ret := d.DriverGetVersion()
	assert.Equal(t, notSupported, ret)

	_, ret = d.DeviceGetCount()
	assert.Equal(t, notSupported, ret)

	_, ret = d.DeviceGet(0)
	assert.Equal(t, notSupported, ret)

	_, ret = d.DeviceGetName(0)
	assert.Equal(t, notSupported, ret)

	_, ret = d.DeviceTotalMem(0)
	assert.Equal(t, notSupported, ret)

	_, ret = d.CtxCreate(0, 0)
	assert.Equal(t, notSupported, ret)

	assert.Equal(t, notSupported, d.CtxDestroy(0))

	_, ret = d.MemAlloc(16)
	assert.Equal(t, notSupported, ret)

	assert.Equal(t, notSupported, d.MemFree(0))

	_, ret = d.GetErrorString(Success)
	assert.Equal(t, notSupported, ret)
}

func TestUnimplementedDriver_Embedding(t *testing.T) {
	// A partial implementation stays a Driver as the interface grows.
	type partial struct {
		UnimplementedDriver
	}

	var d Driver = partial{}
	assert.Equal(t, Result(ErrNotSupported), d.Init(0))
}

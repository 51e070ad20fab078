// Copyright 2026 go-cuda contributors
// SPDX-License-Identifier: Apache-2.0

package cuda

// Name returns the product name of the device.
func (d Device) Name() (string, error) {
	name, ret := drv.DeviceGetName(d)
	if err := ret.ToError(); err != nil {
		return "", err
	}
	return name, nil
}

// TotalMem returns the total amount of device memory in bytes.
func (d Device) TotalMem() (uint64, error) {
	n, ret := drv.DeviceTotalMem(d)
	if err := ret.ToError(); err != nil {
		return 0, err
	}
	return n, nil
}

// Copyright 2026 go-cuda contributors
// SPDX-License-Identifier: Apache-2.0

package cuda

import (
	"github.com/sirupsen/logrus"

	"github.com/ArangoGutierrez/go-cuda/pkg/metrics"
)

// Init initializes the driver. It must be called once, before any other
// operation in this package except error rendering, which the driver
// documents as usable without initialization.
func Init() error {
	return drv.Init(0).ToError()
}

// DriverVersion returns the installed driver's CUDA version.
func DriverVersion() (major, minor int, err error) {
	v, ret := drv.DriverGetVersion()
	if err := ret.ToError(); err != nil {
		return 0, 0, err
	}
	return v / 1000, (v % 1000) / 10, nil
}

// DeviceCount returns the number of compute-capable devices.
func DeviceCount() (int, error) {
	n, ret := drv.DeviceGetCount()
	if err := ret.ToError(); err != nil {
		return 0, err
	}
	return n, nil
}

// DeviceGet returns the device with the given ordinal.
func DeviceGet(ordinal int) (Device, error) {
	dev, ret := drv.DeviceGet(ordinal)
	if err := ret.ToError(); err != nil {
		return 0, err
	}
	return dev, nil
}

// releaseFailure is the process-wide diagnostic channel for implicit release
// paths. A finalizer cannot return an error, so failures there are logged
// and counted instead of aborting the process.
func releaseFailure(resource string, err error) {
	metrics.ReleaseFailuresTotal.WithLabelValues(resource).Inc()
	logrus.WithFields(logrus.Fields{
		"resource": resource,
	}).WithError(err).Warn("implicit release failed; resource leaked")
}

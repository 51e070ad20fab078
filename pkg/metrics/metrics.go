// Copyright 2026 go-cuda contributors
// SPDX-License-Identifier: Apache-2.0

// Package metrics provides Prometheus metrics for the binding and its tools.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ReleaseFailuresTotal counts driver handle releases that failed on an
	// implicit release path (finalizer). Explicit releases report their
	// failures to the caller instead.
	ReleaseFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cuda_release_failures_total",
			Help: "Driver handle releases that failed on an implicit release path",
		},
		[]string{"resource"},
	)

	// DriverErrorsTotal counts driver errors observed by polling tools,
	// labeled by the driver's numeric status code.
	DriverErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cuda_driver_errors_total",
			Help: "Driver errors observed, by numeric status code",
		},
		[]string{"code"},
	)

	// DevicesVisible tracks the number of compute-capable devices the
	// driver currently reports.
	DevicesVisible = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cuda_devices_visible",
			Help: "Number of compute-capable devices reported by the driver",
		},
	)

	// DeviceMemoryTotalBytes tracks total device memory per device ordinal.
	DeviceMemoryTotalBytes = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cuda_device_memory_total_bytes",
			Help: "Total device memory in bytes",
		},
		[]string{"device"},
	)
)

// Copyright 2026 go-cuda contributors
// SPDX-License-Identifier: Apache-2.0

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestReleaseFailuresTotal(t *testing.T) {
	c := ReleaseFailuresTotal.WithLabelValues("test_resource")
	before := testutil.ToFloat64(c)

	c.Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(c))
}

func TestDriverErrorsTotal(t *testing.T) {
	c := DriverErrorsTotal.WithLabelValues("700")
	before := testutil.ToFloat64(c)

	c.Inc()
	c.Inc()
	assert.Equal(t, before+2, testutil.ToFloat64(c))
}

func TestDeviceGauges(t *testing.T) {
	DevicesVisible.Set(2)
	assert.Equal(t, float64(2), testutil.ToFloat64(DevicesVisible))

	g := DeviceMemoryTotalBytes.WithLabelValues("0")
	g.Set(42949672960)
	assert.Equal(t, float64(42949672960), testutil.ToFloat64(g))
}

// Copyright 2026 go-cuda contributors
// SPDX-License-Identifier: Apache-2.0

package cuda

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemAlloc_InvalidSize(t *testing.T) {
	tests := []struct {
		name string
		size uint64
	}{
		{"zero", 0},
		{"beyond signed range", math.MaxInt64 + 1},
		{"max uint64", math.MaxUint64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := withMockDriver(t, 1)

			buf, err := MemAlloc(tt.size)
			assert.Nil(t, buf)
			assert.True(t, errors.Is(err, ErrInvalidMemoryAllocation))

			// The guard fires before the driver is involved.
			assert.Empty(t, mock.Calls())
		})
	}
}

func TestMemAlloc_Free(t *testing.T) {
	withMockDriver(t, 1)

	buf, err := MemAlloc(1024)
	require.NoError(t, err)
	assert.NotZero(t, buf.Ptr())
	assert.Equal(t, uint64(1024), buf.Size())

	require.NoError(t, buf.Free())
	assert.Zero(t, buf.Ptr())

	// Freeing an already freed buffer is a no-op.
	assert.NoError(t, buf.Free())
}

func TestMemAlloc_DriverOutOfMemory(t *testing.T) {
	mock := withMockDriver(t, 1)
	mock.Results["MemAlloc"] = Result(ErrOutOfMemory)

	buf, err := MemAlloc(1024)
	assert.Nil(t, buf)
	assert.True(t, errors.Is(err, ErrOutOfMemory))
}

func TestFree_FailureReturnsResource(t *testing.T) {
	mock := withMockDriver(t, 1)

	buf, err := MemAlloc(2048)
	require.NoError(t, err)
	ptr := buf.Ptr()

	mock.Results["MemFree"] = Result(ErrInvalidHandle)

	err = buf.Free()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidHandle))

	var de *DropError[*DeviceBuffer]
	require.True(t, errors.As(err, &de))
	assert.Equal(t, ErrInvalidHandle, de.Kind)

	// The un-released buffer comes back by identity, still live.
	assert.Same(t, buf, de.Resource)
	assert.Equal(t, ptr, de.Resource.Ptr())

	// Once the failure clears, the release can be retried.
	delete(mock.Results, "MemFree")
	assert.NoError(t, de.Resource.Free())
	assert.Zero(t, buf.Ptr())
}

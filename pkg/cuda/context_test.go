// Copyright 2026 go-cuda contributors
// SPDX-License-Identifier: Apache-2.0

package cuda

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContext_Destroy(t *testing.T) {
	withMockDriver(t, 1)

	ctx, err := NewContext(Device(0), 0)
	require.NoError(t, err)
	assert.NotZero(t, ctx.Handle())

	require.NoError(t, ctx.Destroy())
	assert.Zero(t, ctx.Handle())

	// Destroying an already destroyed context is a no-op.
	assert.NoError(t, ctx.Destroy())
}

func TestNewContext_InvalidDevice(t *testing.T) {
	withMockDriver(t, 1)

	ctx, err := NewContext(Device(7), 0)
	assert.Nil(t, ctx)
	assert.True(t, errors.Is(err, ErrInvalidDevice))
}

func TestContextDestroy_FailureReturnsResource(t *testing.T) {
	mock := withMockDriver(t, 1)

	ctx, err := NewContext(Device(0), 0)
	require.NoError(t, err)

	mock.Results["CtxDestroy"] = Result(ErrContextIsDestroyed)

	err = ctx.Destroy()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrContextIsDestroyed))

	var de *DropError[*Context]
	require.True(t, errors.As(err, &de))
	assert.Same(t, ctx, de.Resource)
	assert.NotZero(t, de.Resource.Handle())

	delete(mock.Results, "CtxDestroy")
	assert.NoError(t, de.Resource.Destroy())
}

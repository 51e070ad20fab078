// Copyright 2026 go-cuda contributors
// SPDX-License-Identifier: Apache-2.0

package cuda

import "runtime"

// Context owns a driver context handle. Contexts are created with
// NewContext and released with Destroy; a finalizer releases contexts that
// were never destroyed explicitly, but only Destroy lets the caller observe
// a release failure.
type Context struct {
	h ContextHandle
}

// NewContext creates a context on the device and makes it current on the
// calling thread.
func NewContext(dev Device, flags uint32) (*Context, error) {
	h, ret := drv.CtxCreate(flags, dev)
	if err := ret.ToError(); err != nil {
		return nil, err
	}
	c := &Context{h: h}
	runtime.SetFinalizer(c, finalizeContext)
	return c, nil
}

// Handle returns the raw driver handle.
func (c *Context) Handle() ContextHandle {
	return c.h
}

// Destroy releases the context. On failure the returned error is a
// *DropError[*Context] carrying the failure kind and the context, which is
// still live; the caller may retry or leak it deliberately. Destroying an
// already destroyed context is a no-op.
func (c *Context) Destroy() error {
	if c.h == 0 {
		return nil
	}
	if err := drv.CtxDestroy(c.h).ToError(); err != nil {
		return &DropError[*Context]{Kind: err.(Error), Resource: c}
	}
	runtime.SetFinalizer(c, nil)
	c.h = 0
	return nil
}

func finalizeContext(c *Context) {
	if c.h == 0 {
		return
	}
	if err := drv.CtxDestroy(c.h).ToError(); err != nil {
		releaseFailure("context", err)
		return
	}
	c.h = 0
}

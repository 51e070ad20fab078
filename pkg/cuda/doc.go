// Copyright 2026 go-cuda contributors
// SPDX-License-Identifier: Apache-2.0

// Package cuda is a safe host-side binding to the CUDA driver API.
//
// # Error handling
//
// Nearly every driver entry point returns a status code, and some of them
// (asynchronous launches in particular) can surface failures from unrelated
// prior work. The binding therefore translates every status into a typed
// Error before anything else sees it: raw Result values exist only at the
// Driver boundary, and Result.ToError is the single funnel from driver
// numerics to typed errors.
//
// Fallible operations return the ordinary Go (T, error) pair. The error, if
// non-nil, is either an Error kind directly or wraps one, so callers match
// with errors.Is:
//
//	buf, err := cuda.MemAlloc(n)
//	if errors.Is(err, cuda.ErrOutOfMemory) {
//	    // back off and retry smaller
//	}
//
// Explicit-release operations (Context.Destroy, DeviceBuffer.Free) are the
// exception: release is the one operation whose failure path must not
// destroy the resource, so they return a *DropError carrying both the kind
// and the still-live resource. Implicit release through finalizers is
// best-effort; its failures are logged and counted, never fatal.
//
// This layer reports, it does not recover, and it deliberately offers no
// severity or transience classification. An ErrECCUncorrectable and an
// ErrNotReady look the same to this package; policy belongs to callers that
// know their operational context.
package cuda

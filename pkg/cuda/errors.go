// Copyright 2026 go-cuda contributors
// SPDX-License-Identifier: Apache-2.0

package cuda

import "fmt"

// Error identifies a single failure mode surfaced by the binding.
//
// Driver-origin kinds carry the driver's own CUresult code as their numeric
// value, so the code can always be recovered without a lookup table.
// Binding-origin kinds (conditions the driver cannot express) live at
// 100000 and above, well outside the driver's documented range.
//
// The set of kinds grows as NVIDIA adds status codes, so switches over Error
// must keep a default arm; Result.ToError already collapses statuses this
// version does not know about into ErrUnknown.
type Error uint32

// Driver-origin kinds. Each value is the corresponding CUresult code.
const (
	ErrInvalidValue                Error = 1
	ErrOutOfMemory                 Error = 2
	ErrNotInitialized              Error = 3
	ErrDeinitialized               Error = 4
	ErrProfilerDisabled            Error = 5
	ErrProfilerNotInitialized      Error = 6
	ErrProfilerAlreadyStarted      Error = 7
	ErrProfilerAlreadyStopped      Error = 8
	ErrNoDevice                    Error = 100
	ErrInvalidDevice               Error = 101
	ErrInvalidImage                Error = 200
	ErrInvalidContext              Error = 201
	ErrContextAlreadyCurrent       Error = 202
	ErrMapFailed                   Error = 205
	ErrUnmapFailed                 Error = 206
	ErrArrayIsMapped               Error = 207
	ErrAlreadyMapped               Error = 208
	ErrNoBinaryForGPU              Error = 209
	ErrAlreadyAcquired             Error = 210
	ErrNotMapped                   Error = 211
	ErrNotMappedAsArray            Error = 212
	ErrNotMappedAsPointer          Error = 213
	ErrECCUncorrectable            Error = 214
	ErrUnsupportedLimit            Error = 215
	ErrContextAlreadyInUse         Error = 216
	ErrPeerAccessUnsupported       Error = 217
	ErrInvalidPTX                  Error = 218
	ErrInvalidGraphicsContext      Error = 219
	ErrNVLinkUncorrectable         Error = 220
	ErrInvalidSource               Error = 300
	ErrFileNotFound                Error = 301
	ErrSharedObjectSymbolNotFound  Error = 302
	ErrSharedObjectInitFailed      Error = 303
	ErrOperatingSystem             Error = 304
	ErrInvalidHandle               Error = 400
	ErrNotFound                    Error = 500
	ErrNotReady                    Error = 600
	ErrIllegalAddress              Error = 700
	ErrLaunchOutOfResources        Error = 701
	ErrLaunchTimeout               Error = 702
	ErrLaunchIncompatibleTexturing Error = 703
	ErrPeerAccessAlreadyEnabled    Error = 704
	ErrPeerAccessNotEnabled        Error = 705
	ErrPrimaryContextActive        Error = 708
	ErrContextIsDestroyed          Error = 709
	ErrAssert                      Error = 710
	ErrTooManyPeers                Error = 711
	ErrHostMemoryAlreadyRegistered Error = 712
	ErrHostMemoryNotRegistered     Error = 713
	ErrHardwareStackError          Error = 714
	ErrIllegalInstruction          Error = 715
	ErrMisalignedAddress           Error = 716
	ErrInvalidAddressSpace         Error = 717
	ErrInvalidPC                   Error = 718
	ErrLaunchFailed                Error = 719
	ErrNotPermitted                Error = 800
	ErrNotSupported                Error = 801
	ErrSystemNotReady              Error = 802
	ErrSystemDriverMismatch        Error = 803
	ErrCompatNotSupportedOnDevice  Error = 804
	ErrStreamCaptureUnsupported    Error = 900
	ErrStreamCaptureInvalidated    Error = 901
	ErrStreamCaptureMerge          Error = 902
	ErrStreamCaptureUnmatched      Error = 903
	ErrStreamCaptureUnjoined       Error = 904
	ErrStreamCaptureIsolation      Error = 905
	ErrStreamCaptureImplicit       Error = 906
	ErrCapturedEvent               Error = 907
	ErrStreamCaptureWrongThread    Error = 908
	ErrTimeout                     Error = 909
	ErrGraphExecUpdateFailure      Error = 910
	ErrUnknown                     Error = 999
)

// maxDriverError is the top of the driver's documented CUresult range.
const maxDriverError Error = 999

// bindingErrorBase is the floor of the range reserved for kinds minted by
// the binding itself. It must never overlap the driver range above.
const bindingErrorBase Error = 100000

// Binding-origin kinds.
const (
	// ErrInvalidMemoryAllocation is returned by the allocator when a
	// requested allocation is not representable (zero-size or overflowing),
	// before any driver call is attempted.
	ErrInvalidMemoryAllocation Error = bindingErrorBase + 100
)

// Code returns the numeric identity of the kind. For driver-origin kinds
// this is the CUresult code as returned by the driver.
func (e Error) Code() uint32 {
	return uint32(e)
}

// DriverOrigin reports whether the kind mirrors a driver status code, as
// opposed to a condition detected by the binding itself.
func (e Error) DriverOrigin() bool {
	return e <= maxDriverError
}

// Message renders the kind to a human-readable string.
//
// Binding-origin kinds render to fixed strings owned by this package.
// Driver-origin kinds delegate to the driver's own message table
// (cuGetErrorString), so wording stays faithful across driver releases; the
// driver documents the lookup as callable without initialization. If the
// lookup itself fails, Message returns that failure rather than a message.
func (e Error) Message() (string, error) {
	switch e {
	case ErrInvalidMemoryAllocation:
		return "Invalid memory allocation", nil
	}
	if !e.DriverOrigin() {
		return "", fmt.Errorf("no message for error kind %d", uint32(e))
	}
	msg, ret := drv.GetErrorString(Result(e))
	if err := ret.ToError(); err != nil {
		return "", fmt.Errorf("cuGetErrorString(%d): %w", uint32(e), err)
	}
	return msg, nil
}

// Error implements the error interface. Rendering an error for a log line
// must not mask the error itself, so when the driver's message lookup fails
// this falls back to the numeric tag instead of failing.
func (e Error) Error() string {
	msg, err := e.Message()
	if err != nil {
		return fmt.Sprintf("CUDA error %d", uint32(e))
	}
	return msg
}

// DropError is returned by explicit-release operations whose underlying
// driver call failed. It pairs the failure kind with the resource that was
// not released, so the caller can retry the release, inspect the resource,
// or leak it deliberately. Implicit release paths (finalizers) cannot return
// errors; they report through the process-wide diagnostic channel instead.
type DropError[T any] struct {
	// Kind is the failure reported by the driver for the release call.
	Kind Error
	// Resource is the un-released resource, still live and usable.
	Resource T
}

// Error implements the error interface.
func (e *DropError[T]) Error() string {
	return e.Kind.Error()
}

// Unwrap exposes the underlying kind to errors.Is and errors.As.
func (e *DropError[T]) Unwrap() error {
	return e.Kind
}

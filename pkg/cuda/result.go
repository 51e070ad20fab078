// Copyright 2026 go-cuda contributors
// SPDX-License-Identifier: Apache-2.0

package cuda

// Result is a raw status code (CUresult) as returned by a driver entry
// point. Zero denotes success. Raw statuses exist only at the boundary with
// the driver: every call site routes its Result through ToError and the rest
// of the binding never inspects the numeric value directly.
type Result int32

// Success is the driver's success status.
const Success Result = 0

// ToError converts a raw driver status into either nil (success) or the
// Error kind carrying that status's numeric identity.
//
// The conversion is total and pure: every input value has a defined output,
// nothing is allocated, and no driver call is made. Statuses this version of
// the binding does not recognize collapse to ErrUnknown, never to success.
func (r Result) ToError() error {
	if r == Success {
		return nil
	}
	e := Error(r)
	switch e {
	case ErrInvalidValue,
		ErrOutOfMemory,
		ErrNotInitialized,
		ErrDeinitialized,
		ErrProfilerDisabled,
		ErrProfilerNotInitialized,
		ErrProfilerAlreadyStarted,
		ErrProfilerAlreadyStopped,
		ErrNoDevice,
		ErrInvalidDevice,
		ErrInvalidImage,
		ErrInvalidContext,
		ErrContextAlreadyCurrent,
		ErrMapFailed,
		ErrUnmapFailed,
		ErrArrayIsMapped,
		ErrAlreadyMapped,
		ErrNoBinaryForGPU,
		ErrAlreadyAcquired,
		ErrNotMapped,
		ErrNotMappedAsArray,
		ErrNotMappedAsPointer,
		ErrECCUncorrectable,
		ErrUnsupportedLimit,
		ErrContextAlreadyInUse,
		ErrPeerAccessUnsupported,
		ErrInvalidPTX,
		ErrInvalidGraphicsContext,
		ErrNVLinkUncorrectable,
		ErrInvalidSource,
		ErrFileNotFound,
		ErrSharedObjectSymbolNotFound,
		ErrSharedObjectInitFailed,
		ErrOperatingSystem,
		ErrInvalidHandle,
		ErrNotFound,
		ErrNotReady,
		ErrIllegalAddress,
		ErrLaunchOutOfResources,
		ErrLaunchTimeout,
		ErrLaunchIncompatibleTexturing,
		ErrPeerAccessAlreadyEnabled,
		ErrPeerAccessNotEnabled,
		ErrPrimaryContextActive,
		ErrContextIsDestroyed,
		ErrAssert,
		ErrTooManyPeers,
		ErrHostMemoryAlreadyRegistered,
		ErrHostMemoryNotRegistered,
		ErrHardwareStackError,
		ErrIllegalInstruction,
		ErrMisalignedAddress,
		ErrInvalidAddressSpace,
		ErrInvalidPC,
		ErrLaunchFailed,
		ErrNotPermitted,
		ErrNotSupported,
		ErrSystemNotReady,
		ErrSystemDriverMismatch,
		ErrCompatNotSupportedOnDevice,
		ErrStreamCaptureUnsupported,
		ErrStreamCaptureInvalidated,
		ErrStreamCaptureMerge,
		ErrStreamCaptureUnmatched,
		ErrStreamCaptureUnjoined,
		ErrStreamCaptureIsolation,
		ErrStreamCaptureImplicit,
		ErrCapturedEvent,
		ErrStreamCaptureWrongThread,
		ErrTimeout,
		ErrGraphExecUpdateFailure,
		ErrUnknown:
		return e
	default:
		return ErrUnknown
	}
}

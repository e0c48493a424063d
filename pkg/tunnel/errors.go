package tunnel

import (
	"errors"
)

// Sentinel errors of the tunnel subsystem, matched with errors.Is.
//
// ErrWouldBlock and ErrInterrupted are transient, the caller may retry the
// operation. The rest require the caller to correct its input or reopen.
var (
	// ErrNotReady the instance never finished construction (no stack
	// adapter attached)
	ErrNotReady = errors.New("tunnel not ready")

	// ErrBusy exclusivity conflict, or a destroy is already in progress
	ErrBusy = errors.New("tunnel busy")

	// ErrWouldBlock a non blocking read found an empty queue, or the read
	// deadline expired
	ErrWouldBlock = errors.New("tunnel operation would block")

	// ErrInterrupted a blocking wait was canceled from outside
	ErrInterrupted = errors.New("tunnel wait interrupted")

	// ErrHostDown the instance entered Dying while the operation was in
	// flight
	ErrHostDown = errors.New("tunnel going down")

	// ErrOversizedWrite the write exceeds the mode specific MTU bound
	ErrOversizedWrite = errors.New("tunnel write exceeds mtu")

	// ErrNoBuffers no queue slot or buffer could be allocated
	ErrNoBuffers = errors.New("tunnel out of buffer space")

	// ErrFamilyNotSupported packet level dispatch of an unrecognized
	// address family
	ErrFamilyNotSupported = errors.New("address family not supported")

	// ErrAlreadyExists create requested an exact name/unit already taken
	ErrAlreadyExists = errors.New("tunnel already exists")
)

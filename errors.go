package drm

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// ErrorKind identifies the category of a [SystemError].
type ErrorKind int

const (
	// Unknown is any system error without a more specific kind.
	Unknown ErrorKind = iota

	// InvalidFileDescriptor indicates a command was attempted using an
	// invalid file descriptor.
	InvalidFileDescriptor

	// MemoryFault indicates the provided memory area is inaccessible.
	//
	// Receiving this error indicates a bug in this package.
	MemoryFault

	// InvalidArgument indicates one or more arguments used are invalid.
	//
	// This can be due to the system not supporting a feature or value.
	InvalidArgument

	// InvalidFileType indicates a command was attempted on a file that is
	// not a DRM device.
	InvalidFileType

	// PermissionDenied indicates the caller lacks access to the device.
	PermissionDenied
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidFileDescriptor:
		return "invalid file descriptor"
	case MemoryFault:
		return "invalid memory access"
	case InvalidArgument:
		return "invalid argument"
	case InvalidFileType:
		return "invalid file type"
	case PermissionDenied:
		return "permission denied"
	default:
		return "unknown system error"
	}
}

// SystemError is the error returned by every fallible operation that is
// backed by a system call.
//
// Receiving one likely indicates a bug in either the program, this package,
// or the underlying operating system. None of them are transient, so retrying
// with the same inputs will not succeed.
type SystemError struct {
	Kind ErrorKind

	// Errno is the raw code, only set for the Unknown kind.
	Errno unix.Errno
}

// Errors
var (
	ErrInvalidFileDescriptor = &SystemError{Kind: InvalidFileDescriptor}
	ErrMemoryFault           = &SystemError{Kind: MemoryFault}
	ErrInvalidArgument       = &SystemError{Kind: InvalidArgument}
	ErrInvalidFileType       = &SystemError{Kind: InvalidFileType}
	ErrPermissionDenied      = &SystemError{Kind: PermissionDenied}
)

func (e *SystemError) Error() string {
	if e.Kind == Unknown {
		return fmt.Sprintf("drm: %s: %v", e.Kind, e.Errno)
	}
	return "drm: " + e.Kind.String()
}

// Is reports whether target is a SystemError of the same kind, and for the
// Unknown kind, with the same code.
func (e *SystemError) Is(target error) bool {
	t, ok := target.(*SystemError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && (e.Kind != Unknown || e.Errno == t.Errno)
}

// Code returns the raw code carried by an Unknown error, or 0.
func (e *SystemError) Code() unix.Errno {
	if e.Kind != Unknown {
		return 0
	}
	return e.Errno
}

// Classify maps a raw code onto its [SystemError]. Every code maps to exactly
// one error; codes without a specific kind are returned as Unknown.
func Classify(errno unix.Errno) *SystemError {
	switch errno {
	case unix.EBADF:
		return &SystemError{Kind: InvalidFileDescriptor}
	case unix.EFAULT:
		return &SystemError{Kind: MemoryFault}
	case unix.EINVAL:
		return &SystemError{Kind: InvalidArgument}
	case unix.ENOTTY:
		// Historically reported as a bad descriptor, not InvalidFileType.
		return &SystemError{Kind: InvalidFileDescriptor}
	case unix.EACCES:
		return &SystemError{Kind: PermissionDenied}
	default:
		return &SystemError{Kind: Unknown, Errno: errno}
	}
}

// Errno extracts the raw code from err, which must originate from a call site
// that only fails with system call errors. Any other error is a bug and panics.
func Errno(err error) unix.Errno {
	var errno unix.Errno
	if !errors.As(err, &errno) {
		panic(fmt.Sprintf("drm: expected system call error, got %T: %v", err, err))
	}
	return errno
}

// classify converts a failure of a syscall-only call site.
func classify(err error) error {
	if err == nil {
		return nil
	}
	return Classify(Errno(err))
}

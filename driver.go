package drm

// Driver issues the system calls a [Device] is built on.
//
// All methods must fail with errors that unwrap to a [unix.Errno]; any other
// error is treated as a bug by the Device.
type Driver interface {
	// CreateDumb allocates a dumb buffer and returns its handle, pitch and
	// length in bytes.
	CreateDumb(width, height, bpp uint32) (handle Handle, pitch uint32, length uint64, err error)

	// MapDumb returns the offset to pass to Mmap for mapping handle.
	MapDumb(handle Handle) (offset uint64, err error)

	// DestroyDumb releases the allocation behind handle.
	DestroyDumb(handle Handle) error

	// Mmap maps length bytes at offset, readable, writable and shared with
	// the allocation.
	Mmap(offset int64, length int) ([]byte, error)

	// Munmap removes a mapping returned by Mmap.
	Munmap(data []byte) error

	// Close the device.
	Close() error
}

package drm

import (
	"golang.org/x/sys/unix"
)

// region identifies mapped memory by its first byte and length.
type region struct {
	Addr *byte
	Len  int
}

func regionOf(data []byte) region {
	if len(data) == 0 {
		return region{}
	}
	return region{Addr: &data[0], Len: len(data)}
}

// testDriver is an in-memory Driver that records mappings.
type testDriver struct {
	next    Handle
	buffers map[Handle][]byte

	createErr error
	mmapErr   error
	unmapErr  error

	mapped   []region
	unmapped []region
	closed   bool
}

func newTestDriver() *testDriver {
	return &testDriver{
		next:    1,
		buffers: make(map[Handle][]byte),
	}
}

func (d *testDriver) CreateDumb(width, height, bpp uint32) (Handle, uint32, uint64, error) {
	if d.createErr != nil {
		return 0, 0, 0, d.createErr
	}
	if width == 0 || height == 0 || bpp == 0 {
		return 0, 0, 0, unix.EINVAL
	}
	pitch := (width*((bpp+7)/8) + 63) &^ 63
	handle := d.next
	d.next++
	d.buffers[handle] = make([]byte, uint64(pitch)*uint64(height))
	return handle, pitch, uint64(len(d.buffers[handle])), nil
}

func (d *testDriver) MapDumb(handle Handle) (uint64, error) {
	if _, ok := d.buffers[handle]; !ok {
		return 0, unix.EINVAL
	}
	return uint64(handle) << 12, nil
}

func (d *testDriver) DestroyDumb(handle Handle) error {
	if _, ok := d.buffers[handle]; !ok {
		return unix.EINVAL
	}
	delete(d.buffers, handle)
	return nil
}

func (d *testDriver) Mmap(offset int64, length int) ([]byte, error) {
	if d.mmapErr != nil {
		return nil, d.mmapErr
	}
	buf, ok := d.buffers[Handle(offset>>12)]
	if !ok || length > len(buf) {
		return nil, unix.EINVAL
	}
	data := buf[:length:length]
	d.mapped = append(d.mapped, regionOf(data))
	return data, nil
}

func (d *testDriver) Munmap(data []byte) error {
	d.unmapped = append(d.unmapped, regionOf(data))
	return d.unmapErr
}

func (d *testDriver) Close() error {
	d.closed = true
	return nil
}

var _ Driver = (*testDriver)(nil)

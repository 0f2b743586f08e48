package drm

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Mapping is a mapped view of a dumb buffer's memory.
//
// A mapping is owned by a single holder and is not safe for concurrent use.
// Accessing the memory after [Mapping.Release], or after the buffer was
// destroyed, panics.
type Mapping struct {
	dev      *Device
	handle   Handle
	gen      uint64
	data     []byte
	released bool
}

// Handle of the mapped buffer.
func (m *Mapping) Handle() Handle {
	return m.handle
}

// Len is the length of the mapped memory, which equals the buffer length.
func (m *Mapping) Len() int {
	m.check()
	return len(m.data)
}

// Bytes returns the mapped memory.
func (m *Mapping) Bytes() []byte {
	m.check()
	return m.data
}

// Valid reports whether the mapped memory may be accessed.
func (m *Mapping) Valid() bool {
	return !m.released && m.dev.isLive(m.handle, m.gen)
}

func (m *Mapping) check() {
	if m.released {
		panic("drm: use of released mapping of " + m.handle.String())
	}
	if !m.dev.isLive(m.handle, m.gen) {
		panic("drm: use of stale mapping of " + m.handle.String())
	}
}

// Release unmaps the memory. Only the first call has an effect.
//
// Failing to unmap leaves the address space in an unknown state, so it panics
// instead of returning an error.
func (m *Mapping) Release() {
	if m.released {
		return
	}
	m.released = true

	data := m.data
	m.data = nil
	m.dev.retire(m.handle, m.gen)

	entry := Log.WithFields(logrus.Fields{
		"handle": m.handle,
		"length": len(data),
	})
	if err := m.dev.drv.Munmap(data); err != nil {
		entry.WithError(err).Panic(fmt.Sprintf("drm: unmap of %s failed", m.handle))
	}
	entry.Debug("drm: released mapping")
}

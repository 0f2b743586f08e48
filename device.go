package drm

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/BeatGlow/drm/pixel"
)

// DefaultCard is the first DRM card node.
const DefaultCard = "/dev/dri/card0"

// Device allocates and maps dumb buffers through a [Driver].
//
// The device keeps a generation per mapped handle, so a [Mapping] can detect
// that it was released or that its buffer was destroyed.
type Device struct {
	drv Driver

	mu   sync.Mutex
	next uint64
	live map[Handle]uint64
}

// NewDevice returns a device backed by drv.
func NewDevice(drv Driver) *Device {
	return &Device{
		drv:  drv,
		live: make(map[Handle]uint64),
	}
}

// Driver returns the driver backing the device.
func (d *Device) Driver() Driver {
	return d.drv
}

// Close the device.
func (d *Device) Close() error {
	return d.drv.Close()
}

// CreateDumbBuffer allocates a width x height buffer in the given format.
func (d *Device) CreateDumbBuffer(width, height uint32, format pixel.Format) (*DumbBuffer, error) {
	handle, pitch, length, err := d.drv.CreateDumb(width, height, uint32(format.BitsPerPixel))
	if err != nil {
		return nil, classify(err)
	}

	buf := NewDumbBuffer(width, height, length, format, pitch, handle)
	Log.WithFields(logrus.Fields{
		"handle": handle,
		"width":  width,
		"height": height,
		"format": format,
		"pitch":  pitch,
		"length": length,
	}).Debug("drm: created dumb buffer")
	return buf, nil
}

// DestroyDumbBuffer releases the allocation of buf. Mappings of buf that were
// not released yet become invalid.
func (d *Device) DestroyDumbBuffer(buf *DumbBuffer) error {
	if err := d.drv.DestroyDumb(buf.Handle()); err != nil {
		return classify(err)
	}

	d.mu.Lock()
	delete(d.live, buf.Handle())
	d.mu.Unlock()

	Log.WithField("handle", buf.Handle()).Debug("drm: destroyed dumb buffer")
	return nil
}

// Map maps the memory of buf. The returned mapping must be released exactly
// once, typically with a deferred call to [Mapping.Release].
//
// Mapping a buffer that already has a live mapping is not supported.
func (d *Device) Map(buf *DumbBuffer) (*Mapping, error) {
	offset, err := d.drv.MapDumb(buf.Handle())
	if err != nil {
		return nil, classify(err)
	}

	data, err := d.drv.Mmap(int64(offset), int(buf.Length()))
	if err != nil {
		return nil, classify(err)
	}

	d.mu.Lock()
	d.next++
	gen := d.next
	d.live[buf.Handle()] = gen
	d.mu.Unlock()

	Log.WithFields(logrus.Fields{
		"handle": buf.Handle(),
		"offset": offset,
		"length": len(data),
	}).Debug("drm: mapped dumb buffer")

	return &Mapping{
		dev:    d,
		handle: buf.Handle(),
		gen:    gen,
		data:   data,
	}, nil
}

// WithMapping maps buf for the duration of fn. The mapping is released when
// fn returns or panics, and the slice must not be retained after that.
func (d *Device) WithMapping(buf *DumbBuffer, fn func(data []byte) error) error {
	m, err := d.Map(buf)
	if err != nil {
		return err
	}
	defer m.Release()

	return fn(m.Bytes())
}

func (d *Device) isLive(handle Handle, gen uint64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.live[handle] == gen
}

// retire drops the generation of handle if it still belongs to gen.
func (d *Device) retire(handle Handle, gen uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.live[handle] == gen {
		delete(d.live, handle)
	}
}

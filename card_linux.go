package drm

import (
	"os"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"

	"github.com/BeatGlow/drm/internal/ioctl"
)

// From <drm/drm_mode.h>
type modeCreateDumb struct {
	Height uint32
	Width  uint32
	Bpp    uint32
	Flags  uint32
	Handle uint32
	Pitch  uint32
	Size   uint64
}

type modeMapDumb struct {
	Handle uint32
	Pad    uint32
	Offset uint64
}

type modeDestroyDumb struct {
	Handle uint32
}

// From <drm/drm.h>, 'd' is the DRM ioctl base.
var (
	ioctlModeCreateDumb  = ioctl.Pointer(ioctl.ReadWrite, (*modeCreateDumb)(nil), 'd', 0xb2)
	ioctlModeMapDumb     = ioctl.Pointer(ioctl.ReadWrite, (*modeMapDumb)(nil), 'd', 0xb3)
	ioctlModeDestroyDumb = ioctl.Pointer(ioctl.ReadWrite, (*modeDestroyDumb)(nil), 'd', 0xb4)
)

// Card is a [Driver] for a Linux DRM card node, such as /dev/dri/card0.
type Card struct {
	f  *os.File
	fd uintptr
}

// Open a DRM card node and return a device for it.
func Open(name string) (*Device, error) {
	c, err := OpenCard(name)
	if err != nil {
		return nil, err
	}
	return NewDevice(c), nil
}

// OpenCard opens a DRM card node.
func OpenCard(name string) (*Card, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, errors.Wrapf(err, "drm: open %s", name)
	}
	if fi.Mode()&os.ModeCharDevice == 0 {
		return nil, errors.Wrapf(ErrInvalidFileType, "drm: open %s", name)
	}

	f, err := os.OpenFile(name, os.O_RDWR|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, errors.Wrapf(classify(err), "drm: open %s", name)
	}

	return &Card{
		f:  f,
		fd: f.Fd(),
	}, nil
}

func (c *Card) String() string {
	return c.f.Name()
}

func (c *Card) Close() error {
	return c.f.Close()
}

func (c *Card) CreateDumb(width, height, bpp uint32) (Handle, uint32, uint64, error) {
	arg := modeCreateDumb{
		Height: height,
		Width:  width,
		Bpp:    bpp,
	}
	if err := ioctl.Do(c.fd, ioctlModeCreateDumb, &arg); err != nil {
		return 0, 0, 0, err
	}
	return Handle(arg.Handle), arg.Pitch, arg.Size, nil
}

func (c *Card) MapDumb(handle Handle) (uint64, error) {
	arg := modeMapDumb{Handle: uint32(handle)}
	if err := ioctl.Do(c.fd, ioctlModeMapDumb, &arg); err != nil {
		return 0, err
	}
	return arg.Offset, nil
}

func (c *Card) DestroyDumb(handle Handle) error {
	arg := modeDestroyDumb{Handle: uint32(handle)}
	return ioctl.Do(c.fd, ioctlModeDestroyDumb, &arg)
}

func (c *Card) Mmap(offset int64, length int) ([]byte, error) {
	return unix.Mmap(int(c.fd), offset, length, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
}

func (c *Card) Munmap(data []byte) error {
	return unix.Munmap(data)
}

var _ Driver = (*Card)(nil)

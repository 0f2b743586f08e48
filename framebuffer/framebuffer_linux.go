package framebuffer

import (
	"bytes"
	"os"
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"

	"github.com/BeatGlow/drm"
	"github.com/BeatGlow/drm/internal/ioctl"
)

// From <linux/fb.h>
var (
	fbioGetVScreenInfo = ioctl.Encode(ioctl.None, 0, 'F', 0x00)
	fbioGetFScreenInfo = ioctl.Encode(ioctl.None, 0, 'F', 0x02)
)

// FrameBuffer is a Linux framebuffer device (fbdev).
type FrameBuffer struct {
	f          *os.File
	fd         uintptr
	info       linuxFrameBufferInfo
	screenInfo linuxVarScreenInfo
	buffer     Buffer
}

// Open a Linux FrameBuffer device (fbdev) by name, typically /dev/fb[0..x].
func Open(name string) (*FrameBuffer, error) {
	f, err := os.OpenFile(name, os.O_RDWR|unix.O_CLOEXEC, os.ModeDevice)
	if err != nil {
		return nil, errors.Wrapf(err, "framebuffer: open %s", name)
	}

	fb := &FrameBuffer{
		f:  f,
		fd: f.Fd(),
	}
	if err = fb.ioctl(fbioGetFScreenInfo, unsafe.Pointer(&fb.info)); err != nil {
		_ = f.Close()
		return nil, errors.Wrap(err, "framebuffer: get fixed screen info")
	}

	// Request virtual screen info.
	if err = fb.ioctl(fbioGetVScreenInfo, unsafe.Pointer(&fb.screenInfo)); err != nil {
		_ = f.Close()
		return nil, errors.Wrap(err, "framebuffer: get variable screen info")
	}
	if fb.buffer, err = fb.describe(); err != nil {
		_ = f.Close()
		return nil, err
	}

	return fb, nil
}

func (fb *FrameBuffer) describe() (Buffer, error) {
	si := &fb.screenInfo
	format, err := parseFormat(si.BitsPerPixel, si.Red, si.Green, si.Blue, si.Alpha)
	if err != nil {
		return Buffer{}, err
	}
	return Buffer{
		id:     string(bytes.TrimRight(fb.info.ID[:], "\x00")),
		width:  si.Xres,
		height: si.Yres,
		format: format,
		pitch:  fb.info.LineLength,
		length: fb.info.SmemLen,
	}, nil
}

// Buffer describes the screen memory.
func (fb *FrameBuffer) Buffer() Buffer {
	return fb.buffer
}

func (fb *FrameBuffer) String() string {
	return fb.f.Name()
}

// Close the framebuffer device
func (fb *FrameBuffer) Close() error {
	return fb.f.Close()
}

// CreateDumb returns the screen memory, which is the only allocation a
// framebuffer device has. The requested geometry has to match the screen.
func (fb *FrameBuffer) CreateDumb(width, height, bpp uint32) (drm.Handle, uint32, uint64, error) {
	w, h := fb.buffer.Size()
	if width != w || height != h || bpp != uint32(fb.buffer.Format().BitsPerPixel) {
		return 0, 0, 0, unix.EINVAL
	}
	return fb.buffer.Handle(), fb.buffer.Pitch(), uint64(fb.buffer.Length()), nil
}

func (fb *FrameBuffer) MapDumb(handle drm.Handle) (uint64, error) {
	if handle != fb.buffer.Handle() {
		return 0, unix.EINVAL
	}
	return 0, nil
}

// DestroyDumb does nothing, the screen memory belongs to the device.
func (fb *FrameBuffer) DestroyDumb(handle drm.Handle) error {
	if handle != fb.buffer.Handle() {
		return unix.EINVAL
	}
	return nil
}

func (fb *FrameBuffer) Mmap(offset int64, length int) ([]byte, error) {
	return unix.Mmap(int(fb.fd), offset, length, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
}

func (fb *FrameBuffer) Munmap(data []byte) error {
	return unix.Munmap(data)
}

func (fb *FrameBuffer) ioctl(cmd ioctl.Command, arg unsafe.Pointer) error {
	return ioctl.Call(fb.fd, uintptr(cmd), uintptr(arg))
}

var _ drm.Driver = (*FrameBuffer)(nil)

type linuxFrameBufferInfo struct {
	ID         [16]byte  // Identification string eg "TT Builtin"
	SmemStart  uintptr   // Start of frame buffer mem
	SmemLen    uint32    // Length of frame buffer mem
	Type       uint32    // FB_TYPE_
	TypeAux    uint32    // Interleave for interleaved Planes
	Visual     uint32    // FB_VISUAL_
	Xpanstep   uint16    // Zero if no hardware panning
	Ypanstep   uint16    // Zero if no hardware panning
	Ywrapstep  uint16    // Zero if no hardware ywrap
	LineLength uint32    // Length of a line in bytes
	MmioStart  uintptr   // Start of Memory Mapped I/O (physical address)
	MmioLen    uint32    // Length of Memory Mapped I/O
	Accel      uint32    // Type of acceleration available
	Reserved   [3]uint16 // Reserved for future compatibility
}

// linuxVarScreenInfo contains device independent changeable information about a frame buffer device and a specific video mode.
type linuxVarScreenInfo struct {
	Xres                    uint32
	Yres                    uint32
	XresVirtual             uint32
	YresVirtual             uint32
	Xoffset                 uint32
	Yoffset                 uint32
	BitsPerPixel            uint32
	Grayscale               uint32
	Red, Green, Blue, Alpha bitField
	Nonstd                  uint32
	Activate                uint32
	Height                  uint32
	Width                   uint32
	AccelFlags              uint32
	Pixclock                uint32
	LeftMargin              uint32
	RightMargin             uint32
	UpperMargin             uint32
	LowerMargin             uint32
	HsyncLen                uint32
	VsyncLen                uint32
	Sync                    uint32
	Vmode                   uint32
	Rotate                  uint32
	Colorspace              uint32
	Reserved                [4]uint32
}

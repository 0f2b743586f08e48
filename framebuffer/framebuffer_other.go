//go:build unix && !linux

package framebuffer

import (
	"errors"

	"golang.org/x/sys/unix"

	"github.com/BeatGlow/drm"
)

// ErrNotSupported is returned by [Open] on platforms without fbdev.
var ErrNotSupported = errors.New("framebuffer: not supported")

// FrameBuffer is not available on this platform.
type FrameBuffer struct{}

// Open is not supported on this platform.
func Open(_ string) (*FrameBuffer, error) {
	return nil, ErrNotSupported
}

func (fb *FrameBuffer) Buffer() Buffer { return Buffer{} }
func (fb *FrameBuffer) Close() error   { return nil }

func (fb *FrameBuffer) CreateDumb(_, _, _ uint32) (drm.Handle, uint32, uint64, error) {
	return 0, 0, 0, unix.ENODEV
}

func (fb *FrameBuffer) MapDumb(drm.Handle) (uint64, error)  { return 0, unix.ENODEV }
func (fb *FrameBuffer) DestroyDumb(drm.Handle) error        { return unix.ENODEV }
func (fb *FrameBuffer) Mmap(_ int64, _ int) ([]byte, error) { return nil, unix.ENODEV }
func (fb *FrameBuffer) Munmap([]byte) error                 { return unix.ENODEV }

var _ drm.Driver = (*FrameBuffer)(nil)

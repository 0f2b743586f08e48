// Package framebuffer provides access to the operating system's native framebuffer
//
// This requires framebuffer device support in the operating system. The framebuffer
// can be opened with the [Open] call. Its screen memory is described by a [Buffer],
// and the framebuffer itself is a [drm.Driver], so the screen memory can be mapped
// through a [drm.Device] like a dumb buffer.
package framebuffer

import (
	"errors"
	"fmt"

	"github.com/BeatGlow/drm"
	"github.com/BeatGlow/drm/pixel"
)

// ErrFormat is returned for pixel layouts without a matching [pixel.Format].
var ErrFormat = errors.New("framebuffer: unsupported pixel layout")

// Buffer describes the screen memory of a framebuffer device.
type Buffer struct {
	id            string
	width, height uint32
	format        pixel.Format
	pitch         uint32
	length        uint32
}

// ID is the driver identification string, e.g. "simplefb".
func (b Buffer) ID() string             { return b.id }
func (b Buffer) Size() (uint32, uint32) { return b.width, b.height }
func (b Buffer) Format() pixel.Format   { return b.format }
func (b Buffer) Pitch() uint32          { return b.pitch }
func (b Buffer) Length() uint32         { return b.length }

// Handle is always 0, a framebuffer device has a single buffer.
func (b Buffer) Handle() drm.Handle { return 0 }

func (b Buffer) String() string {
	return fmt.Sprintf("framebuffer %q %dx%d %s pitch %d", b.id, b.width, b.height, b.format, b.pitch)
}

var _ drm.Buffer = Buffer{}

// bitField describes the position of a color channel.
type bitField struct {
	Offset   uint32 // Beginning of bitfield
	Length   uint32 // Length of bitfield
	MsbRight uint32 // != 0 : Most significant bit is right
}

func (f bitField) is(offset, length uint32) bool {
	return f.Offset == offset && f.Length == length
}

// parseFormat matches the channel layout against the little-endian kernel formats.
func parseFormat(bpp uint32, red, green, blue, alpha bitField) (pixel.Format, error) {
	switch bpp {
	case 8:
		return pixel.C8, nil

	case 15, 16:
		switch {
		case red.is(10, 5) && green.is(5, 5) && blue.is(0, 5):
			return pixel.XRGB1555, nil
		case red.is(11, 5) && green.is(5, 6) && blue.is(0, 5):
			return pixel.RGB565, nil
		}

	case 24:
		if red.is(16, 8) && green.is(8, 8) && blue.is(0, 8) {
			return pixel.RGB888, nil
		}

	case 32:
		if red.is(16, 8) && green.is(8, 8) && blue.is(0, 8) {
			if alpha.is(24, 8) {
				return pixel.ARGB8888, nil
			}
			return pixel.XRGB8888, nil
		}
	}

	return pixel.Format{}, ErrFormat
}

package pixel

import (
	"fmt"
	"strings"
)

// Format describes the memory layout of a pixel as understood by the kernel.
//
// Formats are little-endian, following <drm/drm_fourcc.h>.
type Format struct {
	// FourCC is the DRM fourcc code.
	FourCC uint32

	// Depth is the number of significant color bits.
	Depth uint8

	// BitsPerPixel is the storage size of one pixel.
	BitsPerPixel uint8
}

func fourcc(a, b, c, d byte) uint32 {
	return uint32(a) | uint32(b)<<8 | uint32(c)<<16 | uint32(d)<<24
}

// Supported formats.
var (
	C8       = Format{FourCC: fourcc('C', '8', ' ', ' '), Depth: 8, BitsPerPixel: 8}
	XRGB1555 = Format{FourCC: fourcc('X', 'R', '1', '5'), Depth: 15, BitsPerPixel: 16}
	RGB565   = Format{FourCC: fourcc('R', 'G', '1', '6'), Depth: 16, BitsPerPixel: 16}
	RGB888   = Format{FourCC: fourcc('R', 'G', '2', '4'), Depth: 24, BitsPerPixel: 24}
	XRGB8888 = Format{FourCC: fourcc('X', 'R', '2', '4'), Depth: 24, BitsPerPixel: 32}
	ARGB8888 = Format{FourCC: fourcc('A', 'R', '2', '4'), Depth: 32, BitsPerPixel: 32}
)

var formatNames = map[string]Format{
	"c8":       C8,
	"xrgb1555": XRGB1555,
	"rgb565":   RGB565,
	"rgb888":   RGB888,
	"xrgb8888": XRGB8888,
	"argb8888": ARGB8888,
}

// BytesPerPixel rounds the storage size up to whole bytes.
func (f Format) BytesPerPixel() int {
	return (int(f.BitsPerPixel) + 7) / 8
}

// Name is the lower case format name, or the empty string for unknown formats.
func (f Format) Name() string {
	for name, other := range formatNames {
		if other == f {
			return name
		}
	}
	return ""
}

func (f Format) String() string {
	code := []byte{byte(f.FourCC), byte(f.FourCC >> 8), byte(f.FourCC >> 16), byte(f.FourCC >> 24)}
	return fmt.Sprintf("%s (%d bpp, depth %d)", strings.TrimRight(string(code), " \x00"), f.BitsPerPixel, f.Depth)
}

// ParseFormat looks up a format by its name, such as "xrgb8888".
func ParseFormat(name string) (Format, error) {
	if f, ok := formatNames[strings.ToLower(name)]; ok {
		return f, nil
	}
	return Format{}, fmt.Errorf("pixel: unknown format %q", name)
}

// FormatForBPP returns the default format with the given storage size.
//
// Unknown sizes yield a format without fourcc that only carries the size.
func FormatForBPP(bpp uint8) Format {
	switch bpp {
	case 8:
		return C8
	case 15:
		return XRGB1555
	case 16:
		return RGB565
	case 24:
		return RGB888
	case 32:
		return XRGB8888
	default:
		return Format{Depth: bpp, BitsPerPixel: bpp}
	}
}

package drm

import (
	"fmt"

	"github.com/BeatGlow/drm/pixel"
)

// DumbBuffer describes a CPU accessible buffer allocated by the kernel.
//
// DumbBuffer values are immutable and comparable: two descriptors are equal
// if all of their fields are equal, which makes them usable as map keys.
// Destroying the allocation is up to the [Device] that created it.
type DumbBuffer struct {
	width, height uint32
	length        uint64
	format        pixel.Format
	pitch         uint32
	handle        Handle
}

// NewDumbBuffer stores the allocation metadata as reported by the kernel,
// without validation.
func NewDumbBuffer(width, height uint32, length uint64, format pixel.Format, pitch uint32, handle Handle) *DumbBuffer {
	return &DumbBuffer{
		width:  width,
		height: height,
		length: length,
		format: format,
		pitch:  pitch,
		handle: handle,
	}
}

func (b DumbBuffer) Size() (uint32, uint32) { return b.width, b.height }
func (b DumbBuffer) Format() pixel.Format   { return b.format }
func (b DumbBuffer) Pitch() uint32          { return b.pitch }
func (b DumbBuffer) Handle() Handle         { return b.handle }

// Length is the size of the allocation in bytes, as reported by the kernel.
func (b DumbBuffer) Length() uint64 { return b.length }

func (b DumbBuffer) String() string {
	return fmt.Sprintf("dumb buffer %dx%d %s pitch %d (%d bytes, %s)",
		b.width, b.height, b.format, b.pitch, b.length, b.handle)
}

// Interface checks.
var (
	_ Buffer = DumbBuffer{}
	_ Buffer = (*DumbBuffer)(nil)
)

package drm

import (
	"fmt"

	"github.com/BeatGlow/drm/pixel"
)

// Handle is an opaque reference to a kernel owned buffer allocation. It is
// only meaningful to the device that returned it.
type Handle uint32

func (h Handle) String() string {
	return fmt.Sprintf("handle %d", uint32(h))
}

// Buffer is the metadata contract shared by all buffer variants.
type Buffer interface {
	// Size in pixels as width, height.
	Size() (uint32, uint32)

	// Format of the pixels.
	Format() pixel.Format

	// Pitch is the number of bytes between vertically adjacent pixels. It may
	// exceed width times bytes per pixel.
	Pitch() uint32

	// Handle of the allocation.
	Handle() Handle
}

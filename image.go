package drm

import "github.com/BeatGlow/drm/pixel"

// Image wraps the memory of m as a drawable image, using the size, format and
// pitch of b. The image must not be used after m is released.
func Image(b Buffer, m *Mapping) (pixel.Image, error) {
	w, h := b.Size()
	return pixel.NewImageFrom(b.Format(), m.Bytes(), int(w), int(h), int(b.Pitch()))
}

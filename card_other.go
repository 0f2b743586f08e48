//go:build unix && !linux

package drm

import "errors"

// ErrNotSupported is returned by [Open] on platforms without DRM card nodes.
var ErrNotSupported = errors.New("drm: not supported")

// Open is not supported on this platform; use [NewDevice] with a [Driver].
func Open(_ string) (*Device, error) {
	return nil, ErrNotSupported
}

// Package drm provides CPU accessible kernel graphics buffers ("dumb"
// buffers) for use as framebuffers when no accelerated buffer management is
// available.
//
// A [Device] allocates buffers through a [Driver], on Linux usually a DRM card
// node opened with [Open]. Buffer memory is accessed through a [Mapping]:
//
//	dev, err := drm.Open(drm.DefaultCard)
//	if err != nil {
//		return err
//	}
//	defer dev.Close()
//
//	buf, err := dev.CreateDumbBuffer(1920, 1080, pixel.XRGB8888)
//	if err != nil {
//		return err
//	}
//	defer dev.DestroyDumbBuffer(buf)
//
//	return dev.WithMapping(buf, func(data []byte) error {
//		clear(data)
//		return nil
//	})
//
// Failed system calls are reported as [*SystemError].
//
// The package builds on unix platforms only. Opening a card node requires
// Linux; elsewhere Open returns ErrNotSupported and a [Device] can only be
// backed by a custom [Driver].
package drm

package ioctl

import "testing"

type createDumb struct {
	Height, Width, Bpp, Flags uint32
	Handle, Pitch             uint32
	Size                      uint64
}

func TestEncode(t *testing.T) {
	tests := []struct {
		Name    string
		Command Command
		Want    uintptr
	}{
		// From <drm/drm.h>
		{"CREATE_DUMB", Pointer(ReadWrite, (*createDumb)(nil), 'd', 0xb2), 0xc02064b2},
		{"MAP_DUMB", Encode(ReadWrite, 16, 'd', 0xb3), 0xc01064b3},
		{"DESTROY_DUMB", Encode(ReadWrite, 4, 'd', 0xb4), 0xc00464b4},
		// From <linux/fb.h>
		{"FBIOGET_VSCREENINFO", Encode(None, 0, 'F', 0x00), 0x4600},
	}
	for _, test := range tests {
		t.Run(test.Name, func(it *testing.T) {
			if v := uintptr(test.Command); v != test.Want {
				it.Errorf("expected %#08x, got %#08x (%s)", test.Want, v, test.Command)
			}
		})
	}
}

func TestCommandFields(t *testing.T) {
	c := Encode(ReadWrite, 32, 'd', 0xb2)
	if v := c.Mode(); v != ReadWrite {
		t.Errorf("expected mode %d, got %d", ReadWrite, v)
	}
	if v := c.Size(); v != 32 {
		t.Errorf("expected size 32, got %d", v)
	}
	if v := c.Type(); v != 'd' {
		t.Errorf("expected type 'd', got %q", v)
	}
	if v := c.Nr(); v != 0xb2 {
		t.Errorf("expected nr 0xb2, got %#02x", v)
	}
	if v, want := c.String(), `ioctl write read (32 bytes) 'd' 0xb2`; v != want {
		t.Errorf("expected %q, got %q", want, v)
	}
}

package framebuffer

import (
	"testing"

	"github.com/BeatGlow/drm"
	"github.com/BeatGlow/drm/pixel"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		Name                    string
		BPP                     uint32
		Red, Green, Blue, Alpha bitField
		Want                    pixel.Format
	}{
		{"c8", 8, bitField{}, bitField{}, bitField{}, bitField{}, pixel.C8},
		{"xrgb1555", 16, bitField{Offset: 10, Length: 5}, bitField{Offset: 5, Length: 5}, bitField{Length: 5}, bitField{}, pixel.XRGB1555},
		{"rgb565", 16, bitField{Offset: 11, Length: 5}, bitField{Offset: 5, Length: 6}, bitField{Length: 5}, bitField{}, pixel.RGB565},
		{"rgb888", 24, bitField{Offset: 16, Length: 8}, bitField{Offset: 8, Length: 8}, bitField{Length: 8}, bitField{}, pixel.RGB888},
		{"xrgb8888", 32, bitField{Offset: 16, Length: 8}, bitField{Offset: 8, Length: 8}, bitField{Length: 8}, bitField{}, pixel.XRGB8888},
		{"argb8888", 32, bitField{Offset: 16, Length: 8}, bitField{Offset: 8, Length: 8}, bitField{Length: 8}, bitField{Offset: 24, Length: 8}, pixel.ARGB8888},
	}
	for _, test := range tests {
		t.Run(test.Name, func(it *testing.T) {
			f, err := parseFormat(test.BPP, test.Red, test.Green, test.Blue, test.Alpha)
			if err != nil {
				it.Fatal(err)
			}
			if f != test.Want {
				it.Errorf("expected %s, got %s", test.Want, f)
			}
		})
	}
}

func TestParseFormatUnsupported(t *testing.T) {
	// BGR layouts have no little-endian kernel format here.
	_, err := parseFormat(32, bitField{Length: 8}, bitField{Offset: 8, Length: 8}, bitField{Offset: 16, Length: 8}, bitField{})
	if err != ErrFormat {
		t.Errorf("expected %v, got %v", ErrFormat, err)
	}
	if _, err = parseFormat(12, bitField{}, bitField{}, bitField{}, bitField{}); err != ErrFormat {
		t.Errorf("expected %v, got %v", ErrFormat, err)
	}
}

func TestBuffer(t *testing.T) {
	var b drm.Buffer = Buffer{
		id:     "simplefb",
		width:  800,
		height: 480,
		format: pixel.RGB565,
		pitch:  1600,
		length: 768000,
	}

	if w, h := b.Size(); w != 800 || h != 480 {
		t.Errorf("expected size 800x480, got %dx%d", w, h)
	}
	if v := b.Format(); v != pixel.RGB565 {
		t.Errorf("expected format %s, got %s", pixel.RGB565, v)
	}
	if v := b.Pitch(); v != 1600 {
		t.Errorf("expected pitch 1600, got %d", v)
	}
	if v := b.Handle(); v != 0 {
		t.Errorf("expected handle 0, got %d", v)
	}
}

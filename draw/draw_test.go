package draw

import (
	"image"
	"image/color"
	"testing"
)

var (
	black = color.RGBA{A: 0xff}
	white = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

func count(i *image.RGBA, c color.Color) (n int) {
	b := i.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if i.At(x, y) == c {
				n++
			}
		}
	}
	return
}

func TestLines(t *testing.T) {
	tests := []struct {
		Name string
		Draw func(Image)
		Want int
	}{
		{"horizontal", func(i Image) { HorizontalLine(i, 2, 3, 5, white) }, 5},
		{"vertical", func(i Image) { VerticalLine(i, 2, 3, 5, white) }, 5},
		{"empty", func(i Image) { HorizontalLine(i, 2, 3, 0, white) }, 0},
		{"point", func(i Image) { Line(i, image.Pt(4, 4), image.Pt(4, 4), white) }, 1},
		{"diagonal", func(i Image) { Line(i, image.Pt(0, 0), image.Pt(7, 7), white) }, 8},
		{"steep", func(i Image) { Line(i, image.Pt(1, 0), image.Pt(3, 9), white) }, 10},
		{"rectangle", func(i Image) { Rectangle(i, image.Rect(1, 1, 5, 4), white) }, 10},
		{"box", func(i Image) { Box(i, image.Rect(1, 1, 5, 4), white) }, 12},
		{"fill", func(i Image) { Fill(i, image.Rect(-4, -4, 2, 2), white) }, 4},
		{"reverse", func(i Image) { Line(i, image.Pt(9, 2), image.Pt(0, 2), white) }, 10},
		{"rounded rectangle square", func(i Image) { RoundedRectangle(i, image.Rect(1, 1, 5, 4), 0, white) }, 10},
		{"rounded box square", func(i Image) { RoundedBox(i, image.Rect(1, 1, 5, 4), 0, white) }, 12},
		{"rounded empty", func(i Image) { RoundedBox(i, image.Rect(4, 4, 4, 9), 2, white) }, 0},
	}
	for _, test := range tests {
		t.Run(test.Name, func(it *testing.T) {
			i := image.NewRGBA(image.Rect(0, 0, 16, 16))
			Fill(i, i.Bounds(), black)
			test.Draw(i)
			if v := count(i, white); v != test.Want {
				it.Errorf("expected %d pixels set, got %d", test.Want, v)
			}
		})
	}
}

func TestRectangleOutline(t *testing.T) {
	i := image.NewRGBA(image.Rect(0, 0, 8, 8))
	Rectangle(i, image.Rect(1, 2, 6, 7), white)
	for _, pt := range []image.Point{{1, 2}, {5, 2}, {1, 6}, {5, 6}} {
		if v := i.At(pt.X, pt.Y); v != white {
			t.Errorf("expected corner %s to be set, got %v", pt, v)
		}
	}
	if v := i.At(3, 4); v == white {
		t.Error("expected rectangle interior to be unset")
	}
}

func TestText(t *testing.T) {
	f, err := RegularFont()
	if err != nil {
		t.Fatal(err)
	}
	face := Face(f, 16)
	defer face.Close()

	i := image.NewRGBA(image.Rect(0, 0, 128, 32))
	Fill(i, i.Bounds(), black)

	pt := image.Pt(4, 20)
	advance := Text(i, pt, face, white, "drm")
	if advance <= 0 {
		t.Fatalf("expected positive advance, got %d", advance)
	}

	b := TextBounds(pt, face, "drm")
	if b.Empty() || !b.In(i.Bounds()) {
		t.Fatalf("unexpected text bounds %s", b)
	}

	var inked bool
	for y := b.Min.Y; y < b.Max.Y && !inked; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if r, _, _, _ := i.At(x, y).RGBA(); r > 0 {
				inked = true
				break
			}
		}
	}
	if !inked {
		t.Error("expected text to be drawn")
	}
}

func TestRoundedRectangle(t *testing.T) {
	i := image.NewRGBA(image.Rect(0, 0, 16, 16))
	RoundedRectangle(i, i.Bounds(), 3, white)

	for _, pt := range []image.Point{{8, 0}, {0, 8}, {15, 8}, {8, 15}, {1, 1}, {14, 14}} {
		if v := i.At(pt.X, pt.Y); v != white {
			t.Errorf("expected outline at %s, got %v", pt, v)
		}
	}
	for _, pt := range []image.Point{{0, 0}, {15, 0}, {0, 15}, {15, 15}, {8, 8}} {
		if v := i.At(pt.X, pt.Y); v == white {
			t.Errorf("expected %s to be unset", pt)
		}
	}
}

func TestRoundedBox(t *testing.T) {
	i := image.NewRGBA(image.Rect(0, 0, 16, 16))
	RoundedBox(i, i.Bounds(), 4, white)

	for _, pt := range []image.Point{{8, 0}, {0, 8}, {8, 8}, {15, 8}, {8, 15}} {
		if v := i.At(pt.X, pt.Y); v != white {
			t.Errorf("expected %s to be filled, got %v", pt, v)
		}
	}
	for _, pt := range []image.Point{{0, 0}, {15, 0}, {0, 15}, {15, 15}} {
		if v := i.At(pt.X, pt.Y); v == white {
			t.Errorf("expected corner %s to be unset", pt)
		}
	}

	// Rows are symmetric around the center.
	for y := 0; y < 8; y++ {
		for x := 0; x < 16; x++ {
			if (i.At(x, y) == white) != (i.At(x, 15-y) == white) {
				t.Fatalf("pixel (%d,%d) differs from (%d,%d)", x, y, x, 15-y)
			}
		}
	}
}

func TestRoundedRadiusClamped(t *testing.T) {
	i := image.NewRGBA(image.Rect(0, 0, 8, 8))
	RoundedBox(i, image.Rect(2, 2, 6, 6), 100, white)

	if v := i.At(4, 4); v != white {
		t.Error("expected center to be filled")
	}
	for _, pt := range []image.Point{{1, 4}, {6, 4}, {4, 1}, {4, 6}} {
		if v := i.At(pt.X, pt.Y); v == white {
			t.Errorf("expected %s outside the box to be unset", pt)
		}
	}
}

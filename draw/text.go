package draw

import (
	"image"
	"image/color"
	"sync"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

var (
	regularOnce sync.Once
	regular     *truetype.Font
	regularErr  error
)

// RegularFont returns the parsed Go Regular font.
func RegularFont() (*truetype.Font, error) {
	regularOnce.Do(func() {
		regular, regularErr = freetype.ParseFont(goregular.TTF)
	})
	return regular, regularErr
}

// Face returns a face of f at size points, for a 72 DPI display.
func Face(f *truetype.Font, size float64) font.Face {
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// Text draws s with its baseline starting at pt and returns the advance in pixels.
func Text(dst Image, pt image.Point, face font.Face, c color.Color, s string) int {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(pt.X, pt.Y),
	}
	d.DrawString(s)
	return (d.Dot.X - fixed.I(pt.X)).Ceil()
}

// TextBounds measures s when drawn with its baseline at pt.
func TextBounds(pt image.Point, face font.Face, s string) image.Rectangle {
	b, _ := font.BoundString(face, s)
	return image.Rect(
		pt.X+b.Min.X.Floor(), pt.Y+b.Min.Y.Floor(),
		pt.X+b.Max.X.Ceil(), pt.Y+b.Max.Y.Ceil(),
	)
}

// Package draw contains drawing primitives for pixel images, such as mapped
// scanout buffers.
package draw

import (
	"image"
	"image/color"
	"image/draw"
)

// Image is an alias for [image/draw.Image].
type Image = draw.Image

// Fill replaces the rectangle r in dst with c.
func Fill(dst Image, r image.Rectangle, c color.Color) {
	draw.Draw(dst, r.Intersect(dst.Bounds()), image.NewUniform(c), image.Point{}, draw.Src)
}

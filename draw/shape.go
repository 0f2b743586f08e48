package draw

import (
	"image"
	"image/color"
)

// Line draws a line from a to b, both included.
func Line(dst Image, a, b image.Point, c color.Color) {
	var (
		dx, sx = span(a.X, b.X)
		dy, sy = span(a.Y, b.Y)
		e      = dx - dy
	)
	for p := a; ; {
		dst.Set(p.X, p.Y, c)
		if p == b {
			return
		}
		e2 := 2 * e
		if e2 >= -dy {
			e -= dy
			p.X += sx
		}
		if e2 <= dx {
			e += dx
			p.Y += sy
		}
	}
}

// span returns the distance between from and to and the step direction.
func span(from, to int) (int, int) {
	switch {
	case to > from:
		return to - from, 1
	case to < from:
		return from - to, -1
	default:
		return 0, 0
	}
}

// HorizontalLine draws w pixels from (x,y) to the right.
func HorizontalLine(dst Image, x, y, w int, c color.Color) {
	for i := 0; i < w; i++ {
		dst.Set(x+i, y, c)
	}
}

// VerticalLine draws h pixels from (x,y) downwards.
func VerticalLine(dst Image, x, y, h int, c color.Color) {
	for i := 0; i < h; i++ {
		dst.Set(x, y+i, c)
	}
}

// Rectangle draws the outline of rect, excluding rect.Max like [image.Rectangle.In].
func Rectangle(dst Image, rect image.Rectangle, c color.Color) {
	RoundedRectangle(dst, rect, 0, c)
}

// Box draws a filled rectangle.
func Box(dst Image, rect image.Rectangle, c color.Color) {
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		HorizontalLine(dst, rect.Min.X, y, rect.Dx(), c)
	}
}

// corners are the centers of the corner arcs of rect, clamping radius so the
// arcs never overlap.
type corners struct {
	r                        int
	left, right, top, bottom int
}

func cornersOf(rect image.Rectangle, radius int) corners {
	r := radius
	if m := (min(rect.Dx(), rect.Dy()) - 1) / 2; r > m {
		r = m
	}
	if r < 0 {
		r = 0
	}
	return corners{
		r:      r,
		left:   rect.Min.X + r,
		right:  rect.Max.X - 1 - r,
		top:    rect.Min.Y + r,
		bottom: rect.Max.Y - 1 - r,
	}
}

// arc calls fn for every point of the first quadrant of a circle with radius
// r around the origin (midpoint circle algorithm).
func arc(r int, fn func(x, y int)) {
	x, y, d := 0, r, 1-r
	for x <= y {
		fn(x, y)
		fn(y, x)
		x++
		if d < 0 {
			d += 2*x + 1
		} else {
			y--
			d += 2*(x-y) + 1
		}
	}
}

// RoundedRectangle draws the outline of rect with radius pixels rounded corners.
func RoundedRectangle(dst Image, rect image.Rectangle, radius int, c color.Color) {
	if rect.Empty() {
		return
	}
	k := cornersOf(rect, radius)
	HorizontalLine(dst, k.left, rect.Min.Y, k.right-k.left+1, c)
	HorizontalLine(dst, k.left, rect.Max.Y-1, k.right-k.left+1, c)
	VerticalLine(dst, rect.Min.X, k.top, k.bottom-k.top+1, c)
	VerticalLine(dst, rect.Max.X-1, k.top, k.bottom-k.top+1, c)
	arc(k.r, func(x, y int) {
		dst.Set(k.left-x, k.top-y, c)
		dst.Set(k.right+x, k.top-y, c)
		dst.Set(k.left-x, k.bottom+y, c)
		dst.Set(k.right+x, k.bottom+y, c)
	})
}

// RoundedBox draws a filled rectangle with radius pixels rounded corners.
func RoundedBox(dst Image, rect image.Rectangle, radius int, c color.Color) {
	if rect.Empty() {
		return
	}
	k := cornersOf(rect, radius)
	Box(dst, image.Rect(rect.Min.X, k.top, rect.Max.X, k.bottom+1), c)
	arc(k.r, func(x, y int) {
		w := k.right - k.left + 1 + 2*x
		HorizontalLine(dst, k.left-x, k.top-y, w, c)
		HorizontalLine(dst, k.left-x, k.bottom+y, w, c)
	})
}

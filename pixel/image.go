package pixel

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/BeatGlow/drm/draw"
)

// Errors
var (
	ErrFormat      = errors.New("pixel: unsupported format")
	ErrShortBuffer = errors.New("pixel: pixel buffer too short")
)

type Image interface {
	draw.Image

	// Clear the image.
	Clear()

	// Fill the image with a single color.
	Fill(color.Color)
}

// Buffer holds the pixel values and is a container that is used by most image formats in this package.
type Buffer struct {
	// Rect is the image bounding box.
	Rect image.Rectangle

	// Pix are the image pixels.
	Pix []byte

	// Stride is the Pix stride (in bytes) between vertically adjacent pixels.
	Stride int
}

func (p *Buffer) Bounds() image.Rectangle {
	return p.Rect
}

func (p *Buffer) Clear() {
	for i := range p.Pix {
		p.Pix[i] = 0x00
	}
}

// fill repeats px over every visible pixel, leaving row padding alone.
func (p *Buffer) fill(px []byte) {
	var (
		w = p.Rect.Dx() * len(px)
		h = p.Rect.Dy()
	)
	for y := 0; y < h; y++ {
		row := p.Pix[y*p.Stride : y*p.Stride+w]
		for i := 0; i < w; i += len(px) {
			copy(row[i:], px)
		}
	}
}

func makeBuffer(w, h, stride, size int) Buffer {
	return Buffer{
		Rect:   image.Rect(0, 0, w, h),
		Pix:    make([]byte, size),
		Stride: stride,
	}
}

// NewImageFrom wraps pix, which is laid out in format f with the given stride,
// without copying it.
func NewImageFrom(f Format, pix []byte, w, h, stride int) (Image, error) {
	if w < 0 || h < 0 || stride < w*f.BytesPerPixel() {
		return nil, fmt.Errorf("pixel: invalid geometry %dx%d with stride %d for %s", w, h, stride, f)
	}
	if h > 0 && len(pix) < (h-1)*stride+w*f.BytesPerPixel() {
		return nil, ErrShortBuffer
	}

	b := Buffer{
		Rect:   image.Rect(0, 0, w, h),
		Pix:    pix,
		Stride: stride,
	}
	switch f {
	case C8:
		return &Gray8Image{Buffer: b}, nil
	case XRGB1555:
		return &CRGB15Image{Buffer: b, Order: binary.LittleEndian}, nil
	case RGB565:
		return &CRGB16Image{Buffer: b, Order: binary.LittleEndian}, nil
	case RGB888:
		return &RGB24Image{Buffer: b}, nil
	case XRGB8888:
		return &XRGB32Image{Buffer: b}, nil
	case ARGB8888:
		return &ARGB32Image{Buffer: b}, nil
	default:
		return nil, ErrFormat
	}
}

// Gray8Image is an 8-bits per pixel gray scale image, used for C8 buffers.
type Gray8Image struct {
	Buffer
}

func NewGray8Image(w, h int) *Gray8Image {
	return &Gray8Image{
		Buffer: makeBuffer(w, h, w, w*h),
	}
}

func (p *Gray8Image) ColorModel() color.Model {
	return Gray8Model
}

func (p *Gray8Image) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}
	return color.Gray{Y: p.Pix[y*p.Stride+x]}
}

func (p *Gray8Image) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}
	p.Pix[y*p.Stride+x] = Gray8Model.Convert(c).(color.Gray).Y
}

func (p *Gray8Image) Fill(c color.Color) {
	p.fill([]byte{Gray8Model.Convert(c).(color.Gray).Y})
}

// CRGB15Image is a 15-bits per pixel 5-5-5-bit RGB image.
type CRGB15Image struct {
	Buffer
	Order binary.ByteOrder
}

func NewCRGB15Image(w, h int) *CRGB15Image {
	return &CRGB15Image{
		Buffer: makeBuffer(w, h, w*2, w*2*h),
		Order:  binary.LittleEndian,
	}
}

func (p *CRGB15Image) ColorModel() color.Model {
	return CRGB15Model
}

func (p *CRGB15Image) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}

	v := p.Order.Uint16(p.Pix[x*2+y*p.Stride:])
	return CRGB15{v & 0x7fff}
}

func (p *CRGB15Image) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}

	v := crgb15Model(c).(CRGB15).V
	p.Order.PutUint16(p.Pix[x*2+y*p.Stride:], v)
}

func (p *CRGB15Image) Fill(c color.Color) {
	bytes := make([]byte, 2)
	p.Order.PutUint16(bytes, crgb15Model(c).(CRGB15).V)
	p.fill(bytes)
}

// CRGB16Image is a 16-bits per pixel 5-6-5-bit RGB image.
type CRGB16Image struct {
	Buffer
	Order binary.ByteOrder
}

func NewCRGB16Image(w, h int) *CRGB16Image {
	return &CRGB16Image{
		Buffer: makeBuffer(w, h, w*2, w*2*h),
		Order:  binary.LittleEndian,
	}
}

func (p *CRGB16Image) ColorModel() color.Model {
	return CRGB16Model
}

func (p *CRGB16Image) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}

	v := p.Order.Uint16(p.Pix[x*2+y*p.Stride:])
	return CRGB16{v}
}

func (p *CRGB16Image) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}

	v := crgb16Model(c).(CRGB16).V
	p.Order.PutUint16(p.Pix[x*2+y*p.Stride:], v)
}

func (p *CRGB16Image) Fill(c color.Color) {
	bytes := make([]byte, 2)
	p.Order.PutUint16(bytes, crgb16Model(c).(CRGB16).V)
	p.fill(bytes)
}

// RGB24Image is a 24-bits per pixel image, stored as blue, green, red.
type RGB24Image struct {
	Buffer
}

func NewRGB24Image(w, h int) *RGB24Image {
	return &RGB24Image{
		Buffer: makeBuffer(w, h, w*3, w*3*h),
	}
}

func (p *RGB24Image) ColorModel() color.Model {
	return XRGB32Model
}

func (p *RGB24Image) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}

	i := x*3 + y*p.Stride
	return color.RGBA{R: p.Pix[i+2], G: p.Pix[i+1], B: p.Pix[i], A: 0xff}
}

func (p *RGB24Image) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}

	v := xrgb32Model(c).(color.RGBA)
	i := x*3 + y*p.Stride
	p.Pix[i+0] = v.B
	p.Pix[i+1] = v.G
	p.Pix[i+2] = v.R
}

func (p *RGB24Image) Fill(c color.Color) {
	v := xrgb32Model(c).(color.RGBA)
	p.fill([]byte{v.B, v.G, v.R})
}

// XRGB32Image is a 32-bits per pixel image, stored as blue, green, red and
// an unused byte.
type XRGB32Image struct {
	Buffer
}

func NewXRGB32Image(w, h int) *XRGB32Image {
	return &XRGB32Image{
		Buffer: makeBuffer(w, h, w*4, w*4*h),
	}
}

func (p *XRGB32Image) ColorModel() color.Model {
	return XRGB32Model
}

func (p *XRGB32Image) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}

	i := x*4 + y*p.Stride
	return color.RGBA{R: p.Pix[i+2], G: p.Pix[i+1], B: p.Pix[i], A: 0xff}
}

func (p *XRGB32Image) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}

	v := xrgb32Model(c).(color.RGBA)
	i := x*4 + y*p.Stride
	p.Pix[i+0] = v.B
	p.Pix[i+1] = v.G
	p.Pix[i+2] = v.R
	p.Pix[i+3] = 0xff
}

func (p *XRGB32Image) Fill(c color.Color) {
	v := xrgb32Model(c).(color.RGBA)
	p.fill([]byte{v.B, v.G, v.R, 0xff})
}

// ARGB32Image is a 32-bits per pixel premultiplied alpha image, stored as
// blue, green, red, alpha.
type ARGB32Image struct {
	Buffer
}

func NewARGB32Image(w, h int) *ARGB32Image {
	return &ARGB32Image{
		Buffer: makeBuffer(w, h, w*4, w*4*h),
	}
}

func (p *ARGB32Image) ColorModel() color.Model {
	return ARGB32Model
}

func (p *ARGB32Image) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}

	i := x*4 + y*p.Stride
	return color.RGBA{R: p.Pix[i+2], G: p.Pix[i+1], B: p.Pix[i], A: p.Pix[i+3]}
}

func (p *ARGB32Image) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}

	v := ARGB32Model.Convert(c).(color.RGBA)
	i := x*4 + y*p.Stride
	p.Pix[i+0] = v.B
	p.Pix[i+1] = v.G
	p.Pix[i+2] = v.R
	p.Pix[i+3] = v.A
}

func (p *ARGB32Image) Fill(c color.Color) {
	v := ARGB32Model.Convert(c).(color.RGBA)
	p.fill([]byte{v.B, v.G, v.R, v.A})
}

// Interface checks.
var (
	_ Image = (*Gray8Image)(nil)
	_ Image = (*CRGB15Image)(nil)
	_ Image = (*CRGB16Image)(nil)
	_ Image = (*RGB24Image)(nil)
	_ Image = (*XRGB32Image)(nil)
	_ Image = (*ARGB32Image)(nil)
)

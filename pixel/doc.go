// Package pixel describes kernel pixel formats and implements images that
// draw directly into pixel memory laid out in those formats.
//
// The color models are compatible with Go's native [color.Color] and
// [image.Image] / [draw.Image] interfaces.
package pixel

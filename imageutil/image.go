// Package imageutil provides pure Go raster utilities for the
// quantization pipeline: byte decoding, bounded downscaling, lossless
// encoding, and a thin pixel-access wrapper over image.NRGBA.
package imageutil

import (
	"image"
	"image/color"
)

// RGBAImage wraps image.NRGBA with convenience methods for pixel
// access. Pixels are stored row-major as non-premultiplied
// (R, G, B, A) byte quadruples, so color channels survive encode and
// decode untouched regardless of alpha.
type RGBAImage struct {
	*image.NRGBA
}

// NewRGBAImage creates a new RGBAImage with the specified dimensions.
func NewRGBAImage(width, height int) *RGBAImage {
	return &RGBAImage{
		NRGBA: image.NewNRGBA(image.Rect(0, 0, width, height)),
	}
}

// RGBAImageFromImage converts any image.Image to RGBAImage.
func RGBAImageFromImage(img image.Image) *RGBAImage {
	if nrgba, ok := img.(*image.NRGBA); ok && nrgba.Rect.Min == (image.Point{}) {
		return &RGBAImage{NRGBA: nrgba}
	}

	bounds := img.Bounds()
	dst := NewRGBAImage(bounds.Dx(), bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			dst.Set(x-bounds.Min.X, y-bounds.Min.Y, img.At(x, y))
		}
	}
	return dst
}

// Width returns the image width.
func (img *RGBAImage) Width() int {
	return img.Bounds().Dx()
}

// Height returns the image height.
func (img *RGBAImage) Height() int {
	return img.Bounds().Dy()
}

// Pixel returns the (R, G, B, A) quadruple at (x, y).
func (img *RGBAImage) Pixel(x, y int) (r, g, b, a uint8) {
	c := img.NRGBAAt(x, y)
	return c.R, c.G, c.B, c.A
}

// Alpha returns the alpha channel value at (x, y).
func (img *RGBAImage) Alpha(x, y int) uint8 {
	return img.Pix[img.PixOffset(x, y)+3]
}

// SetPixel sets the full (R, G, B, A) quadruple at (x, y).
func (img *RGBAImage) SetPixel(x, y int, r, g, b, a uint8) {
	img.SetNRGBA(x, y, color.NRGBA{R: r, G: g, B: b, A: a})
}

// Clone creates a deep copy of the image.
func (img *RGBAImage) Clone() *RGBAImage {
	clone := NewRGBAImage(img.Width(), img.Height())
	copy(clone.Pix, img.Pix)
	return clone
}

package imageutil

import (
	"image"

	"golang.org/x/image/draw"
)

// Interpolation specifies the interpolation method for resizing.
type Interpolation int

const (
	// InterpolationArea uses Catmull-Rom, the highest-quality option
	// for photographic downscaling.
	InterpolationArea Interpolation = iota

	// InterpolationLinear uses bilinear interpolation.
	InterpolationLinear

	// InterpolationNearest uses nearest-neighbor interpolation.
	// Fastest but lowest quality.
	InterpolationNearest
)

// Resize resizes an RGBA image to the specified dimensions using the
// given interpolation method. The alpha channel is scaled along with
// the color channels.
func Resize(img *RGBAImage, width, height int, interp Interpolation) *RGBAImage {
	dst := NewRGBAImage(width, height)
	dstRect := image.Rect(0, 0, width, height)

	var scaler draw.Scaler
	switch interp {
	case InterpolationArea:
		scaler = draw.CatmullRom
	case InterpolationLinear:
		scaler = draw.BiLinear
	case InterpolationNearest:
		scaler = draw.NearestNeighbor
	default:
		scaler = draw.CatmullRom
	}

	scaler.Scale(dst.NRGBA, dstRect, img.NRGBA, img.Bounds(), draw.Src, nil)
	return dst
}

// FitWithin downscales an image proportionally so that its longer side
// equals maxDim. Images already within the bound on both sides are
// returned unchanged. Dimensions are rounded to the nearest integer
// with a floor of 1.
func FitWithin(img *RGBAImage, maxDim int, interp Interpolation) *RGBAImage {
	w, h := img.Width(), img.Height()
	longer := w
	if h > longer {
		longer = h
	}
	if longer <= maxDim {
		return img
	}

	scale := float64(maxDim) / float64(longer)
	newW := int(float64(w)*scale + 0.5)
	newH := int(float64(h)*scale + 0.5)
	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}
	return Resize(img, newW, newH, interp)
}

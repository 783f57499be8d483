package imageutil

import "image/color"

// CreateSolidImage creates a fully opaque solid color image.
func CreateSolidImage(width, height int, r, g, b uint8) *RGBAImage {
	img := NewRGBAImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}

// CreateCheckerboardImage creates an opaque two-color checkerboard.
func CreateCheckerboardImage(width, height, squareSize int, a, b color.NRGBA) *RGBAImage {
	img := NewRGBAImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if ((x/squareSize)+(y/squareSize))%2 == 0 {
				img.SetNRGBA(x, y, a)
			} else {
				img.SetNRGBA(x, y, b)
			}
		}
	}
	return img
}

// CreateTransparentImage creates an image with every pixel at alpha 0.
func CreateTransparentImage(width, height int) *RGBAImage {
	return NewRGBAImage(width, height)
}

// CreateGradientImage creates an opaque horizontal grayscale gradient.
func CreateGradientImage(width, height int) *RGBAImage {
	img := NewRGBAImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := uint8(255 * x / (width - 1))
			img.SetNRGBA(x, y, color.NRGBA{R: v, G: v, B: v, A: 255})
		}
	}
	return img
}

// CreateAlphaRampImage creates a solid color image whose alpha rises
// left to right from 0 to 255, crossing the visibility threshold near
// the horizontal midpoint.
func CreateAlphaRampImage(width, height int, r, g, b uint8) *RGBAImage {
	img := NewRGBAImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			a := uint8(255 * x / (width - 1))
			img.SetNRGBA(x, y, color.NRGBA{R: r, G: g, B: b, A: a})
		}
	}
	return img
}

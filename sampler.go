package quantpix

import (
	"math/rand"

	"github.com/quantpix/quantpix/imageutil"
)

// VisibleAlphaThreshold is the alpha value a pixel must exceed to count
// as visible. Pixels at or below it are excluded from the training set
// but still requantized by the mapper.
const VisibleAlphaThreshold = 128

// SampleVisible extracts the clustering training set from an image: one
// RGB vector per visible pixel, in row-major scan order. When the
// visible count exceeds sampleCap, a uniform subset of exactly
// sampleCap vectors is drawn without replacement using rng. A
// sampleCap of zero or less disables subsampling.
//
// Returns an EmptyImageError when no pixel passes the visibility
// threshold.
func SampleVisible(img *imageutil.RGBAImage, sampleCap int, rng *rand.Rand) ([]RGB, error) {
	width, height := img.Width(), img.Height()
	samples := make([]RGB, 0, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, a := img.Pixel(x, y)
			if a > VisibleAlphaThreshold {
				samples = append(samples, RGB{R: r, G: g, B: b})
			}
		}
	}

	if len(samples) == 0 {
		return nil, &EmptyImageError{Width: width, Height: height}
	}

	if sampleCap > 0 && len(samples) > sampleCap {
		subset := make([]RGB, sampleCap)
		for i, j := range rng.Perm(len(samples))[:sampleCap] {
			subset[i] = samples[j]
		}
		return subset, nil
	}

	return samples, nil
}

package quantpix

import "github.com/quantpix/quantpix/imageutil"

// MapToCodebook requantizes every pixel of img against the codebook,
// returning a new buffer of identical dimensions whose RGB values are
// drawn exclusively from the codebook and whose alpha channel matches
// the input pixel-for-pixel. All pixels are mapped, visible or not.
//
// Nearest-entry lookups are memoized by exact (R, G, B) triplet for the
// duration of the call, so repeated colors cost one distance scan. The
// cache is bounded by the distinct-color count of one image and is
// discarded on return.
func MapToCodebook(img *imageutil.RGBAImage, codebook Codebook) *imageutil.RGBAImage {
	width, height := img.Width(), img.Height()
	out := imageutil.NewRGBAImage(width, height)
	memo := make(map[uint32]RGB)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, a := img.Pixel(x, y)
			key := RGB{R: r, G: g, B: b}.ToUint32()
			mapped, ok := memo[key]
			if !ok {
				mapped = codebook[codebook.Nearest(RGB{R: r, G: g, B: b})]
				memo[key] = mapped
			}
			out.SetPixel(x, y, mapped.R, mapped.G, mapped.B, a)
		}
	}

	return out
}

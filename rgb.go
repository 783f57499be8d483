package quantpix

import "image/color"

// RGB represents a color in the RGB color space with 8-bit channels,
// where each channel ranges from 0 to 255. It is the vector type the
// clusterer and mapper operate on; alpha is carried separately by the
// pixel buffer and never participates in distance calculations.
type RGB struct {
	R, G, B uint8
}

// ToUint32 packs an RGB color into a 32-bit unsigned integer, suitable
// for use as a map key.
func (c RGB) ToUint32() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// RGBFromUint32 unpacks a 32-bit unsigned integer into an RGB color.
func RGBFromUint32(v uint32) RGB {
	return RGB{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}
}

// DistanceSquared returns the squared Euclidean distance between two
// RGB colors. Squared distance preserves ordering, so nearest-color
// searches skip the square root.
func (c RGB) DistanceSquared(other RGB) int64 {
	dr := int64(c.R) - int64(other.R)
	dg := int64(c.G) - int64(other.G)
	db := int64(c.B) - int64(other.B)
	return dr*dr + dg*dg + db*db
}

// ToColor converts an RGB color to a color.RGBA with full opacity.
func (c RGB) ToColor() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// Codebook is an ordered palette of representative colors produced by
// clustering. Its length is fixed for the lifetime of a clustering run;
// empty clusters are reseeded in place rather than removed.
type Codebook []RGB

// Nearest returns the index of the codebook entry closest to c by
// squared Euclidean distance. Ties resolve to the lowest index, which
// keeps the mapping deterministic for any codebook ordering.
func (cb Codebook) Nearest(c RGB) int {
	best := 0
	bestDist := cb[0].DistanceSquared(c)
	for i := 1; i < len(cb); i++ {
		if d := cb[i].DistanceSquared(c); d < bestDist {
			bestDist = d
			best = i
			if d == 0 {
				break
			}
		}
	}
	return best
}

// Palette returns the codebook as a color.Palette for interop with
// standard library consumers such as image/draw quantized targets.
func (cb Codebook) Palette() color.Palette {
	p := make(color.Palette, len(cb))
	for i, c := range cb {
		p[i] = c.ToColor()
	}
	return p
}

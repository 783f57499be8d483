package imageutil

import (
	"bytes"
	"fmt"
	"image/png"
)

// EncodePNG encodes an image as PNG at the best available compression
// level. PNG is lossless, so the encoded bytes reproduce the pixel
// buffer exactly on decode.
func EncodePNG(img *RGBAImage) ([]byte, error) {
	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(&buf, img.NRGBA); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}

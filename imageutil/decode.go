package imageutil

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
)

// MIME types accepted by Decode.
const (
	MIMEPNG  = "image/png"
	MIMEJPEG = "image/jpeg"
)

// Decode parses raw PNG or JPEG bytes into an RGBAImage. The declared
// MIME type selects the codec; bytes that do not parse under the
// declared codec fail rather than falling back to sniffing.
func Decode(data []byte, mime string) (*RGBAImage, error) {
	var (
		img image.Image
		err error
	)
	switch mime {
	case MIMEPNG:
		img, err = png.Decode(bytes.NewReader(data))
	case MIMEJPEG, "image/jpg":
		img, err = jpeg.Decode(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("unsupported MIME type %q", mime)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return RGBAImageFromImage(img), nil
}

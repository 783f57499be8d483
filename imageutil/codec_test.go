package imageutil

import (
	"bytes"
	"image/jpeg"
	"testing"
)

func TestEncodeDecodePNGRoundTrip(t *testing.T) {
	img := NewRGBAImage(8, 8)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.SetPixel(x, y, uint8(x*30), uint8(y*30), 77, uint8(x*y*4))
		}
	}

	data, err := EncodePNG(img)
	if err != nil {
		t.Fatalf("EncodePNG failed: %v", err)
	}

	decoded, err := Decode(data, MIMEPNG)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	// PNG is lossless and non-premultiplied: every quadruple survives.
	if !bytes.Equal(decoded.Pix, img.Pix) {
		t.Error("PNG round trip altered pixel data")
	}
}

func TestDecodeJPEG(t *testing.T) {
	src := CreateSolidImage(16, 16, 128, 64, 32)
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, src.NRGBA, &jpeg.Options{Quality: 95}); err != nil {
		t.Fatalf("Failed to encode test JPEG: %v", err)
	}

	decoded, err := Decode(buf.Bytes(), MIMEJPEG)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if decoded.Width() != 16 || decoded.Height() != 16 {
		t.Errorf("Expected 16x16, got %dx%d",
			decoded.Width(), decoded.Height())
	}
	// JPEG has no alpha channel; decoded pixels are opaque.
	if decoded.Alpha(8, 8) != 255 {
		t.Errorf("Expected opaque alpha, got %d", decoded.Alpha(8, 8))
	}
}

func TestDecodeRejectsMismatchedCodec(t *testing.T) {
	src := CreateSolidImage(4, 4, 1, 2, 3)
	data, err := EncodePNG(src)
	if err != nil {
		t.Fatalf("EncodePNG failed: %v", err)
	}

	if _, err := Decode(data, MIMEJPEG); err == nil {
		t.Error("PNG bytes declared as JPEG should fail to decode")
	}
}

func TestDecodeRejectsUnsupportedMIME(t *testing.T) {
	if _, err := Decode([]byte{0x47, 0x49, 0x46}, "image/gif"); err == nil {
		t.Error("Unsupported MIME type should be rejected")
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	if _, err := Decode([]byte("definitely not a PNG"), MIMEPNG); err == nil {
		t.Error("Garbage bytes should fail to decode")
	}
}

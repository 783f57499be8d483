package quantpix

import "fmt"

// DecodeError reports input bytes that could not be parsed as a
// supported raster format, or a declared MIME type outside the
// supported set.
type DecodeError struct {
	MIME string
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decode %s: %v", e.MIME, e.Err)
	}
	return fmt.Sprintf("decode %s: unsupported image format", e.MIME)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// EmptyImageError reports an image with no pixels above the visibility
// threshold, leaving the clusterer with nothing to train on.
type EmptyImageError struct {
	Width, Height int
}

func (e *EmptyImageError) Error() string {
	return fmt.Sprintf("no visible pixels in %dx%d image", e.Width, e.Height)
}

// RenderError reports a failure to encode the quantized pixel buffer.
type RenderError struct {
	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("encode quantized image: %v", e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// IOError reports a failure reading the underlying byte source. The
// library itself works on in-memory slices; this surfaces from callers
// such as the CLI that stream input before invoking the pipeline.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

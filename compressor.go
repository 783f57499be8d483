// Package quantpix compresses photographs by vector quantization: it
// fits a fixed-size color codebook to the image with K-means clustering
// in RGB space, requantizes every pixel against the codebook, and
// returns the palette-reduced encoding only when it is smaller than the
// original bytes.
package quantpix

import (
	"math/rand"
	"time"

	"github.com/quantpix/quantpix/imageutil"
)

const (
	// DefaultMaxDimension bounds the longer image side before
	// clustering; larger inputs are downscaled proportionally.
	DefaultMaxDimension = 256

	// DefaultSampleCap bounds the clustering training set. The full
	// pixel buffer is still requantized regardless of the cap.
	DefaultSampleCap = 40000
)

// Stats reports the byte sizes of a compression attempt.
type Stats struct {
	OriginalSize        uint64
	CompressedSize      uint64
	ReductionPercentage float64
}

// Result is the outcome of one pipeline invocation: the winning image
// bytes, their MIME type, and the size comparison that picked them.
// When CompressionApplied is false, Data is the caller's original bytes
// unmodified.
type Result struct {
	Data               []byte
	MIME               string
	Stats              Stats
	CompressionApplied bool
}

// Encoder produces a lossless byte encoding of a pixel buffer. The
// selector compares its output length against the original file, so
// swapping encoders changes which side wins for borderline images.
type Encoder interface {
	Encode(img *imageutil.RGBAImage) ([]byte, error)
}

// PNGEncoder is the default Encoder: stdlib PNG at best compression.
type PNGEncoder struct{}

// Encode implements Encoder.
func (PNGEncoder) Encode(img *imageutil.RGBAImage) ([]byte, error) {
	return imageutil.EncodePNG(img)
}

// Compressor runs the quantization pipeline. A single Compressor is
// safe for concurrent use: every invocation owns its pixel buffers,
// training set, codebook, memo cache, and random generator.
type Compressor struct {
	// Configuration options
	PaletteSize   int
	MaxIterations int
	MaxDimension  int
	SampleCap     int

	encoder Encoder
	seed    int64
	seeded  bool
}

// Option is a functional option for configuring a Compressor.
type Option func(*Compressor)

// New creates a Compressor with the given options. Defaults:
// PaletteSize=64, MaxIterations=10, MaxDimension=256, SampleCap=40000,
// PNG encoding, time-seeded randomness.
func New(opts ...Option) *Compressor {
	c := &Compressor{
		PaletteSize:   DefaultPaletteSize,
		MaxIterations: DefaultMaxIterations,
		MaxDimension:  DefaultMaxDimension,
		SampleCap:     DefaultSampleCap,
		encoder:       PNGEncoder{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithPaletteSize sets the codebook entry count.
func WithPaletteSize(k int) Option {
	return func(c *Compressor) { c.PaletteSize = k }
}

// WithMaxIterations sets the clustering iteration cap.
func WithMaxIterations(n int) Option {
	return func(c *Compressor) { c.MaxIterations = n }
}

// WithMaxDimension sets the longer-side bound applied after decode.
func WithMaxDimension(dim int) Option {
	return func(c *Compressor) { c.MaxDimension = dim }
}

// WithSampleCap sets the training-set size bound (0 disables it).
func WithSampleCap(n int) Option {
	return func(c *Compressor) { c.SampleCap = n }
}

// WithRandSeed pins the random source used for training subsampling
// and empty-cluster reseeding, making the pipeline fully deterministic.
func WithRandSeed(seed int64) Option {
	return func(c *Compressor) {
		c.seed = seed
		c.seeded = true
	}
}

// WithEncoder replaces the lossless encoder used by the selector.
func WithEncoder(enc Encoder) Option {
	return func(c *Compressor) { c.encoder = enc }
}

// newRand returns the per-invocation random generator. Each invocation
// gets its own so concurrent Compress calls never share rand state.
func (c *Compressor) newRand() *rand.Rand {
	if c.seeded {
		return rand.New(rand.NewSource(c.seed))
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// Compress runs the full pipeline on raw PNG or JPEG bytes: decode and
// bound resolution, sample visible pixels, fit the codebook, requantize
// the full buffer, encode losslessly, and return whichever of the
// quantized encoding and the original bytes is smaller.
//
// The returned Result never carries more bytes than went in. Failures
// are atomic; no partial codebook or half-quantized image escapes.
func (c *Compressor) Compress(data []byte, mime string) (*Result, error) {
	img, err := imageutil.Decode(data, mime)
	if err != nil {
		return nil, &DecodeError{MIME: mime, Err: err}
	}
	img = imageutil.FitWithin(img, c.MaxDimension, imageutil.InterpolationArea)

	rng := c.newRand()
	training, err := SampleVisible(img, c.SampleCap, rng)
	if err != nil {
		return nil, err
	}

	codebook := Cluster(training, c.PaletteSize, c.MaxIterations, rng)
	quantized := MapToCodebook(img, codebook)

	encoded, err := c.encoder.Encode(quantized)
	if err != nil {
		return nil, &RenderError{Err: err}
	}

	originalSize := uint64(len(data))
	if uint64(len(encoded)) < originalSize {
		return &Result{
			Data: encoded,
			MIME: imageutil.MIMEPNG,
			Stats: Stats{
				OriginalSize:        originalSize,
				CompressedSize:      uint64(len(encoded)),
				ReductionPercentage: float64(originalSize-uint64(len(encoded))) / float64(originalSize) * 100,
			},
			CompressionApplied: true,
		}, nil
	}

	return &Result{
		Data: data,
		MIME: mime,
		Stats: Stats{
			OriginalSize:        originalSize,
			CompressedSize:      originalSize,
			ReductionPercentage: 0,
		},
		CompressionApplied: false,
	}, nil
}

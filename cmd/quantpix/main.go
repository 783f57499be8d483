package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/quantpix/quantpix"
	"github.com/quantpix/quantpix/imageutil"
)

func mimeForPath(path string) (string, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return imageutil.MIMEPNG, true
	case ".jpg", ".jpeg":
		return imageutil.MIMEJPEG, true
	}
	return "", false
}

func main() {
	inputFile := flag.String("input", "",
		"Path to the input image file (required)")
	outputFile := flag.String("output", "",
		"Path to save the winning image (default: <input>.quantized.png)")
	colors := flag.Int("colors", quantpix.DefaultPaletteSize,
		"Number of palette colors to fit")
	iters := flag.Int("iters", quantpix.DefaultMaxIterations,
		"Maximum clustering iterations")
	maxDim := flag.Int("maxdim", quantpix.DefaultMaxDimension,
		"Longer-side bound applied after decode")
	samples := flag.Int("samples", quantpix.DefaultSampleCap,
		"Training sample cap, 0 to disable subsampling")
	seed := flag.Int64("seed", 0,
		"Random seed for reproducible runs (0 = time-seeded)")
	flag.Parse()

	if *inputFile == "" {
		fmt.Println("Please provide the image using the -input flag")
		flag.PrintDefaults()
		return
	}

	mime, ok := mimeForPath(*inputFile)
	if !ok {
		fmt.Printf("Unsupported input extension on %s (want .png, .jpg, or .jpeg)\n",
			*inputFile)
		os.Exit(1)
	}

	data, err := os.ReadFile(*inputFile)
	if err != nil {
		fmt.Printf("Error: %v\n", &quantpix.IOError{Path: *inputFile, Err: err})
		os.Exit(1)
	}

	opts := []quantpix.Option{
		quantpix.WithPaletteSize(*colors),
		quantpix.WithMaxIterations(*iters),
		quantpix.WithMaxDimension(*maxDim),
		quantpix.WithSampleCap(*samples),
	}
	if *seed != 0 {
		opts = append(opts, quantpix.WithRandSeed(*seed))
	}

	start := time.Now()
	result, err := quantpix.New(opts...).Compress(data, mime)
	if err != nil {
		fmt.Printf("Error compressing image: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("original: %d bytes\n", result.Stats.OriginalSize)
	fmt.Printf("quantized: %d bytes (%s)\n", result.Stats.CompressedSize, result.MIME)
	fmt.Printf("reduction: %.2f%%\n", result.Stats.ReductionPercentage)
	if result.CompressionApplied {
		fmt.Printf("palette version won with %d colors\n", *colors)
	} else {
		fmt.Println("original was already smaller, keeping it")
	}
	fmt.Printf("elapsed: %v\n", time.Since(start))

	out := *outputFile
	if out == "" {
		ext := filepath.Ext(*inputFile)
		out = strings.TrimSuffix(*inputFile, ext) + ".quantized.png"
		if !result.CompressionApplied {
			out = strings.TrimSuffix(*inputFile, ext) + ".original" + ext
		}
	}
	if err := os.WriteFile(out, result.Data, 0644); err != nil {
		fmt.Printf("Error writing output: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s\n", out)
}

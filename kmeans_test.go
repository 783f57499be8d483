package quantpix

import (
	"math/rand"
	"testing"
)

func grayRamp(n int) []RGB {
	training := make([]RGB, n)
	for i := range training {
		v := uint8(255 * i / (n - 1))
		training[i] = RGB{R: v, G: v, B: v}
	}
	return training
}

func TestClusterCodebookCardinality(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		training []RGB
	}{
		{"many distinct colors", grayRamp(1000)},
		{"single color", func() []RGB {
			training := make([]RGB, 200)
			for i := range training {
				training[i] = RGB{R: 42, G: 84, B: 126}
			}
			return training
		}()},
		{"fewer vectors than entries", grayRamp(5)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cb := Cluster(tc.training, DefaultPaletteSize,
				DefaultMaxIterations, rand.New(rand.NewSource(3)))
			if len(cb) != DefaultPaletteSize {
				t.Errorf("Expected %d codebook entries, got %d",
					DefaultPaletteSize, len(cb))
			}
		})
	}
}

func TestClusterSingleColorCollapse(t *testing.T) {
	t.Parallel()

	want := RGB{R: 17, G: 34, B: 51}
	training := make([]RGB, 100)
	for i := range training {
		training[i] = want
	}

	cb := Cluster(training, DefaultPaletteSize, DefaultMaxIterations,
		rand.New(rand.NewSource(5)))
	for i, c := range cb {
		if c != want {
			t.Errorf("Entry %d: expected %v, got %v", i, want, c)
		}
	}
	if got := cb[cb.Nearest(want)]; got != want {
		t.Errorf("Nearest lookup should reproduce %v, got %v", want, got)
	}
}

func TestClusterEarlyConvergence(t *testing.T) {
	t.Parallel()

	// Two tight clusters and k=2: centroids land on the cluster means
	// in one pass and never move again.
	training := make([]RGB, 0, 100)
	for i := 0; i < 50; i++ {
		training = append(training, RGB{R: 10, G: 10, B: 10})
		training = append(training, RGB{R: 240, G: 240, B: 240})
	}

	cb, iterations := cluster(training, 2, DefaultMaxIterations,
		rand.New(rand.NewSource(9)))
	if iterations >= DefaultMaxIterations {
		t.Errorf("Expected early exit, ran all %d iterations", iterations)
	}
	if cb[0] != (RGB{R: 10, G: 10, B: 10}) || cb[1] != (RGB{R: 240, G: 240, B: 240}) {
		t.Errorf("Unexpected converged codebook: %v", cb)
	}
}

func TestClusterTwoColorsExact(t *testing.T) {
	t.Parallel()

	// With only two distinct colors every cluster is pure, so every
	// codebook entry ends up exactly one of the two colors no matter
	// how the 62 surplus entries are reseeded.
	a := RGB{R: 0, G: 0, B: 128}
	b := RGB{R: 255, G: 220, B: 0}
	training := make([]RGB, 0, 512)
	for i := 0; i < 256; i++ {
		training = append(training, a, b)
	}

	cb := Cluster(training, DefaultPaletteSize, DefaultMaxIterations,
		rand.New(rand.NewSource(11)))
	if len(cb) != DefaultPaletteSize {
		t.Fatalf("Expected %d entries, got %d", DefaultPaletteSize, len(cb))
	}
	for i, c := range cb {
		if c != a && c != b {
			t.Errorf("Entry %d is %v, not one of the training colors", i, c)
		}
	}

	// Reconstruction is lossless: both colors map back to themselves.
	if got := cb[cb.Nearest(a)]; got != a {
		t.Errorf("Color %v reconstructed as %v", a, got)
	}
	if got := cb[cb.Nearest(b)]; got != b {
		t.Errorf("Color %v reconstructed as %v", b, got)
	}
}

func TestClusterDeterministicWithSeed(t *testing.T) {
	t.Parallel()

	training := grayRamp(500)
	first := Cluster(training, DefaultPaletteSize, DefaultMaxIterations,
		rand.New(rand.NewSource(21)))
	second := Cluster(training, DefaultPaletteSize, DefaultMaxIterations,
		rand.New(rand.NewSource(21)))
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("Seeded clustering not reproducible at entry %d", i)
		}
	}
}

package quantpix

import "math/rand"

const (
	// DefaultPaletteSize is the number of codebook entries fitted by
	// clustering.
	DefaultPaletteSize = 64

	// DefaultMaxIterations bounds the number of K-means passes.
	DefaultMaxIterations = 10

	// convergenceThreshold is the squared-distance movement below
	// which a codebook entry counts as settled. Entries are integer
	// colors, so any real movement is at least 1.
	convergenceThreshold = 1e-4
)

// Cluster fits a codebook of exactly k colors to the training vectors
// using bounded-iteration K-means in RGB space.
//
// The codebook is seeded with the first k training vectors, wrapping
// around when fewer than k exist; duplicate seeds are resolved by
// empty-cluster reseeding on later passes. Each iteration assigns every
// vector to its nearest entry (squared Euclidean distance, lowest index
// wins ties), then replaces each entry with the integer-rounded mean of
// its assigned vectors. An entry left with no assignments is reseeded
// to a training vector chosen by rng rather than dropped, so the
// codebook length never changes. Iteration stops early once no entry
// moves by more than the convergence threshold.
func Cluster(training []RGB, k, maxIters int, rng *rand.Rand) Codebook {
	codebook, _ := cluster(training, k, maxIters, rng)
	return codebook
}

// cluster additionally reports how many iterations ran before the cap
// or the convergence check stopped it.
func cluster(training []RGB, k, maxIters int, rng *rand.Rand) (Codebook, int) {
	n := len(training)
	codebook := make(Codebook, k)
	for i := range codebook {
		codebook[i] = training[i%n]
	}

	sums := make([][3]int64, k)
	counts := make([]int64, k)

	iterations := 0
	for iter := 0; iter < maxIters; iter++ {
		iterations = iter + 1
		for i := range sums {
			sums[i] = [3]int64{}
			counts[i] = 0
		}

		// Assignment step
		for _, v := range training {
			best := codebook.Nearest(v)
			sums[best][0] += int64(v.R)
			sums[best][1] += int64(v.G)
			sums[best][2] += int64(v.B)
			counts[best]++
		}

		// Update step
		moved := false
		for i := range codebook {
			var next RGB
			if counts[i] > 0 {
				next = RGB{
					R: uint8((sums[i][0] + counts[i]/2) / counts[i]),
					G: uint8((sums[i][1] + counts[i]/2) / counts[i]),
					B: uint8((sums[i][2] + counts[i]/2) / counts[i]),
				}
			} else {
				// Live reseed keeps the codebook at k entries.
				next = training[rng.Intn(n)]
			}
			if float64(codebook[i].DistanceSquared(next)) > convergenceThreshold {
				moved = true
			}
			codebook[i] = next
		}

		if !moved {
			break
		}
	}

	return codebook, iterations
}

package dbscan

import "math/rand"

// blobFixture generates a synthetic point set: numBlobs Gaussian
// clusters of blobSize points each, separated by gap, plus numNoise
// uniformly scattered points. It reproduces the clustered-blobs-plus-
// noise shape of the large fixture files used upstream, without
// requiring a committed multi-megabyte dataset.
func blobFixture(seed int64, dim, numBlobs, blobSize, numNoise int, spread, gap float64) []Point {
	rng := rand.New(rand.NewSource(seed))
	points := make([]Point, 0, numBlobs*blobSize+numNoise)

	centers := make([]Point, numBlobs)
	for b := 0; b < numBlobs; b++ {
		var center Point
		for d := 0; d < dim; d++ {
			center[d] = float64(b) * gap
		}
		centers[b] = center
	}

	for b := 0; b < numBlobs; b++ {
		for i := 0; i < blobSize; i++ {
			var p Point
			for d := 0; d < dim; d++ {
				p[d] = centers[b][d] + rng.NormFloat64()*spread
			}
			points = append(points, p)
		}
	}

	noiseSpan := float64(numBlobs) * gap
	for i := 0; i < numNoise; i++ {
		var p Point
		for d := 0; d < dim; d++ {
			p[d] = rng.Float64()*noiseSpan*2 - noiseSpan/2
		}
		points = append(points, p)
	}

	return points
}

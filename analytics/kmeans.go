package analytics

import (
	"fmt"
	"math/rand"
)

// maxKMeansIterations bounds the assign/update loop; the RFM score space is
// tiny (125 distinct points at most) so convergence is fast in practice.
const maxKMeansIterations = 100

// kMeansRestarts is how many independent initializations are tried; the run
// with the lowest inertia wins.
const kMeansRestarts = 10

// KMeansResult is the outcome of one clustering run.
type KMeansResult struct {
	// Labels holds the cluster index (0..k-1) of each input point.
	Labels []int

	// Centroids are the final cluster centers.
	Centroids [][]float64

	// Inertia is the sum of squared distances of points to their centroid.
	Inertia float64
}

// KMeans clusters the points into k groups with Lloyd's algorithm, seeded by
// k-means++ and restarted several times; the best run by inertia is returned.
// All randomness comes from the injected source, so runs with the same seed
// produce identical labels.
func KMeans(points [][]float64, k int, rng *rand.Rand) (*KMeansResult, error) {
	if k <= 0 {
		return nil, fmt.Errorf("cluster count must be positive, got %d", k)
	}
	if len(points) < k {
		return nil, fmt.Errorf("need at least %d points for %d clusters, got %d", k, k, len(points))
	}

	dims := len(points[0])
	for i, p := range points {
		if len(p) != dims {
			return nil, fmt.Errorf("point %d has %d dimensions, expected %d", i, len(p), dims)
		}
	}

	var best *KMeansResult
	for restart := 0; restart < kMeansRestarts; restart++ {
		result := lloyd(points, seedCentroids(points, k, rng))
		if best == nil || result.Inertia < best.Inertia {
			best = result
		}
	}
	return best, nil
}

// seedCentroids picks k initial centers with k-means++: the first uniformly,
// each next with probability proportional to its squared distance from the
// nearest already-chosen center.
func seedCentroids(points [][]float64, k int, rng *rand.Rand) [][]float64 {
	centroids := make([][]float64, 0, k)
	centroids = append(centroids, clonePoint(points[rng.Intn(len(points))]))

	distances := make([]float64, len(points))
	for len(centroids) < k {
		total := 0.0
		for i, p := range points {
			d := squaredDistance(p, centroids[0])
			for _, c := range centroids[1:] {
				if dc := squaredDistance(p, c); dc < d {
					d = dc
				}
			}
			distances[i] = d
			total += d
		}

		// All remaining points coincide with a center: fall back to uniform.
		if total == 0 {
			centroids = append(centroids, clonePoint(points[rng.Intn(len(points))]))
			continue
		}

		draw := rng.Float64() * total
		cumulative := 0.0
		chosen := len(points) - 1
		for i, d := range distances {
			cumulative += d
			if draw < cumulative {
				chosen = i
				break
			}
		}
		centroids = append(centroids, clonePoint(points[chosen]))
	}

	return centroids
}

// lloyd runs the assign/update loop from the given initial centroids.
func lloyd(points [][]float64, centroids [][]float64) *KMeansResult {
	k := len(centroids)
	dims := len(points[0])
	labels := make([]int, len(points))

	for iteration := 0; iteration < maxKMeansIterations; iteration++ {
		changed := false
		for i, p := range points {
			nearest := nearestCentroid(p, centroids)
			if nearest != labels[i] {
				labels[i] = nearest
				changed = true
			}
		}
		if iteration > 0 && !changed {
			break
		}

		// Recompute centroids as cluster means; an emptied cluster keeps
		// its previous centroid.
		sums := make([][]float64, k)
		counts := make([]int, k)
		for i := range sums {
			sums[i] = make([]float64, dims)
		}
		for i, p := range points {
			c := labels[i]
			counts[c]++
			for d, v := range p {
				sums[c][d] += v
			}
		}
		for c := 0; c < k; c++ {
			if counts[c] == 0 {
				continue
			}
			for d := 0; d < dims; d++ {
				centroids[c][d] = sums[c][d] / float64(counts[c])
			}
		}
	}

	inertia := 0.0
	for i, p := range points {
		inertia += squaredDistance(p, centroids[labels[i]])
	}

	return &KMeansResult{
		Labels:    labels,
		Centroids: centroids,
		Inertia:   inertia,
	}
}

// nearestCentroid returns the index of the centroid closest to p.
func nearestCentroid(p []float64, centroids [][]float64) int {
	nearest := 0
	best := squaredDistance(p, centroids[0])
	for c := 1; c < len(centroids); c++ {
		if d := squaredDistance(p, centroids[c]); d < best {
			best = d
			nearest = c
		}
	}
	return nearest
}

// squaredDistance is the squared Euclidean distance between two points.
func squaredDistance(a, b []float64) float64 {
	sum := 0.0
	for d := range a {
		diff := a[d] - b[d]
		sum += diff * diff
	}
	return sum
}

func clonePoint(p []float64) []float64 {
	return append([]float64(nil), p...)
}

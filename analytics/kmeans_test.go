package analytics

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Four tight, well-separated groups must each end up in their own cluster.
func TestKMeansSeparatesObviousClusters(t *testing.T) {
	centers := [][]float64{{0, 0}, {10, 0}, {0, 10}, {10, 10}}

	var points [][]float64
	for _, c := range centers {
		for i := 0; i < 10; i++ {
			points = append(points, []float64{
				c[0] + float64(i%3)*0.1,
				c[1] + float64(i%2)*0.1,
			})
		}
	}

	result, err := KMeans(points, 4, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	require.Len(t, result.Labels, len(points))

	// All members of a group share one label, and the four groups use four
	// distinct labels.
	groupLabels := make(map[int]bool)
	for g := 0; g < 4; g++ {
		label := result.Labels[g*10]
		for i := 1; i < 10; i++ {
			assert.Equal(t, label, result.Labels[g*10+i], "group %d split across clusters", g)
		}
		groupLabels[label] = true
	}
	assert.Len(t, groupLabels, 4)
}

func TestKMeansDeterministicUnderSeed(t *testing.T) {
	points := make([][]float64, 60)
	src := rand.New(rand.NewSource(7))
	for i := range points {
		points[i] = []float64{src.Float64() * 5, src.Float64() * 5, src.Float64() * 5}
	}

	a, err := KMeans(points, 4, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	b, err := KMeans(points, 4, rand.New(rand.NewSource(42)))
	require.NoError(t, err)

	assert.Equal(t, a.Labels, b.Labels)
	assert.Equal(t, a.Centroids, b.Centroids)
	assert.Equal(t, a.Inertia, b.Inertia)
}

func TestKMeansInputValidation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	_, err := KMeans([][]float64{{1}, {2}}, 0, rng)
	assert.Error(t, err)

	_, err = KMeans([][]float64{{1}, {2}}, 3, rng)
	assert.Error(t, err, "fewer points than clusters")

	_, err = KMeans([][]float64{{1, 2}, {1}}, 2, rng)
	assert.Error(t, err, "ragged dimensions")
}

func TestKMeansSingleCluster(t *testing.T) {
	points := [][]float64{{1, 1}, {2, 2}, {3, 3}}
	result, err := KMeans(points, 1, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	for _, label := range result.Labels {
		assert.Equal(t, 0, label)
	}
	assert.InDelta(t, 2.0, result.Centroids[0][0], 1e-9)
}

package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func metricsAt(id string, lastOrder time.Time, orders int, revenue float64) CustomerMetrics {
	return CustomerMetrics{
		CustomerID:   id,
		LastOrder:    lastOrder,
		TotalOrders:  orders,
		TotalRevenue: revenue,
	}
}

func TestQuintilesApproximatelyEqual(t *testing.T) {
	// 100 distinct values must split into exactly five buckets of 20.
	values := make([]float64, 100)
	for i := range values {
		values[i] = float64(i)
	}

	counts := make(map[int]int)
	for _, b := range quintileByValue(values) {
		counts[b]++
	}

	require.Len(t, counts, 5)
	for bucket := 1; bucket <= 5; bucket++ {
		assert.Equal(t, 20, counts[bucket], "bucket %d", bucket)
	}
}

func TestQuintileByRankHandlesHeavyTies(t *testing.T) {
	// Order counts are heavily tied; rank-based binning must still split
	// the population into equal quintiles.
	values := make([]float64, 50)
	for i := range values {
		values[i] = float64(i % 3) // only three distinct values
	}

	counts := make(map[int]int)
	for _, b := range quintileByRank(values) {
		counts[b]++
	}

	require.Len(t, counts, 5)
	for bucket := 1; bucket <= 5; bucket++ {
		assert.Equal(t, 10, counts[bucket], "bucket %d", bucket)
	}
}

func TestQuintileByValueTiesShareBucket(t *testing.T) {
	values := []float64{1, 1, 1, 2, 3, 4, 5, 6, 7, 8}
	buckets := quintileByValue(values)

	assert.Equal(t, buckets[0], buckets[1])
	assert.Equal(t, buckets[1], buckets[2])
}

func TestRecencyScoringInverted(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	customers := []CustomerMetrics{
		metricsAt("fresh", now.AddDate(0, 0, -1), 20, 5000),
		metricsAt("fading", now.AddDate(0, 0, -50), 2, 200),
		metricsAt("gone", now.AddDate(0, 0, -400), 1, 50),
	}

	rfm := BuildRFM(customers, now)
	require.Len(t, rfm, 3)

	assert.Equal(t, 1, rfm[0].RecencyDays)
	assert.Equal(t, 50, rfm[1].RecencyDays)
	assert.Equal(t, 400, rfm[2].RecencyDays)

	// Fewer days since last order = higher score.
	assert.Greater(t, rfm[0].RecencyScore, rfm[1].RecencyScore)
	assert.Greater(t, rfm[1].RecencyScore, rfm[2].RecencyScore)
	assert.Equal(t, 5, rfm[0].RecencyScore, "most recent customer scores 5")

	// Frequency and monetary score ascending with value.
	assert.Greater(t, rfm[0].FrequencyScore, rfm[2].FrequencyScore)
	assert.Greater(t, rfm[0].MonetaryScore, rfm[2].MonetaryScore)

	for _, c := range rfm {
		assert.Equal(t, c.RecencyScore+c.FrequencyScore+c.MonetaryScore, c.RFMScore)
	}
}

func TestRFMScoreBounds(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	customers := make([]CustomerMetrics, 200)
	for i := range customers {
		customers[i] = metricsAt("c", now.AddDate(0, 0, -(i+1)), i+1, float64(i)*13.7)
	}

	for _, c := range BuildRFM(customers, now) {
		assert.GreaterOrEqual(t, c.RecencyScore, 1)
		assert.LessOrEqual(t, c.RecencyScore, 5)
		assert.GreaterOrEqual(t, c.FrequencyScore, 1)
		assert.LessOrEqual(t, c.FrequencyScore, 5)
		assert.GreaterOrEqual(t, c.MonetaryScore, 1)
		assert.LessOrEqual(t, c.MonetaryScore, 5)
		assert.GreaterOrEqual(t, c.RFMScore, 3)
		assert.LessOrEqual(t, c.RFMScore, 15)
	}
}

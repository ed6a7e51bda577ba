package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Builds a population with four clearly distinct behavior groups.
func segmentedPopulation(now time.Time) []CustomerMetrics {
	var customers []CustomerMetrics

	add := func(prefix string, n, recencyDays, orders int, revenue float64) {
		for i := 0; i < n; i++ {
			customers = append(customers, metricsAt(
				prefix,
				now.AddDate(0, 0, -(recencyDays+i)),
				orders+i%2,
				revenue+float64(i)*10,
			))
		}
	}

	add("vip", 10, 1, 25, 9000)      // recent, frequent, big spenders
	add("loyal", 10, 20, 12, 3000)   // steady
	add("new", 10, 60, 2, 400)       // few orders, moderate recency
	add("atrisk", 10, 350, 1, 60)    // long gone
	return customers
}

func TestSegmentNamesFollowCentroidRank(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	rfm := BuildRFM(segmentedPopulation(now), now)

	rfm, summaries, err := Segment(rfm, 42)
	require.NoError(t, err)
	require.Len(t, summaries, SegmentCount)

	// The VIP group must carry the strongest name, the stale group the
	// weakest, regardless of which raw cluster index they landed in.
	for i := 0; i < 10; i++ {
		assert.Equal(t, "VIP Customers", rfm[i].SegmentName, "vip member %d", i)
	}
	for i := 30; i < 40; i++ {
		assert.Equal(t, "At Risk Customers", rfm[i].SegmentName, "at-risk member %d", i)
	}

	// Summaries order by RFM score must match the fixed name order.
	byName := make(map[string]SegmentSummary)
	for _, s := range summaries {
		byName[s.SegmentName] = s
	}
	require.Len(t, byName, SegmentCount)
	assert.Greater(t, byName["VIP Customers"].AvgRFMScore, byName["At Risk Customers"].AvgRFMScore)
	assert.Greater(t, byName["VIP Customers"].AvgMonetary, byName["At Risk Customers"].AvgMonetary)
	assert.Less(t, byName["VIP Customers"].AvgRecency, byName["At Risk Customers"].AvgRecency)
}

func TestSegmentDeterministicUnderSeed(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	base := segmentedPopulation(now)

	first, _, err := Segment(BuildRFM(base, now), 42)
	require.NoError(t, err)
	second, _, err := Segment(BuildRFM(base, now), 42)
	require.NoError(t, err)

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].SegmentID, second[i].SegmentID)
		assert.Equal(t, first[i].SegmentName, second[i].SegmentName)
	}
}

func TestNameByCentroidRank(t *testing.T) {
	// Cluster indices deliberately out of score order.
	centroids := [][]float64{
		{4, 4, 4}, // strongest -> VIP
		{1, 1, 1}, // weakest -> At Risk
		{3, 3, 3}, // -> Loyal
		{2, 2, 2}, // -> New
	}

	names := nameByCentroidRank(centroids)
	assert.Equal(t, []string{
		"VIP Customers",
		"At Risk Customers",
		"Loyal Customers",
		"New Customers",
	}, names)
}

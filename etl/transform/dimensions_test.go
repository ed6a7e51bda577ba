package transform

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ngna3007/TheGioiDiDong-AnalyticsPlatform/etl/config"
	"github.com/ngna3007/TheGioiDiDong-AnalyticsPlatform/etl/models"
	"github.com/ngna3007/TheGioiDiDong-AnalyticsPlatform/etl/utils"
)

func TestCustomerDimensionRegionLookup(t *testing.T) {
	// Alternate geography to prove the lookup table is injected, not baked in.
	lookups := config.Lookups{
		StateToRegion: map[string]string{"XX": "Testland"},
		CustomerTiers: []config.WeightedLabel{{Label: "Only", Weight: 1}},
	}
	p := NewCustomerDimensionProcessor(lookups, rand.New(rand.NewSource(1)), utils.NewNopLogger())

	dims := p.Process([]models.Customer{
		{CustomerID: "c1", State: "XX"},
		{CustomerID: "c2", State: "XX", Region: "Preset", Tier: "Gold"},
	})
	require.Len(t, dims, 2)

	assert.Equal(t, "Testland", dims[0].Region, "missing region filled from lookup")
	assert.Equal(t, "Only", dims[0].Tier, "missing tier drawn from distribution")
	assert.Equal(t, "Preset", dims[1].Region, "carried region kept")
	assert.Equal(t, "Gold", dims[1].Tier, "carried tier kept")
}

func TestProductDimensionVolumetrics(t *testing.T) {
	lookups := config.Lookups{
		CategoryMapping: map[string]string{"electronics": "Electronics"},
	}
	p := NewProductDimensionProcessor(lookups, utils.NewNopLogger())

	dims := p.Process([]models.Product{
		{ProductID: "p1", CategoryName: "electronics", WeightG: 500, LengthCm: 10, HeightCm: 5, WidthCm: 2},
		{ProductID: "p2", CategoryName: "electronics", WeightG: 500}, // no dimensions
	})
	require.Len(t, dims, 2)

	assert.Equal(t, 100.0, dims[0].VolumeCm3)
	assert.Equal(t, 5.0, dims[0].DensityGPcm3)
	assert.Equal(t, "Electronics", dims[0].CategoryL1)

	assert.Equal(t, 0.0, dims[1].VolumeCm3)
	assert.Equal(t, 0.0, dims[1].DensityGPcm3, "zero volume must not divide")
}

func TestSellerDimensionEnrichment(t *testing.T) {
	lookups := config.Lookups{
		StateToRegion: map[string]string{"Hanoi": "North"},
		SellerTiers:   []config.WeightedLabel{{Label: "Basic", Weight: 1}},
	}
	p := NewSellerDimensionProcessor(lookups, rand.New(rand.NewSource(1)), utils.NewNopLogger())

	dims := p.Process([]models.Seller{{SellerID: "s1", State: "Hanoi"}})
	require.Len(t, dims, 1)

	assert.Equal(t, "North", dims[0].Region)
	assert.Equal(t, "Basic", dims[0].Tier)
	assert.GreaterOrEqual(t, dims[0].Rating, 3.5)
	assert.LessOrEqual(t, dims[0].Rating, 5.0)
}

func mustDate(t *testing.T, year int, month time.Month, dayOfMonth int) time.Time {
	t.Helper()
	return time.Date(year, month, dayOfMonth, 0, 0, 0, 0, time.UTC)
}

func TestBuildDateRow(t *testing.T) {
	// 2024-03-09 is a Saturday.
	row := buildDateRow(mustDate(t, 2024, 3, 9))
	assert.Equal(t, 2024, row.Year)
	assert.Equal(t, 1, row.Quarter)
	assert.Equal(t, "March", row.MonthName)
	assert.Equal(t, 7, row.DayOfWeek)
	assert.Equal(t, "Saturday", row.DayName)
	assert.True(t, row.IsWeekend)

	// 2024-03-11 is a Monday.
	row = buildDateRow(mustDate(t, 2024, 3, 11))
	assert.Equal(t, 2, row.DayOfWeek)
	assert.False(t, row.IsWeekend)
}

func TestPickWeightedConverges(t *testing.T) {
	labels := []config.WeightedLabel{
		{Label: "a", Weight: 0.7},
		{Label: "b", Weight: 0.3},
	}
	rng := rand.New(rand.NewSource(5))

	counts := make(map[string]int)
	const n = 10000
	for i := 0; i < n; i++ {
		counts[config.PickWeighted(rng, labels)]++
	}

	assert.InDelta(t, 0.7, float64(counts["a"])/n, 0.02)
	assert.InDelta(t, 0.3, float64(counts["b"])/n, 0.02)
}

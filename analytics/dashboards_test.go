package analytics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ngna3007/TheGioiDiDong-AnalyticsPlatform/etl/utils"
)

func requirePNG(t *testing.T, path string) {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err, "expected %s", path)
	require.Greater(t, len(data), 8)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, data[:4], "%s is not a PNG", path)
}

func TestDashboardsRenderPNGs(t *testing.T) {
	dir := t.TempDir()
	d := NewDashboards(dir, utils.NewNopLogger())
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	customers := segmentedPopulation(now)
	for i := range customers {
		customers[i].Region = []string{"North", "South", "Central"}[i%3]
		customers[i].Tier = []string{"Silver", "Gold"}[i%2]
	}
	require.NoError(t, d.CustomerAnalysis(customers))
	requirePNG(t, filepath.Join(dir, "customer_analysis.png"))

	products := []ProductMetrics{
		{ProductID: "p1", CategoryL1: "Electronics", TotalOrders: 30, TotalRevenue: 9000, AvgPrice: 300},
		{ProductID: "p2", CategoryL1: "Electronics", TotalOrders: 12, TotalRevenue: 1200, AvgPrice: 100},
		{ProductID: "p3", CategoryL1: "Fashion & Accessories", TotalOrders: 5, TotalRevenue: 250, AvgPrice: 50},
	}
	require.NoError(t, d.ProductAnalysis(products))
	requirePNG(t, filepath.Join(dir, "product_analysis.png"))

	items := []OrderItemRecord{
		{OrderID: "o1", ProductID: "p1", Price: 300, PurchaseTimestamp: now.AddDate(0, -2, 0)},
		{OrderID: "o1", ProductID: "p2", Price: 100, PurchaseTimestamp: now.AddDate(0, -2, 0)},
		{OrderID: "o2", ProductID: "p1", Price: 300, PurchaseTimestamp: now.AddDate(0, -1, 0)},
		{OrderID: "o3", ProductID: "p3", Price: 50, PurchaseTimestamp: now},
	}
	require.NoError(t, d.OrderPatterns(items))
	requirePNG(t, filepath.Join(dir, "order_patterns.png"))

	rfm, summaries, err := Segment(BuildRFM(customers, now), 42)
	require.NoError(t, err)
	require.NoError(t, d.SegmentationResults(rfm, summaries))
	requirePNG(t, filepath.Join(dir, "customer_segmentation.png"))
}

func TestDashboardsSkipEmptyInput(t *testing.T) {
	dir := t.TempDir()
	d := NewDashboards(dir, utils.NewNopLogger())

	require.NoError(t, d.CustomerAnalysis(nil))
	require.NoError(t, d.ProductAnalysis(nil))
	require.NoError(t, d.OrderPatterns(nil))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "no files for empty input")
}

package extractors

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ngna3007/TheGioiDiDong-AnalyticsPlatform/etl/utils"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestExtractReadsPresentFilesAndSkipsMissing(t *testing.T) {
	dir := t.TempDir()

	writeFile(t, dir, "customers.csv",
		"customer_id,customer_name,customer_state,is_active,created_date\n"+
			"KH000001,Nguyen Van An,Hanoi,true,2024-01-15T10:30:00\n"+
			"KH000002,Tran Thi Mai,HCMC,false,2023-06-01T08:00:00\n")
	writeFile(t, dir, "orders.csv",
		"order_id,customer_id,order_status,order_purchase_timestamp,order_delivered_customer_date\n"+
			"o1,KH000001,delivered,2024-02-01 09:00:00,2024-02-05 14:00:00\n"+
			"o2,KH000002,shipped,2024-02-02 10:00:00,\n")

	e := NewExtractor(dir, utils.NewNopLogger())
	extracted, err := e.Extract()
	require.NoError(t, err)

	require.Len(t, extracted.Customers, 2)
	assert.Equal(t, "KH000001", extracted.Customers[0].CustomerID)
	assert.Equal(t, "Nguyen Van An", extracted.Customers[0].Name)
	assert.True(t, extracted.Customers[0].IsActive)
	assert.Equal(t, time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC), extracted.Customers[0].CreatedDate)

	require.Len(t, extracted.Orders, 2)
	assert.Equal(t, "delivered", extracted.Orders[0].Status)
	assert.False(t, extracted.Orders[0].DeliveredCustomerDate.IsZero())
	assert.True(t, extracted.Orders[1].DeliveredCustomerDate.IsZero(), "empty date stays zero")

	// Missing files are skipped, not fatal.
	assert.Empty(t, extracted.Products)
	assert.Empty(t, extracted.Sellers)
	assert.Empty(t, extracted.OrderItems)
}

func TestExtractEmptyDirectory(t *testing.T) {
	e := NewExtractor(t.TempDir(), utils.NewNopLogger())
	extracted, err := e.Extract()
	require.NoError(t, err)
	assert.Empty(t, extracted.Customers)
	assert.Empty(t, extracted.Orders)
}

func TestTableHandlesUnknownColumns(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "order_items.csv",
		"order_id,order_item_id,product_id,seller_id,price,freight_value,extra_column\n"+
			"o1,1,p1,s1,99.90,12.50,ignored\n")

	e := NewExtractor(dir, utils.NewNopLogger())
	extracted, err := e.Extract()
	require.NoError(t, err)

	require.Len(t, extracted.OrderItems, 1)
	item := extracted.OrderItems[0]
	assert.Equal(t, 1, item.OrderItemID)
	assert.Equal(t, 99.90, item.Price)
	assert.Equal(t, 12.50, item.FreightValue)
}

func TestParseTimeLayouts(t *testing.T) {
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), parseTime("2024-03-01"))
	assert.Equal(t, time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC), parseTime("2024-03-01 09:30:00"))
	assert.Equal(t, time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC), parseTime("2024-03-01T09:30:00"))
	assert.True(t, parseTime("").IsZero())
	assert.True(t, parseTime("not-a-date").IsZero())
}

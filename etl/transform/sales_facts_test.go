package transform

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ngna3007/TheGioiDiDong-AnalyticsPlatform/etl/models"
	"github.com/ngna3007/TheGioiDiDong-AnalyticsPlatform/etl/utils"
)

func day(d int) time.Time {
	return time.Date(2024, 3, d, 12, 0, 0, 0, time.UTC)
}

func TestSalesFactsInnerJoin(t *testing.T) {
	p := NewSalesFactsProcessor(utils.NewNopLogger())

	orders := []models.Order{
		{OrderID: "o1", CustomerID: "c1", Status: "delivered", PurchaseTimestamp: day(1)},
	}
	items := []models.OrderItem{
		{OrderID: "o1", OrderItemID: 1, ProductID: "p1", SellerID: "s1", Price: 100, FreightValue: 10},
		{OrderID: "o1", OrderItemID: 2, ProductID: "p2", SellerID: "s1", Price: 50, FreightValue: 5},
		{OrderID: "orphan", OrderItemID: 1, ProductID: "p3", SellerID: "s2", Price: 30, FreightValue: 3},
	}

	facts := p.Process(orders, items, nil)
	require.Len(t, facts, 2, "items without a matching order must be dropped")

	assert.Equal(t, "c1", facts[0].CustomerID)
	assert.Equal(t, 110.0, facts[0].TotalValue)
	assert.Equal(t, 55.0, facts[1].TotalValue)
	assert.Equal(t, 1, facts[0].PaymentInstallments, "no payments table defaults installments to 1")
}

// Delay 0 is on time but not fast; negative delay is both.
func TestDeliveryDelayBoundary(t *testing.T) {
	p := NewSalesFactsProcessor(utils.NewNopLogger())

	cases := []struct {
		name        string
		delivered   time.Time
		estimated   time.Time
		wantDelay   int
		wantOntime  bool
		wantFast    bool
	}{
		{"exactly on estimate", day(10), day(10), 0, true, false},
		{"one day early", day(9), day(10), -1, true, true},
		{"one day late", day(11), day(10), 1, false, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			orders := []models.Order{{
				OrderID:               "o1",
				CustomerID:            "c1",
				PurchaseTimestamp:     day(1),
				DeliveredCustomerDate: tc.delivered,
				EstimatedDeliveryDate: tc.estimated,
			}}
			items := []models.OrderItem{{OrderID: "o1", OrderItemID: 1}}

			facts := p.Process(orders, items, nil)
			require.Len(t, facts, 1)
			require.NotNil(t, facts[0].DeliveryDelayDays)
			assert.Equal(t, tc.wantDelay, *facts[0].DeliveryDelayDays)
			assert.Equal(t, tc.wantOntime, facts[0].IsDeliveredOntime)
			assert.Equal(t, tc.wantFast, facts[0].IsFastDelivery)
		})
	}
}

func TestUndeliveredOrderHasNoDelay(t *testing.T) {
	p := NewSalesFactsProcessor(utils.NewNopLogger())

	orders := []models.Order{{
		OrderID:               "o1",
		PurchaseTimestamp:     day(1),
		EstimatedDeliveryDate: day(10),
		// no delivered date: still in transit
	}}
	items := []models.OrderItem{{OrderID: "o1", OrderItemID: 1}}

	facts := p.Process(orders, items, nil)
	require.Len(t, facts, 1)
	assert.Nil(t, facts[0].DeliveryDelayDays)
	assert.False(t, facts[0].IsDeliveredOntime)
	assert.False(t, facts[0].IsFastDelivery)
}

func TestProcessingTimeHours(t *testing.T) {
	p := NewSalesFactsProcessor(utils.NewNopLogger())

	purchase := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	approved := time.Date(2024, 3, 1, 20, 30, 0, 0, time.UTC)

	orders := []models.Order{{
		OrderID:           "o1",
		PurchaseTimestamp: purchase,
		ApprovedAt:        approved,
	}}
	items := []models.OrderItem{{OrderID: "o1", OrderItemID: 1}}

	facts := p.Process(orders, items, nil)
	require.Len(t, facts, 1)
	require.NotNil(t, facts[0].ProcessingTimeHours)
	assert.InDelta(t, 12.5, *facts[0].ProcessingTimeHours, 1e-9)
}

func TestPaymentInstallmentsLeftJoin(t *testing.T) {
	p := NewSalesFactsProcessor(utils.NewNopLogger())

	orders := []models.Order{
		{OrderID: "o1", PurchaseTimestamp: day(1)},
		{OrderID: "o2", PurchaseTimestamp: day(2)},
	}
	items := []models.OrderItem{
		{OrderID: "o1", OrderItemID: 1},
		{OrderID: "o2", OrderItemID: 1},
	}
	payments := []models.OrderPayment{
		{OrderID: "o1", PaymentSequential: 1, PaymentInstallments: 3},
		{OrderID: "o1", PaymentSequential: 2, PaymentInstallments: 2},
	}

	facts := p.Process(orders, items, payments)
	require.Len(t, facts, 2)
	assert.Equal(t, 5, facts[0].PaymentInstallments, "installments summed per order")
	assert.Equal(t, 1, facts[1].PaymentInstallments, "orders without payments default to 1")
}

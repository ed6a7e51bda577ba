package analytics

import (
	"time"
)

// CustomerMetrics is one row of the customer lifetime aggregate: every
// customer with at least one order, with their order history rolled up.
type CustomerMetrics struct {
	CustomerID    string
	City          string
	State         string
	Region        string
	Tier          string
	TotalOrders   int
	TotalRevenue  float64
	AvgOrderValue float64
	FirstOrder    time.Time
	LastOrder     time.Time
	LifetimeDays  int
}

// ProductMetrics is one row of the product performance aggregate.
type ProductMetrics struct {
	ProductID       string
	CategoryName    string
	CategoryL1      string
	TotalOrders     int
	TotalRevenue    float64
	AvgPrice        float64
	UniqueCustomers int
	DeliveredOrders int
}

// OrderItemRecord is one delivered order item, used for the order pattern
// analysis.
type OrderItemRecord struct {
	OrderID           string
	ProductID         string
	CategoryName      string
	Price             float64
	PurchaseTimestamp time.Time
}

// RFMCustomer carries a customer's raw recency/frequency/monetary values,
// their quintile scores and, after segmentation, the assigned segment.
type RFMCustomer struct {
	CustomerID string

	// Raw values
	RecencyDays int
	Frequency   int
	Monetary    float64

	// Quintile scores (1-5; recency reversed so 5 = most recent)
	RecencyScore   int
	FrequencyScore int
	MonetaryScore  int
	RFMScore       int

	// Segmentation result
	SegmentID   int
	SegmentName string
}

// SegmentSummary describes one cluster after segmentation.
type SegmentSummary struct {
	SegmentID    int
	SegmentName  string
	Customers    int
	AvgRecency   float64
	AvgFrequency float64
	AvgMonetary  float64
	AvgRFMScore  float64
}

package models

import (
	"time"
)

// CustomerDimension is a row destined for dim_customer.
type CustomerDimension struct {
	CustomerID       string
	CustomerUniqueID string
	Name             string
	Phone            string
	Email            string
	City             string
	State            string
	Region           string
	Tier             string
	IsActive         bool
	CreatedDate      time.Time
}

// ProductDimension is a row destined for dim_product, with the volumetric
// metrics derived during transform.
type ProductDimension struct {
	ProductID     string
	CategoryName  string
	CategoryL1    string
	WeightG       float64
	LengthCm      float64
	HeightCm      float64
	WidthCm       float64
	VolumeCm3     float64
	DensityGPcm3  float64
	PriceRange    string
}

// SellerDimension is a row destined for dim_seller.
type SellerDimension struct {
	SellerID      string
	Name          string
	Email         string
	Phone         string
	ZipCodePrefix string
	City          string
	State         string
	Region        string
	Tier          string
	Rating        float64
}

// DateDimension is a row of dim_date.
type DateDimension struct {
	DateKey    int
	FullDate   time.Time
	Year       int
	Quarter    int
	Month      int
	MonthName  string
	WeekOfYear int
	DayOfMonth int
	DayOfWeek  int
	DayName    string
	IsWeekend  bool
}

// SalesFact is one order item enriched with delivery metrics, still carrying
// its natural keys. Surrogate keys are resolved at load time.
// DeliveryDelayDays and ProcessingTimeHours are nil when the source dates
// needed to compute them are absent.
type SalesFact struct {
	OrderID               string
	OrderItemID           int
	CustomerID            string
	ProductID             string
	SellerID              string
	Status                string
	Price                 float64
	FreightValue          float64
	TotalValue            float64
	PaymentInstallments   int
	PurchaseTimestamp     time.Time
	ApprovedAt            time.Time
	DeliveredCarrierDate  time.Time
	DeliveredCustomerDate time.Time
	EstimatedDeliveryDate time.Time
	DeliveryDelayDays     *int
	ProcessingTimeHours   *float64
	IsDeliveredOntime     bool
	IsFastDelivery        bool
}

// TransformedData holds the output of the transform phase, ready for loading.
type TransformedData struct {
	Customers []CustomerDimension
	Products  []ProductDimension
	Sellers   []SellerDimension
	Sales     []SalesFact
}

// RecordCounts are the per-table row counts of the quality report.
type RecordCounts struct {
	Customers int `json:"customers"`
	Products  int `json:"products"`
	Orders    int `json:"orders"`
}

// QualityReport is the JSON document produced by the quality-check stage.
type QualityReport struct {
	Timestamp        string         `json:"timestamp"`
	RecordCounts     RecordCounts   `json:"record_counts"`
	NullChecks       map[string]int `json:"null_checks"`
	DataQualityScore float64        `json:"data_quality_score"`
}

// Score computes the heuristic quality score: 100 minus 10 points per null,
// clamped to [0, 100].
func (r *QualityReport) Score() float64 {
	totalNulls := 0
	for _, n := range r.NullChecks {
		totalNulls += n
	}
	score := 100.0 - float64(totalNulls)*10.0
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

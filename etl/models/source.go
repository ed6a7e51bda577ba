package models

import (
	"time"
)

// Customer is a row from customers.csv.
type Customer struct {
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

// Product is a row from products.csv.
type Product struct {
	ProductID    string
	CategoryName string
	WeightG      float64
	LengthCm     float64
	HeightCm     float64
	WidthCm      float64
}

// Seller is a row from sellers.csv.
type Seller struct {
	SellerID      string
	Name          string
	Email         string
	Phone         string
	ZipCodePrefix string
	City          string
	State         string
}

// Order is a row from orders.csv. Date columns that are absent in the file
// stay zero (e.g. an order that has not been delivered yet).
type Order struct {
	OrderID               string
	CustomerID            string
	Status                string
	PurchaseTimestamp     time.Time
	ApprovedAt            time.Time
	DeliveredCarrierDate  time.Time
	DeliveredCustomerDate time.Time
	EstimatedDeliveryDate time.Time
}

// OrderItem is a row from order_items.csv.
type OrderItem struct {
	OrderID      string
	OrderItemID  int
	ProductID    string
	SellerID     string
	Price        float64
	FreightValue float64
}

// OrderPayment is a row from order_payments.csv.
type OrderPayment struct {
	OrderID             string
	PaymentSequential   int
	PaymentType         string
	PaymentInstallments int
	PaymentValue        float64
}

// OrderReview is a row from order_reviews.csv.
type OrderReview struct {
	ReviewID        string
	OrderID         string
	ReviewScore     int
	CreationDate    time.Time
	AnswerTimestamp time.Time
}

// ExtractedData holds everything read during the extract phase. Tables whose
// files were missing are left as nil slices.
type ExtractedData struct {
	Customers  []Customer
	Products   []Product
	Sellers    []Seller
	Orders     []Order
	OrderItems []OrderItem
	Payments   []OrderPayment
	Reviews    []OrderReview
}

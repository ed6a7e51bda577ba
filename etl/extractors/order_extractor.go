package extractors

import (
	"github.com/ngna3007/TheGioiDiDong-AnalyticsPlatform/etl/models"
)

// parseOrders maps orders.csv rows onto Order records. All five date
// columns are coerced; absent dates (undelivered orders) stay zero.
func parseOrders(t *table) []models.Order {
	orders := make([]models.Order, 0, len(t.rows))
	for _, row := range t.rows {
		orders = append(orders, models.Order{
			OrderID:               t.get(row, "order_id"),
			CustomerID:            t.get(row, "customer_id"),
			Status:                t.get(row, "order_status"),
			PurchaseTimestamp:     parseTime(t.get(row, "order_purchase_timestamp")),
			ApprovedAt:            parseTime(t.get(row, "order_approved_at")),
			DeliveredCarrierDate:  parseTime(t.get(row, "order_delivered_carrier_date")),
			DeliveredCustomerDate: parseTime(t.get(row, "order_delivered_customer_date")),
			EstimatedDeliveryDate: parseTime(t.get(row, "order_estimated_delivery_date")),
		})
	}
	return orders
}

// parseOrderItems maps order_items.csv rows onto OrderItem records.
func parseOrderItems(t *table) []models.OrderItem {
	items := make([]models.OrderItem, 0, len(t.rows))
	for _, row := range t.rows {
		items = append(items, models.OrderItem{
			OrderID:      t.get(row, "order_id"),
			OrderItemID:  parseInt(t.get(row, "order_item_id")),
			ProductID:    t.get(row, "product_id"),
			SellerID:     t.get(row, "seller_id"),
			Price:        parseFloat(t.get(row, "price")),
			FreightValue: parseFloat(t.get(row, "freight_value")),
		})
	}
	return items
}

// parseOrderPayments maps order_payments.csv rows onto OrderPayment records.
func parseOrderPayments(t *table) []models.OrderPayment {
	payments := make([]models.OrderPayment, 0, len(t.rows))
	for _, row := range t.rows {
		payments = append(payments, models.OrderPayment{
			OrderID:             t.get(row, "order_id"),
			PaymentSequential:   parseInt(t.get(row, "payment_sequential")),
			PaymentType:         t.get(row, "payment_type"),
			PaymentInstallments: parseInt(t.get(row, "payment_installments")),
			PaymentValue:        parseFloat(t.get(row, "payment_value")),
		})
	}
	return payments
}

// parseOrderReviews maps order_reviews.csv rows onto OrderReview records.
func parseOrderReviews(t *table) []models.OrderReview {
	reviews := make([]models.OrderReview, 0, len(t.rows))
	for _, row := range t.rows {
		reviews = append(reviews, models.OrderReview{
			ReviewID:        t.get(row, "review_id"),
			OrderID:         t.get(row, "order_id"),
			ReviewScore:     parseInt(t.get(row, "review_score")),
			CreationDate:    parseTime(t.get(row, "review_creation_date")),
			AnswerTimestamp: parseTime(t.get(row, "review_answer_timestamp")),
		})
	}
	return reviews
}

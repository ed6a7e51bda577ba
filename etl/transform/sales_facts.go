package transform

import (
	"math"

	"github.com/ngna3007/TheGioiDiDong-AnalyticsPlatform/etl/models"
	"github.com/ngna3007/TheGioiDiDong-AnalyticsPlatform/etl/utils"
)

// SalesFactsProcessor merges orders with order items and derives the
// delivery metrics of fact_sales.
type SalesFactsProcessor struct {
	logger *utils.ETLLogger
}

// NewSalesFactsProcessor creates a SalesFactsProcessor.
func NewSalesFactsProcessor(logger *utils.ETLLogger) *SalesFactsProcessor {
	return &SalesFactsProcessor{logger: logger}
}

// Process inner-joins orders with order items on order_id, computes the
// delivery delay, processing time and performance flags, and left-joins the
// per-order sum of payment installments. One fact row per order item.
func (p *SalesFactsProcessor) Process(orders []models.Order, items []models.OrderItem, payments []models.OrderPayment) []models.SalesFact {
	ordersByID := make(map[string]models.Order, len(orders))
	for _, o := range orders {
		ordersByID[o.OrderID] = o
	}

	// Per-order installment sums; orders without payment rows default to 1.
	installmentsByOrder := make(map[string]int)
	for _, pay := range payments {
		installmentsByOrder[pay.OrderID] += pay.PaymentInstallments
	}

	facts := make([]models.SalesFact, 0, len(items))

	for _, item := range items {
		order, ok := ordersByID[item.OrderID]
		if !ok {
			// Inner join: items without a matching order are dropped
			continue
		}

		fact := models.SalesFact{
			OrderID:               item.OrderID,
			OrderItemID:           item.OrderItemID,
			CustomerID:            order.CustomerID,
			ProductID:             item.ProductID,
			SellerID:              item.SellerID,
			Status:                order.Status,
			Price:                 item.Price,
			FreightValue:          item.FreightValue,
			TotalValue:            item.Price + item.FreightValue,
			PaymentInstallments:   1,
			PurchaseTimestamp:     order.PurchaseTimestamp,
			ApprovedAt:            order.ApprovedAt,
			DeliveredCarrierDate:  order.DeliveredCarrierDate,
			DeliveredCustomerDate: order.DeliveredCustomerDate,
			EstimatedDeliveryDate: order.EstimatedDeliveryDate,
		}

		if sum, found := installmentsByOrder[item.OrderID]; found {
			fact.PaymentInstallments = sum
		}

		// Delay in whole days between actual and estimated delivery;
		// undelivered orders keep a nil delay and false flags.
		if !order.DeliveredCustomerDate.IsZero() && !order.EstimatedDeliveryDate.IsZero() {
			delay := int(math.Floor(order.DeliveredCustomerDate.Sub(order.EstimatedDeliveryDate).Hours() / 24))
			fact.DeliveryDelayDays = &delay
			fact.IsDeliveredOntime = delay <= 0
			fact.IsFastDelivery = delay < 0
		}

		if !order.ApprovedAt.IsZero() && !order.PurchaseTimestamp.IsZero() {
			hours := order.ApprovedAt.Sub(order.PurchaseTimestamp).Hours()
			fact.ProcessingTimeHours = &hours
		}

		facts = append(facts, fact)
	}

	p.logger.Debug("Merged %d order items into %d sales facts", len(items), len(facts))
	return facts
}

package load

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/ngna3007/TheGioiDiDong-AnalyticsPlatform/etl/models"
	"github.com/ngna3007/TheGioiDiDong-AnalyticsPlatform/etl/utils"
)

// SalesLoader resolves natural keys against the dimension tables and appends
// new order items to fact_sales.
type SalesLoader struct {
	db     *sql.DB
	logger *utils.ETLLogger
}

// NewSalesLoader creates a SalesLoader.
func NewSalesLoader(db *sql.DB, logger *utils.ETLLogger) *SalesLoader {
	return &SalesLoader{
		db:     db,
		logger: logger,
	}
}

// Load resolves the surrogate keys for each fact, skips facts whose dimension
// rows are missing, and appends the items of orders not yet present in
// fact_sales. Deduplication is by order_id, so every item of a new order is
// inserted together.
func (l *SalesLoader) Load(facts []models.SalesFact) (int, error) {
	customerKeys, err := queryKeyMap(l.db, "SELECT customer_key, customer_id FROM dim_customer")
	if err != nil {
		return 0, fmt.Errorf("failed to read customer keys: %w", err)
	}
	productKeys, err := queryKeyMap(l.db, "SELECT product_key, product_id FROM dim_product")
	if err != nil {
		return 0, fmt.Errorf("failed to read product keys: %w", err)
	}
	sellerKeys, err := queryKeyMap(l.db, "SELECT seller_key, seller_id FROM dim_seller")
	if err != nil {
		return 0, fmt.Errorf("failed to read seller keys: %w", err)
	}
	dateKeys, err := l.queryDateKeys()
	if err != nil {
		return 0, fmt.Errorf("failed to read date keys: %w", err)
	}

	existingOrders, err := queryKeySet(l.db, "SELECT DISTINCT order_id FROM fact_sales")
	if err != nil {
		return 0, fmt.Errorf("failed to read existing order keys: %w", err)
	}

	startTime := time.Now()

	tx, err := l.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO fact_sales
		(order_id, order_item_id, customer_key, product_key, seller_key,
		order_date_key, delivery_date_key, order_status, price, freight_value,
		total_value, payment_installments, order_purchase_timestamp,
		order_approved_at, order_delivered_carrier_date,
		order_delivered_customer_date, order_estimated_delivery_date,
		delivery_delay_days, processing_time_hours, is_delivered_ontime,
		is_fast_delivery, created_date, updated_date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("failed to prepare fact_sales insert: %w", err)
	}
	defer stmt.Close()

	loaded := 0
	skipped := 0
	now := time.Now()

	for _, f := range facts {
		if existingOrders[f.OrderID] {
			continue
		}

		customerKey, ok := customerKeys[f.CustomerID]
		if !ok {
			skipped++
			continue
		}
		productKey, ok := productKeys[f.ProductID]
		if !ok {
			skipped++
			continue
		}
		sellerKey, ok := sellerKeys[f.SellerID]
		if !ok {
			skipped++
			continue
		}
		orderDateKey, ok := dateKeys[f.PurchaseTimestamp.Format("2006-01-02")]
		if !ok {
			skipped++
			continue
		}

		// Facts without a delivery date fall back to the order date key so
		// the foreign key stays satisfied.
		deliveryDateKey := orderDateKey
		if !f.DeliveredCustomerDate.IsZero() {
			if key, ok := dateKeys[f.DeliveredCustomerDate.Format("2006-01-02")]; ok {
				deliveryDateKey = key
			}
		}

		_, err := stmt.Exec(
			f.OrderID,
			f.OrderItemID,
			customerKey,
			productKey,
			sellerKey,
			orderDateKey,
			deliveryDateKey,
			f.Status,
			f.Price,
			f.FreightValue,
			f.TotalValue,
			f.PaymentInstallments,
			nullTime(f.PurchaseTimestamp),
			nullTime(f.ApprovedAt),
			nullTime(f.DeliveredCarrierDate),
			nullTime(f.DeliveredCustomerDate),
			nullTime(f.EstimatedDeliveryDate),
			f.DeliveryDelayDays,
			f.ProcessingTimeHours,
			f.IsDeliveredOntime,
			f.IsFastDelivery,
			now,
			now,
		)
		if err != nil {
			tx.Rollback()
			return 0, fmt.Errorf("failed to insert fact for order %s item %d: %w", f.OrderID, f.OrderItemID, err)
		}
		loaded++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit sales load: %w", err)
	}

	if skipped > 0 {
		l.logger.Warn("Skipped %d sales facts with unresolved dimension keys", skipped)
	}
	if loaded == 0 {
		l.logger.Info("No new sales facts to load")
		return 0, nil
	}

	l.logger.Info("Loaded %d sales facts to fact_sales. Duration: %v", loaded, time.Since(startTime))
	return loaded, nil
}

// queryDateKeys maps "YYYY-MM-DD" to date_key.
func (l *SalesLoader) queryDateKeys() (map[string]int, error) {
	rows, err := l.db.Query("SELECT date_key, full_date FROM dim_date")
	if err != nil {
		return nil, fmt.Errorf("failed to query dim_date: %w", err)
	}
	defer rows.Close()

	keys := make(map[string]int)
	for rows.Next() {
		var key int
		var fullDate time.Time
		if err := rows.Scan(&key, &fullDate); err != nil {
			return nil, fmt.Errorf("failed to scan date key: %w", err)
		}
		keys[fullDate.Format("2006-01-02")] = key
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate date keys: %w", err)
	}

	return keys, nil
}

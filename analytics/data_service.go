package analytics

import (
	"database/sql"
	"fmt"
)

// DataService reads the aggregate views the analysis works on from the
// warehouse.
type DataService struct {
	db *sql.DB
}

// NewDataService creates a DataService over the warehouse connection.
func NewDataService(db *sql.DB) *DataService {
	return &DataService{db: db}
}

// GetCustomerMetrics rolls up the order history of every customer that has
// placed at least one order.
func (s *DataService) GetCustomerMetrics() ([]CustomerMetrics, error) {
	query := `
		SELECT
			c.customer_id,
			c.customer_city,
			c.customer_state,
			c.customer_region,
			c.customer_tier,
			COUNT(DISTINCT f.order_id) AS total_orders,
			SUM(f.total_value) AS total_revenue,
			AVG(f.total_value) AS avg_order_value,
			MIN(f.order_purchase_timestamp) AS first_order_date,
			MAX(f.order_purchase_timestamp) AS last_order_date,
			DATEDIFF(MAX(f.order_purchase_timestamp), MIN(f.order_purchase_timestamp)) AS customer_lifetime_days
		FROM dim_customer c
		JOIN fact_sales f ON c.customer_key = f.customer_key
		GROUP BY
			c.customer_id, c.customer_city, c.customer_state,
			c.customer_region, c.customer_tier
		HAVING COUNT(DISTINCT f.order_id) > 0`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query customer metrics: %w", err)
	}
	defer rows.Close()

	var customers []CustomerMetrics
	for rows.Next() {
		var m CustomerMetrics
		if err := rows.Scan(
			&m.CustomerID,
			&m.City,
			&m.State,
			&m.Region,
			&m.Tier,
			&m.TotalOrders,
			&m.TotalRevenue,
			&m.AvgOrderValue,
			&m.FirstOrder,
			&m.LastOrder,
			&m.LifetimeDays,
		); err != nil {
			return nil, fmt.Errorf("failed to scan customer metrics: %w", err)
		}
		customers = append(customers, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate customer metrics: %w", err)
	}

	return customers, nil
}

// GetProductMetrics rolls up sales per product for every product that has
// been ordered at least once.
func (s *DataService) GetProductMetrics() ([]ProductMetrics, error) {
	query := `
		SELECT
			p.product_id,
			p.product_category_name,
			p.product_category_l1,
			COUNT(DISTINCT f.order_id) AS total_orders,
			SUM(f.price) AS total_revenue,
			AVG(f.price) AS avg_price,
			COUNT(DISTINCT f.customer_key) AS unique_customers,
			SUM(CASE WHEN f.order_delivered_customer_date IS NOT NULL THEN 1 ELSE 0 END) AS delivered_orders
		FROM dim_product p
		JOIN fact_sales f ON p.product_key = f.product_key
		GROUP BY
			p.product_id, p.product_category_name, p.product_category_l1
		HAVING COUNT(DISTINCT f.order_id) > 0`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query product metrics: %w", err)
	}
	defer rows.Close()

	var products []ProductMetrics
	for rows.Next() {
		var m ProductMetrics
		if err := rows.Scan(
			&m.ProductID,
			&m.CategoryName,
			&m.CategoryL1,
			&m.TotalOrders,
			&m.TotalRevenue,
			&m.AvgPrice,
			&m.UniqueCustomers,
			&m.DeliveredOrders,
		); err != nil {
			return nil, fmt.Errorf("failed to scan product metrics: %w", err)
		}
		products = append(products, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate product metrics: %w", err)
	}

	return products, nil
}

// GetDeliveredOrderItems reads every delivered order item with its product
// and purchase timestamp, ordered by order id.
func (s *DataService) GetDeliveredOrderItems() ([]OrderItemRecord, error) {
	query := `
		SELECT
			f.order_id,
			p.product_id,
			p.product_category_name,
			f.price,
			f.order_purchase_timestamp
		FROM fact_sales f
		JOIN dim_product p ON f.product_key = p.product_key
		WHERE f.order_status = 'delivered'
		ORDER BY f.order_id`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query delivered order items: %w", err)
	}
	defer rows.Close()

	var items []OrderItemRecord
	for rows.Next() {
		var r OrderItemRecord
		if err := rows.Scan(
			&r.OrderID,
			&r.ProductID,
			&r.CategoryName,
			&r.Price,
			&r.PurchaseTimestamp,
		); err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		items = append(items, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate order items: %w", err)
	}

	return items, nil
}

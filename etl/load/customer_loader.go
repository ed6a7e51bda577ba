package load

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/ngna3007/TheGioiDiDong-AnalyticsPlatform/etl/models"
	"github.com/ngna3007/TheGioiDiDong-AnalyticsPlatform/etl/utils"
)

// CustomerLoader appends new rows to dim_customer.
type CustomerLoader struct {
	db     *sql.DB
	logger *utils.ETLLogger
}

// NewCustomerLoader creates a CustomerLoader.
func NewCustomerLoader(db *sql.DB, logger *utils.ETLLogger) *CustomerLoader {
	return &CustomerLoader{
		db:     db,
		logger: logger,
	}
}

// Load diffs incoming customer ids against dim_customer and appends only the
// unseen rows inside one transaction. Returns the number of appended rows.
func (l *CustomerLoader) Load(customers []models.CustomerDimension) (int, error) {
	existing, err := queryKeySet(l.db, "SELECT customer_id FROM dim_customer")
	if err != nil {
		return 0, fmt.Errorf("failed to read existing customer keys: %w", err)
	}

	incoming := make([]string, 0, len(customers))
	byID := make(map[string]models.CustomerDimension, len(customers))
	for _, c := range customers {
		incoming = append(incoming, c.CustomerID)
		byID[c.CustomerID] = c
	}

	fresh := NewKeys(incoming, existing)
	if len(fresh) == 0 {
		l.logger.Info("No new customers to load")
		return 0, nil
	}

	startTime := time.Now()

	tx, err := l.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO dim_customer
		(customer_id, customer_unique_id, customer_name, customer_phone,
		customer_email, customer_city, customer_state, customer_region,
		customer_tier, is_active, created_date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("failed to prepare dim_customer insert: %w", err)
	}
	defer stmt.Close()

	for _, key := range fresh {
		c := byID[key]
		_, err := stmt.Exec(
			c.CustomerID,
			c.CustomerUniqueID,
			c.Name,
			c.Phone,
			c.Email,
			c.City,
			c.State,
			c.Region,
			c.Tier,
			c.IsActive,
			nullTime(c.CreatedDate),
		)
		if err != nil {
			tx.Rollback()
			return 0, fmt.Errorf("failed to insert customer %s: %w", c.CustomerID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit customer load: %w", err)
	}

	l.logger.Info("Loaded %d customers to dim_customer. Duration: %v", len(fresh), time.Since(startTime))
	return len(fresh), nil
}

// nullTime maps the zero time to SQL NULL.
func nullTime(t time.Time) interface{} {
	if t.IsZero() {
		return nil
	}
	return t
}

package analytics

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/ngna3007/TheGioiDiDong-AnalyticsPlatform/etl/utils"
)

// ModelVersion is stamped on every persisted segment assignment.
const ModelVersion = "v1.0"

// segmentProbability is a placeholder confidence until the model produces
// real per-customer probabilities.
const segmentProbability = 0.85

// SegmentRepository persists segmentation results to ml_customer_segments.
type SegmentRepository struct {
	db     *sql.DB
	logger *utils.ETLLogger
}

// NewSegmentRepository creates a SegmentRepository over the warehouse
// connection.
func NewSegmentRepository(db *sql.DB, logger *utils.ETLLogger) *SegmentRepository {
	return &SegmentRepository{
		db:     db,
		logger: logger,
	}
}

// ReplaceAll replaces every previous segment assignment with the given ones
// in a single transaction: delete-all, then insert. Customers without a
// dim_customer row are skipped with a warning.
func (r *SegmentRepository) ReplaceAll(rfm []RFMCustomer, predictedAt time.Time) error {
	customerKeys, err := r.customerKeys()
	if err != nil {
		return err
	}

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin segment transaction: %w", err)
	}

	if _, err := tx.Exec("DELETE FROM ml_customer_segments"); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to clear previous segments: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO ml_customer_segments
		(customer_key, customer_id, segment_name, segment_id,
		segment_probability, rfm_score, predicted_date, model_version)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prepare segment insert: %w", err)
	}
	defer stmt.Close()

	saved := 0
	skipped := 0
	for _, c := range rfm {
		key, ok := customerKeys[c.CustomerID]
		if !ok {
			skipped++
			continue
		}

		_, err := stmt.Exec(
			key,
			c.CustomerID,
			c.SegmentName,
			c.SegmentID,
			segmentProbability,
			c.RFMScore,
			predictedAt,
			ModelVersion,
		)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert segment for customer %s: %w", c.CustomerID, err)
		}
		saved++
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit segment assignments: %w", err)
	}

	if skipped > 0 {
		r.logger.Warn("Skipped %d segment assignments without a dim_customer row", skipped)
	}
	r.logger.Info("Saved %d segment assignments to ml_customer_segments", saved)
	return nil
}

// customerKeys maps customer_id to its surrogate key.
func (r *SegmentRepository) customerKeys() (map[string]int, error) {
	rows, err := r.db.Query("SELECT customer_key, customer_id FROM dim_customer")
	if err != nil {
		return nil, fmt.Errorf("failed to query customer keys: %w", err)
	}
	defer rows.Close()

	keys := make(map[string]int)
	for rows.Next() {
		var key int
		var id string
		if err := rows.Scan(&key, &id); err != nil {
			return nil, fmt.Errorf("failed to scan customer key: %w", err)
		}
		keys[id] = key
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate customer keys: %w", err)
	}

	return keys, nil
}

package models

import (
	"database/sql"
	"fmt"
	"time"
)

// MySQLETLLogRepository is the warehouse-backed ETLLogRepository.
type MySQLETLLogRepository struct {
	db *sql.DB
}

// NewMySQLETLLogRepository creates a repository over the warehouse connection.
func NewMySQLETLLogRepository(db *sql.DB) *MySQLETLLogRepository {
	return &MySQLETLLogRepository{db: db}
}

// CreateLogEntry inserts a new in-progress run entry.
func (r *MySQLETLLogRepository) CreateLogEntry(startTime time.Time) (int, error) {
	result, err := r.db.Exec(`
		INSERT INTO etl_runs (start_time, status)
		VALUES (?, 'in_progress')
	`, startTime)
	if err != nil {
		return 0, fmt.Errorf("failed to create ETL run entry: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read ETL run entry id: %w", err)
	}

	return int(id), nil
}

// UpdateLogEntrySuccess marks the run as successful with processing counts.
func (r *MySQLETLLogRepository) UpdateLogEntrySuccess(id int, endTime time.Time, customers, products, sales int) error {
	_, err := r.db.Exec(`
		UPDATE etl_runs
		SET end_time = ?,
		    status = 'success',
		    customers_processed = ?,
		    products_processed = ?,
		    sales_processed = ?,
		    execution_time_seconds = TIMESTAMPDIFF(SECOND, start_time, ?)
		WHERE id = ?
	`, endTime, customers, products, sales, endTime, id)
	if err != nil {
		return fmt.Errorf("failed to update ETL run entry %d: %w", id, err)
	}
	return nil
}

// UpdateLogEntryFailure marks the run as failed.
func (r *MySQLETLLogRepository) UpdateLogEntryFailure(id int, endTime time.Time, errorMessage string) error {
	_, err := r.db.Exec(`
		UPDATE etl_runs
		SET end_time = ?,
		    status = 'failed',
		    error_message = ?,
		    execution_time_seconds = TIMESTAMPDIFF(SECOND, start_time, ?)
		WHERE id = ?
	`, endTime, errorMessage, endTime, id)
	if err != nil {
		return fmt.Errorf("failed to update ETL run entry %d: %w", id, err)
	}
	return nil
}

// GetLastSuccessfulRun returns the most recent successful run entry.
func (r *MySQLETLLogRepository) GetLastSuccessfulRun() (*ETLRunLog, error) {
	var run ETLRunLog
	err := r.db.QueryRow(`
		SELECT id, start_time, end_time, status,
		       customers_processed, products_processed, sales_processed
		FROM etl_runs
		WHERE status = 'success'
		ORDER BY end_time DESC
		LIMIT 1
	`).Scan(
		&run.ID,
		&run.StartTime,
		&run.EndTime,
		&run.Status,
		&run.CustomersProcessed,
		&run.ProductsProcessed,
		&run.SalesProcessed,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query last successful ETL run: %w", err)
	}
	return &run, nil
}

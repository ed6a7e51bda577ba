package models

import (
	"time"
)

// ETLRunLog is one entry of the etl_runs journal.
type ETLRunLog struct {
	ID                 int
	StartTime          time.Time
	EndTime            time.Time
	Status             string // 'in_progress', 'success', 'failed'
	CustomersProcessed int
	ProductsProcessed  int
	SalesProcessed     int
	ErrorMessage       string
}

// ETLLogRepository persists the ETL run journal.
type ETLLogRepository interface {
	// CreateLogEntry inserts an in-progress entry and returns its id.
	CreateLogEntry(startTime time.Time) (int, error)

	// UpdateLogEntrySuccess marks a run as finished successfully.
	UpdateLogEntrySuccess(id int, endTime time.Time, customers, products, sales int) error

	// UpdateLogEntryFailure marks a run as failed with an error message.
	UpdateLogEntryFailure(id int, endTime time.Time, errorMessage string) error

	// GetLastSuccessfulRun returns the most recent successful run, or nil if
	// there has never been one.
	GetLastSuccessfulRun() (*ETLRunLog, error)
}

package quality

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ngna3007/TheGioiDiDong-AnalyticsPlatform/etl/models"
	"github.com/ngna3007/TheGioiDiDong-AnalyticsPlatform/etl/utils"
)

// Checker runs the post-load data quality checks against the warehouse and
// writes the JSON quality report.
type Checker struct {
	db           *sql.DB
	processedDir string
	logger       *utils.ETLLogger
}

// NewChecker creates a Checker. The report is written into processedDir.
func NewChecker(db *sql.DB, processedDir string, logger *utils.ETLLogger) *Checker {
	return &Checker{
		db:           db,
		processedDir: processedDir,
		logger:       logger,
	}
}

// Run executes the record-count and null-count checks, computes the quality
// score and writes data_quality_report.json. A failed check aborts the
// pipeline.
func (c *Checker) Run() (*models.QualityReport, error) {
	startTime := time.Now()
	c.logger.Info("Starting data quality checks")

	report := &models.QualityReport{
		Timestamp:  time.Now().Format(time.RFC3339),
		NullChecks: make(map[string]int),
	}

	counts := []struct {
		name  string
		query string
		dest  *int
	}{
		{"customers", "SELECT COUNT(*) FROM dim_customer", &report.RecordCounts.Customers},
		{"products", "SELECT COUNT(*) FROM dim_product", &report.RecordCounts.Products},
		{"orders", "SELECT COUNT(DISTINCT order_id) FROM fact_sales", &report.RecordCounts.Orders},
	}
	for _, check := range counts {
		if err := c.db.QueryRow(check.query).Scan(check.dest); err != nil {
			c.logger.Error("Record count check %q failed: %v", check.name, err)
			return nil, fmt.Errorf("record count check %q failed: %w", check.name, err)
		}
		c.logger.Info("Record count %s: %d", check.name, *check.dest)
	}

	nullChecks := []struct {
		name  string
		query string
	}{
		{"customers_missing_id", "SELECT COUNT(*) FROM dim_customer WHERE customer_id IS NULL OR customer_id = ''"},
		{"sales_missing_order_date", "SELECT COUNT(*) FROM fact_sales WHERE order_purchase_timestamp IS NULL"},
	}
	for _, check := range nullChecks {
		var nulls int
		if err := c.db.QueryRow(check.query).Scan(&nulls); err != nil {
			c.logger.Error("Null check %q failed: %v", check.name, err)
			return nil, fmt.Errorf("null check %q failed: %w", check.name, err)
		}
		report.NullChecks[check.name] = nulls
		if nulls > 0 {
			c.logger.Warn("Null check %s found %d rows", check.name, nulls)
		}
	}

	report.DataQualityScore = report.Score()
	c.logger.Info("Data quality score: %.1f/100", report.DataQualityScore)

	if err := c.writeReport(report); err != nil {
		return nil, err
	}

	c.logger.Info("Data quality checks finished. Duration: %v", time.Since(startTime))
	return report, nil
}

// writeReport serializes the report to <processedDir>/data_quality_report.json.
func (c *Checker) writeReport(report *models.QualityReport) error {
	if err := os.MkdirAll(c.processedDir, 0755); err != nil {
		return fmt.Errorf("failed to create processed directory: %w", err)
	}

	path := filepath.Join(c.processedDir, "data_quality_report.json")
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal quality report: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write quality report: %w", err)
	}

	c.logger.Info("Quality report written to %s", path)
	return nil
}

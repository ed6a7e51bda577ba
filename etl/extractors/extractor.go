package extractors

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ngna3007/TheGioiDiDong-AnalyticsPlatform/etl/models"
	"github.com/ngna3007/TheGioiDiDong-AnalyticsPlatform/etl/utils"
)

// Extractor coordinates reading the raw CSV inputs.
type Extractor struct {
	dataDir string
	logger  *utils.ETLLogger
}

// NewExtractor creates an Extractor over the raw data directory.
func NewExtractor(dataDir string, logger *utils.ETLLogger) *Extractor {
	return &Extractor{
		dataDir: dataDir,
		logger:  logger,
	}
}

// Extract reads the seven known flat files. A missing file is logged as a
// warning and its table stays empty; parse errors abort the phase.
func (e *Extractor) Extract() (*models.ExtractedData, error) {
	startTime := time.Now()
	e.logger.LogExtractStart()

	extracted := &models.ExtractedData{}
	tablesRead := 0
	rowsRead := 0

	type fileMapping struct {
		filename string
		parse    func(*table)
	}

	mappings := []fileMapping{
		{"customers.csv", func(t *table) { extracted.Customers = parseCustomers(t) }},
		{"products.csv", func(t *table) { extracted.Products = parseProducts(t) }},
		{"sellers.csv", func(t *table) { extracted.Sellers = parseSellers(t) }},
		{"orders.csv", func(t *table) { extracted.Orders = parseOrders(t) }},
		{"order_items.csv", func(t *table) { extracted.OrderItems = parseOrderItems(t) }},
		{"order_payments.csv", func(t *table) { extracted.Payments = parseOrderPayments(t) }},
		{"order_reviews.csv", func(t *table) { extracted.Reviews = parseOrderReviews(t) }},
	}

	for _, m := range mappings {
		path := filepath.Join(e.dataDir, m.filename)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			e.logger.Warn("File not found: %s, skipping", m.filename)
			continue
		}

		e.logger.Debug("Reading %s...", m.filename)
		t, err := readTable(path)
		if err != nil {
			return nil, fmt.Errorf("failed to extract %s: %w", m.filename, err)
		}

		m.parse(t)
		tablesRead++
		rowsRead += len(t.rows)
		e.logger.Info("Loaded %d records from %s", len(t.rows), m.filename)
	}

	e.logger.LogExtractComplete(tablesRead, rowsRead, time.Since(startTime))
	return extracted, nil
}

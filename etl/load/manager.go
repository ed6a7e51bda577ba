package load

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/ngna3007/TheGioiDiDong-AnalyticsPlatform/etl/models"
	"github.com/ngna3007/TheGioiDiDong-AnalyticsPlatform/etl/utils"
)

// LoadResult carries the number of rows appended per table during one run.
type LoadResult struct {
	Customers int
	Products  int
	Sellers   int
	Sales     int
}

// LoadManager drives the load phase: dimensions first, then facts. A failure
// aborts the phase; rows appended by earlier steps stay committed.
type LoadManager struct {
	db     *sql.DB
	logger *utils.ETLLogger
	loader Loader
}

// NewLoadManager creates a LoadManager over the warehouse connection.
func NewLoadManager(db *sql.DB, logger *utils.ETLLogger) *LoadManager {
	return &LoadManager{
		db:     db,
		logger: logger,
		loader: NewWarehouseLoader(db, logger),
	}
}

// Load runs the load phase over the transformed data.
func (m *LoadManager) Load(transformed *models.TransformedData) (*LoadResult, error) {
	startTime := time.Now()
	m.logger.Info("Starting Load phase")

	result := &LoadResult{}
	var err error

	// 1. Customer dimension
	if len(transformed.Customers) > 0 {
		m.logger.Info("Loading customer dimension...")
		result.Customers, err = m.loader.LoadCustomerDimension(transformed.Customers)
		if err != nil {
			m.logger.Error("Failed to load customer dimension: %v", err)
			return result, fmt.Errorf("failed to load customer dimension: %w", err)
		}
	}

	// 2. Product dimension
	if len(transformed.Products) > 0 {
		m.logger.Info("Loading product dimension...")
		result.Products, err = m.loader.LoadProductDimension(transformed.Products)
		if err != nil {
			m.logger.Error("Failed to load product dimension: %v", err)
			return result, fmt.Errorf("failed to load product dimension: %w", err)
		}
	}

	// 3. Seller dimension
	if len(transformed.Sellers) > 0 {
		m.logger.Info("Loading seller dimension...")
		result.Sellers, err = m.loader.LoadSellerDimension(transformed.Sellers)
		if err != nil {
			m.logger.Error("Failed to load seller dimension: %v", err)
			return result, fmt.Errorf("failed to load seller dimension: %w", err)
		}
	}

	// 4. Sales facts (needs the dimensions above)
	if len(transformed.Sales) > 0 {
		m.logger.Info("Loading sales facts...")
		result.Sales, err = m.loader.LoadSalesFacts(transformed.Sales)
		if err != nil {
			m.logger.Error("Failed to load sales facts: %v", err)
			return result, fmt.Errorf("failed to load sales facts: %w", err)
		}
	}

	m.logger.Info("Load phase finished. Duration: %v", time.Since(startTime))
	return result, nil
}

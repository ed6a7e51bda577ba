package transform

import (
	"database/sql"
	"fmt"
	"math/rand"
	"time"

	"github.com/ngna3007/TheGioiDiDong-AnalyticsPlatform/etl/config"
	"github.com/ngna3007/TheGioiDiDong-AnalyticsPlatform/etl/models"
	"github.com/ngna3007/TheGioiDiDong-AnalyticsPlatform/etl/utils"
)

// Transformer coordinates the transform phase: each source table is enriched
// independently, then orders and order items are merged into sales facts.
type Transformer struct {
	logger            *utils.ETLLogger
	customerProcessor *CustomerDimensionProcessor
	productProcessor  *ProductDimensionProcessor
	sellerProcessor   *SellerDimensionProcessor
	salesProcessor    *SalesFactsProcessor
	dateProcessor     *DateDimensionProcessor
}

// NewTransformer wires the per-table processors. The lookup tables and the
// random source are injected so runs can be made reproducible in tests.
func NewTransformer(warehouseDB *sql.DB, lookups config.Lookups, rng *rand.Rand, logger *utils.ETLLogger) *Transformer {
	return &Transformer{
		logger:            logger,
		customerProcessor: NewCustomerDimensionProcessor(lookups, rng, logger),
		productProcessor:  NewProductDimensionProcessor(lookups, logger),
		sellerProcessor:   NewSellerDimensionProcessor(lookups, rng, logger),
		salesProcessor:    NewSalesFactsProcessor(logger),
		dateProcessor:     NewDateDimensionProcessor(warehouseDB, logger),
	}
}

// Transform runs the full transform phase over the extracted data.
func (t *Transformer) Transform(extracted *models.ExtractedData) (*models.TransformedData, error) {
	startTime := time.Now()
	t.logger.Info("Starting Transform phase")

	transformed := &models.TransformedData{}

	// 1. Customer dimension
	if len(extracted.Customers) > 0 {
		t.logger.Info("Transforming customers data...")
		transformed.Customers = t.customerProcessor.Process(extracted.Customers)
	}

	// 2. Product dimension
	if len(extracted.Products) > 0 {
		t.logger.Info("Transforming products data...")
		transformed.Products = t.productProcessor.Process(extracted.Products)
	}

	// 3. Seller dimension
	if len(extracted.Sellers) > 0 {
		t.logger.Info("Transforming sellers data...")
		transformed.Sellers = t.sellerProcessor.Process(extracted.Sellers)
	}

	// 4. Sales facts (orders merged with order items)
	if len(extracted.Orders) > 0 && len(extracted.OrderItems) > 0 {
		t.logger.Info("Transforming orders and order_items data...")
		transformed.Sales = t.salesProcessor.Process(extracted.Orders, extracted.OrderItems, extracted.Payments)
	}

	// 5. Make sure dim_date covers every date the facts reference
	if len(transformed.Sales) > 0 {
		t.logger.Info("Ensuring date dimension coverage...")
		if err := t.dateProcessor.EnsureDateDimension(transformed.Sales); err != nil {
			t.logger.Error("Failed to ensure date dimension: %v", err)
			return nil, fmt.Errorf("failed to ensure date dimension: %w", err)
		}
	}

	t.logger.Info("Transform phase finished. Duration: %v", time.Since(startTime))
	return transformed, nil
}

package load

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/ngna3007/TheGioiDiDong-AnalyticsPlatform/etl/models"
	"github.com/ngna3007/TheGioiDiDong-AnalyticsPlatform/etl/utils"
)

// ProductLoader appends new rows to dim_product.
type ProductLoader struct {
	db     *sql.DB
	logger *utils.ETLLogger
}

// NewProductLoader creates a ProductLoader.
func NewProductLoader(db *sql.DB, logger *utils.ETLLogger) *ProductLoader {
	return &ProductLoader{
		db:     db,
		logger: logger,
	}
}

// Load diffs incoming product ids against dim_product and appends only the
// unseen rows inside one transaction.
func (l *ProductLoader) Load(products []models.ProductDimension) (int, error) {
	existing, err := queryKeySet(l.db, "SELECT product_id FROM dim_product")
	if err != nil {
		return 0, fmt.Errorf("failed to read existing product keys: %w", err)
	}

	incoming := make([]string, 0, len(products))
	byID := make(map[string]models.ProductDimension, len(products))
	for _, p := range products {
		incoming = append(incoming, p.ProductID)
		byID[p.ProductID] = p
	}

	fresh := NewKeys(incoming, existing)
	if len(fresh) == 0 {
		l.logger.Info("No new products to load")
		return 0, nil
	}

	startTime := time.Now()

	tx, err := l.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO dim_product
		(product_id, product_category_name, product_category_l1,
		product_weight_g, product_length_cm, product_height_cm,
		product_width_cm, product_volume_cm3, product_density_g_cm3, price_range)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("failed to prepare dim_product insert: %w", err)
	}
	defer stmt.Close()

	for _, key := range fresh {
		p := byID[key]
		_, err := stmt.Exec(
			p.ProductID,
			p.CategoryName,
			p.CategoryL1,
			p.WeightG,
			p.LengthCm,
			p.HeightCm,
			p.WidthCm,
			p.VolumeCm3,
			p.DensityGPcm3,
			p.PriceRange,
		)
		if err != nil {
			tx.Rollback()
			return 0, fmt.Errorf("failed to insert product %s: %w", p.ProductID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit product load: %w", err)
	}

	l.logger.Info("Loaded %d products to dim_product. Duration: %v", len(fresh), time.Since(startTime))
	return len(fresh), nil
}

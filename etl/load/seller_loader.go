package load

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/ngna3007/TheGioiDiDong-AnalyticsPlatform/etl/models"
	"github.com/ngna3007/TheGioiDiDong-AnalyticsPlatform/etl/utils"
)

// SellerLoader appends new rows to dim_seller.
type SellerLoader struct {
	db     *sql.DB
	logger *utils.ETLLogger
}

// NewSellerLoader creates a SellerLoader.
func NewSellerLoader(db *sql.DB, logger *utils.ETLLogger) *SellerLoader {
	return &SellerLoader{
		db:     db,
		logger: logger,
	}
}

// Load diffs incoming seller ids against dim_seller and appends only the
// unseen rows inside one transaction.
func (l *SellerLoader) Load(sellers []models.SellerDimension) (int, error) {
	existing, err := queryKeySet(l.db, "SELECT seller_id FROM dim_seller")
	if err != nil {
		return 0, fmt.Errorf("failed to read existing seller keys: %w", err)
	}

	incoming := make([]string, 0, len(sellers))
	byID := make(map[string]models.SellerDimension, len(sellers))
	for _, s := range sellers {
		incoming = append(incoming, s.SellerID)
		byID[s.SellerID] = s
	}

	fresh := NewKeys(incoming, existing)
	if len(fresh) == 0 {
		l.logger.Info("No new sellers to load")
		return 0, nil
	}

	startTime := time.Now()

	tx, err := l.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO dim_seller
		(seller_id, seller_name, seller_email, seller_phone,
		seller_zip_code_prefix, seller_city, seller_state, seller_region,
		seller_tier, seller_rating)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("failed to prepare dim_seller insert: %w", err)
	}
	defer stmt.Close()

	for _, key := range fresh {
		s := byID[key]
		_, err := stmt.Exec(
			s.SellerID,
			s.Name,
			s.Email,
			s.Phone,
			s.ZipCodePrefix,
			s.City,
			s.State,
			s.Region,
			s.Tier,
			s.Rating,
		)
		if err != nil {
			tx.Rollback()
			return 0, fmt.Errorf("failed to insert seller %s: %w", s.SellerID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit seller load: %w", err)
	}

	l.logger.Info("Loaded %d sellers to dim_seller. Duration: %v", len(fresh), time.Since(startTime))
	return len(fresh), nil
}

package transform

import (
	"math"
	"math/rand"

	"github.com/ngna3007/TheGioiDiDong-AnalyticsPlatform/etl/config"
	"github.com/ngna3007/TheGioiDiDong-AnalyticsPlatform/etl/models"
	"github.com/ngna3007/TheGioiDiDong-AnalyticsPlatform/etl/utils"
)

// SellerDimensionProcessor enriches incoming seller rows for dim_seller.
type SellerDimensionProcessor struct {
	lookups config.Lookups
	rng     *rand.Rand
	logger  *utils.ETLLogger
}

// NewSellerDimensionProcessor creates a SellerDimensionProcessor.
func NewSellerDimensionProcessor(lookups config.Lookups, rng *rand.Rand, logger *utils.ETLLogger) *SellerDimensionProcessor {
	return &SellerDimensionProcessor{
		lookups: lookups,
		rng:     rng,
		logger:  logger,
	}
}

// Process assigns a weighted seller tier, a uniform rating in [3.5, 5.0]
// rounded to two decimals and the region from the state lookup table.
func (p *SellerDimensionProcessor) Process(sellers []models.Seller) []models.SellerDimension {
	dimensions := make([]models.SellerDimension, 0, len(sellers))

	for _, s := range sellers {
		rating := 3.5 + p.rng.Float64()*1.5
		rating = math.Round(rating*100) / 100

		dimensions = append(dimensions, models.SellerDimension{
			SellerID:      s.SellerID,
			Name:          s.Name,
			Email:         s.Email,
			Phone:         s.Phone,
			ZipCodePrefix: s.ZipCodePrefix,
			City:          s.City,
			State:         s.State,
			Region:        p.lookups.StateToRegion[s.State],
			Tier:          config.PickWeighted(p.rng, p.lookups.SellerTiers),
			Rating:        rating,
		})
	}

	p.logger.Debug("Transformed %d seller rows", len(dimensions))
	return dimensions
}

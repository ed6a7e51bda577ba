package transform

import (
	"math/rand"

	"github.com/ngna3007/TheGioiDiDong-AnalyticsPlatform/etl/config"
	"github.com/ngna3007/TheGioiDiDong-AnalyticsPlatform/etl/models"
	"github.com/ngna3007/TheGioiDiDong-AnalyticsPlatform/etl/utils"
)

// CustomerDimensionProcessor enriches incoming customer rows for dim_customer.
type CustomerDimensionProcessor struct {
	lookups config.Lookups
	rng     *rand.Rand
	logger  *utils.ETLLogger
}

// NewCustomerDimensionProcessor creates a CustomerDimensionProcessor.
func NewCustomerDimensionProcessor(lookups config.Lookups, rng *rand.Rand, logger *utils.ETLLogger) *CustomerDimensionProcessor {
	return &CustomerDimensionProcessor{
		lookups: lookups,
		rng:     rng,
		logger:  logger,
	}
}

// Process fills missing tiers with a weighted draw and missing regions from
// the state lookup table. Values already carried by the row are kept.
func (p *CustomerDimensionProcessor) Process(customers []models.Customer) []models.CustomerDimension {
	dimensions := make([]models.CustomerDimension, 0, len(customers))

	for _, c := range customers {
		tier := c.Tier
		if tier == "" {
			tier = config.PickWeighted(p.rng, p.lookups.CustomerTiers)
		}

		region := c.Region
		if region == "" {
			region = p.lookups.StateToRegion[c.State]
		}

		dimensions = append(dimensions, models.CustomerDimension{
			CustomerID:       c.CustomerID,
			CustomerUniqueID: c.CustomerUniqueID,
			Name:             c.Name,
			Phone:            c.Phone,
			Email:            c.Email,
			City:             c.City,
			State:            c.State,
			Region:           region,
			Tier:             tier,
			IsActive:         c.IsActive,
			CreatedDate:      c.CreatedDate,
		})
	}

	p.logger.Debug("Transformed %d customer rows", len(dimensions))
	return dimensions
}

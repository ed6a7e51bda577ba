package transform

import (
	"github.com/ngna3007/TheGioiDiDong-AnalyticsPlatform/etl/config"
	"github.com/ngna3007/TheGioiDiDong-AnalyticsPlatform/etl/models"
	"github.com/ngna3007/TheGioiDiDong-AnalyticsPlatform/etl/utils"
)

// ProductDimensionProcessor derives volumetric metrics and display categories
// for dim_product.
type ProductDimensionProcessor struct {
	lookups config.Lookups
	logger  *utils.ETLLogger
}

// NewProductDimensionProcessor creates a ProductDimensionProcessor.
func NewProductDimensionProcessor(lookups config.Lookups, logger *utils.ETLLogger) *ProductDimensionProcessor {
	return &ProductDimensionProcessor{
		lookups: lookups,
		logger:  logger,
	}
}

// Process computes volume (l×h×w) and density (weight/volume, 0 when the
// volume is not positive), labels the default price range and renames the
// category via the lookup table.
func (p *ProductDimensionProcessor) Process(products []models.Product) []models.ProductDimension {
	dimensions := make([]models.ProductDimension, 0, len(products))

	for _, prod := range products {
		volume := prod.LengthCm * prod.HeightCm * prod.WidthCm

		density := 0.0
		if volume > 0 {
			density = prod.WeightG / volume
		}

		dimensions = append(dimensions, models.ProductDimension{
			ProductID:    prod.ProductID,
			CategoryName: prod.CategoryName,
			CategoryL1:   p.lookups.CategoryMapping[prod.CategoryName],
			WeightG:      prod.WeightG,
			LengthCm:     prod.LengthCm,
			HeightCm:     prod.HeightCm,
			WidthCm:      prod.WidthCm,
			VolumeCm3:    volume,
			DensityGPcm3: density,
			// Refined after revenue data is available downstream
			PriceRange: "Medium",
		})
	}

	p.logger.Debug("Transformed %d product rows", len(dimensions))
	return dimensions
}

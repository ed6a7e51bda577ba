package extractors

import (
	"github.com/ngna3007/TheGioiDiDong-AnalyticsPlatform/etl/models"
)

// parseCustomers maps customers.csv rows onto Customer records.
func parseCustomers(t *table) []models.Customer {
	customers := make([]models.Customer, 0, len(t.rows))
	for _, row := range t.rows {
		customers = append(customers, models.Customer{
			CustomerID:       t.get(row, "customer_id"),
			CustomerUniqueID: t.get(row, "customer_unique_id"),
			Name:             t.get(row, "customer_name"),
			Phone:            t.get(row, "customer_phone"),
			Email:            t.get(row, "customer_email"),
			City:             t.get(row, "customer_city"),
			State:            t.get(row, "customer_state"),
			Region:           t.get(row, "customer_region"),
			Tier:             t.get(row, "customer_tier"),
			IsActive:         parseBool(t.get(row, "is_active")),
			CreatedDate:      parseTime(t.get(row, "created_date")),
		})
	}
	return customers
}

// parseSellers maps sellers.csv rows onto Seller records.
func parseSellers(t *table) []models.Seller {
	sellers := make([]models.Seller, 0, len(t.rows))
	for _, row := range t.rows {
		sellers = append(sellers, models.Seller{
			SellerID:      t.get(row, "seller_id"),
			Name:          t.get(row, "seller_name"),
			Email:         t.get(row, "seller_email"),
			Phone:         t.get(row, "seller_phone"),
			ZipCodePrefix: t.get(row, "seller_zip_code_prefix"),
			City:          t.get(row, "seller_city"),
			State:         t.get(row, "seller_state"),
		})
	}
	return sellers
}

// parseProducts maps products.csv rows onto Product records.
func parseProducts(t *table) []models.Product {
	products := make([]models.Product, 0, len(t.rows))
	for _, row := range t.rows {
		products = append(products, models.Product{
			ProductID:    t.get(row, "product_id"),
			CategoryName: t.get(row, "product_category_name"),
			WeightG:      parseFloat(t.get(row, "product_weight_g")),
			LengthCm:     parseFloat(t.get(row, "product_length_cm")),
			HeightCm:     parseFloat(t.get(row, "product_height_cm")),
			WidthCm:      parseFloat(t.get(row, "product_width_cm")),
		})
	}
	return products
}

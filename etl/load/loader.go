package load

import (
	"database/sql"

	"github.com/ngna3007/TheGioiDiDong-AnalyticsPlatform/etl/models"
	"github.com/ngna3007/TheGioiDiDong-AnalyticsPlatform/etl/utils"
)

// Loader loads transformed data into the warehouse star schema.
type Loader interface {
	// LoadCustomerDimension appends unseen customers to dim_customer.
	LoadCustomerDimension(customers []models.CustomerDimension) (int, error)

	// LoadProductDimension appends unseen products to dim_product.
	LoadProductDimension(products []models.ProductDimension) (int, error)

	// LoadSellerDimension appends unseen sellers to dim_seller.
	LoadSellerDimension(sellers []models.SellerDimension) (int, error)

	// LoadSalesFacts resolves surrogate keys and appends unseen fact rows.
	LoadSalesFacts(facts []models.SalesFact) (int, error)
}

// WarehouseLoader is the MySQL implementation of Loader.
type WarehouseLoader struct {
	db     *sql.DB
	logger *utils.ETLLogger

	customerLoader *CustomerLoader
	productLoader  *ProductLoader
	sellerLoader   *SellerLoader
	salesLoader    *SalesLoader
}

// NewWarehouseLoader creates a WarehouseLoader with its per-table loaders.
func NewWarehouseLoader(db *sql.DB, logger *utils.ETLLogger) *WarehouseLoader {
	return &WarehouseLoader{
		db:             db,
		logger:         logger,
		customerLoader: NewCustomerLoader(db, logger),
		productLoader:  NewProductLoader(db, logger),
		sellerLoader:   NewSellerLoader(db, logger),
		salesLoader:    NewSalesLoader(db, logger),
	}
}

func (l *WarehouseLoader) LoadCustomerDimension(customers []models.CustomerDimension) (int, error) {
	return l.customerLoader.Load(customers)
}

func (l *WarehouseLoader) LoadProductDimension(products []models.ProductDimension) (int, error) {
	return l.productLoader.Load(products)
}

func (l *WarehouseLoader) LoadSellerDimension(sellers []models.SellerDimension) (int, error) {
	return l.sellerLoader.Load(sellers)
}

func (l *WarehouseLoader) LoadSalesFacts(facts []models.SalesFact) (int, error) {
	return l.salesLoader.Load(facts)
}

package generator

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ngna3007/TheGioiDiDong-AnalyticsPlatform/etl/config"
	"github.com/ngna3007/TheGioiDiDong-AnalyticsPlatform/etl/models"
	"github.com/ngna3007/TheGioiDiDong-AnalyticsPlatform/etl/utils"
)

// City is one entry of the geographic lookup table.
type City struct {
	City   string
	State  string
	Region string
}

// DefaultCities returns the Vietnamese cities customers and sellers are
// assigned to.
func DefaultCities() []City {
	return []City{
		{"Hanoi", "Hanoi", "North"},
		{"Ho Chi Minh City", "HCMC", "South"},
		{"Da Nang", "Da Nang", "Central"},
		{"Can Tho", "Can Tho", "South"},
		{"Hai Phong", "Hai Phong", "North"},
		{"Bien Hoa", "Dong Nai", "South"},
		{"Buon Ma Thuot", "Dak Lak", "Central Highlands"},
		{"Hue", "Thua Thien Hue", "Central"},
		{"Vung Tau", "Ba Ria-Vung Tau", "South"},
		{"Thu Dau Mot", "Binh Duong", "South"},
		{"Rach Gia", "Kien Giang", "South"},
		{"Long Xuyen", "An Giang", "South"},
		{"Thai Nguyen", "Thai Nguyen", "North"},
		{"Thanh Hoa", "Thanh Hoa", "North"},
		{"Nam Dinh", "Nam Dinh", "North"},
		{"Quang Ninh", "Quang Ninh", "North"},
		{"Da Lat", "Lam Dong", "Central Highlands"},
		{"Nha Trang", "Khanh Hoa", "Central"},
		{"Phan Thiet", "Binh Thuan", "Central"},
		{"Quy Nhon", "Binh Dinh", "Central"},
		{"Pleiku", "Gia Lai", "Central Highlands"},
		{"Tuy Hoa", "Phu Yen", "Central"},
		{"Tam Ky", "Quang Nam", "Central"},
		{"Ha Tinh", "Ha Tinh", "North"},
		{"Vinh", "Nghe An", "North"},
		{"Dong Ha", "Quang Tri", "Central"},
		{"Dong Hoi", "Quang Binh", "North"},
	}
}

// Config controls a generation run.
type Config struct {
	// Output directory for the CSV files
	DataDir string

	NumCustomers int
	NumSellers   int

	// Geographic lookup table; DefaultCities() when nil
	Cities []City

	// Weighted tier distribution; DefaultLookups().CustomerTiers when nil
	CustomerTiers []config.WeightedLabel
}

// Generator produces the synthetic Vietnamese datasets.
type Generator struct {
	cfg    Config
	rng    *rand.Rand
	logger *utils.ETLLogger
}

// NewGenerator creates a Generator with a dedicated random source so runs
// with the same seed are reproducible.
func NewGenerator(cfg Config, seed int64, logger *utils.ETLLogger) *Generator {
	if cfg.Cities == nil {
		cfg.Cities = DefaultCities()
	}
	if cfg.CustomerTiers == nil {
		cfg.CustomerTiers = config.DefaultLookups().CustomerTiers
	}
	return &Generator{
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(seed)),
		logger: logger,
	}
}

// GenerateCustomers builds the synthetic customer rows.
func (g *Generator) GenerateCustomers() []models.Customer {
	g.logger.Info("Generating %d Vietnamese customers...", g.cfg.NumCustomers)

	now := time.Now()
	customers := make([]models.Customer, 0, g.cfg.NumCustomers)

	for i := 0; i < g.cfg.NumCustomers; i++ {
		name, _ := GenerateName(g.rng)
		city := g.cfg.Cities[g.rng.Intn(len(g.cfg.Cities))]
		tier := config.PickWeighted(g.rng, g.cfg.CustomerTiers)

		// Account creation sometime in the last 3 years
		daysAgo := g.rng.Intn(1095) + 1
		created := now.AddDate(0, 0, -daysAgo)

		customers = append(customers, models.Customer{
			CustomerID:       fmt.Sprintf("KH%06d", i+1),
			CustomerUniqueID: uuid.NewString(),
			Name:             name,
			Phone:            g.phone(),
			Email:            g.email(name, "customer.tgdd.vn"),
			City:             city.City,
			State:            city.State,
			Region:           city.Region,
			Tier:             tier,
			IsActive:         g.rng.Float64() < 0.85,
			CreatedDate:      created,
		})
	}

	return customers
}

// GenerateSellers builds the synthetic seller rows.
func (g *Generator) GenerateSellers() []models.Seller {
	g.logger.Info("Generating %d Vietnamese sellers...", g.cfg.NumSellers)

	sellers := make([]models.Seller, 0, g.cfg.NumSellers)

	for i := 0; i < g.cfg.NumSellers; i++ {
		name, _ := GenerateName(g.rng)
		city := g.cfg.Cities[g.rng.Intn(len(g.cfg.Cities))]

		sellers = append(sellers, models.Seller{
			SellerID:      fmt.Sprintf("seller_%03d", i+1),
			Name:          name,
			Email:         g.email(name, "thegioididong.com"),
			Phone:         g.phone(),
			ZipCodePrefix: g.zipCode(city.State),
			City:          city.City,
			State:         city.State,
		})
	}

	return sellers
}

// phone produces a Vietnamese mobile number: 09 followed by 8 digits.
func (g *Generator) phone() string {
	return fmt.Sprintf("09%08d", g.rng.Intn(90000000)+10000000)
}

// email derives an address from the name: dotted lowercase name plus a
// 3-digit suffix at the given domain.
func (g *Generator) email(name, domain string) string {
	prefix := strings.ReplaceAll(strings.ToLower(name), " ", ".")
	return fmt.Sprintf("%s%03d@%s", prefix, g.rng.Intn(999)+1, domain)
}

// zipCode produces a postal code: Hanoi codes start with 1, HCMC with 7,
// everything else is 6 random digits.
func (g *Generator) zipCode(state string) string {
	switch state {
	case "Hanoi":
		return fmt.Sprintf("1%05d", g.rng.Intn(100000))
	case "HCMC":
		return fmt.Sprintf("7%05d", g.rng.Intn(100000))
	default:
		return fmt.Sprintf("%06d", g.rng.Intn(900000)+100000)
	}
}

// WriteCustomersCSV serializes customers to <DataDir>/customers.csv.
func (g *Generator) WriteCustomersCSV(customers []models.Customer) error {
	path := filepath.Join(g.cfg.DataDir, "customers.csv")
	file, err := createFile(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	header := []string{
		"customer_id", "customer_unique_id", "customer_name", "customer_phone",
		"customer_email", "customer_city", "customer_state", "customer_region",
		"customer_tier", "is_active", "created_date",
	}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write customers.csv header: %w", err)
	}

	for _, c := range customers {
		record := []string{
			c.CustomerID,
			c.CustomerUniqueID,
			c.Name,
			c.Phone,
			c.Email,
			c.City,
			c.State,
			c.Region,
			c.Tier,
			strconv.FormatBool(c.IsActive),
			c.CreatedDate.Format("2006-01-02T15:04:05"),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write customer row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush customers.csv: %w", err)
	}

	g.logger.Info("Created %s (%d rows)", path, len(customers))
	return nil
}

// WriteSellersCSV serializes sellers to <DataDir>/sellers.csv.
func (g *Generator) WriteSellersCSV(sellers []models.Seller) error {
	path := filepath.Join(g.cfg.DataDir, "sellers.csv")
	file, err := createFile(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	header := []string{
		"seller_id", "seller_name", "seller_email", "seller_phone",
		"seller_zip_code_prefix", "seller_city", "seller_state",
	}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write sellers.csv header: %w", err)
	}

	for _, s := range sellers {
		record := []string{
			s.SellerID,
			s.Name,
			s.Email,
			s.Phone,
			s.ZipCodePrefix,
			s.City,
			s.State,
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write seller row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush sellers.csv: %w", err)
	}

	g.logger.Info("Created %s (%d rows)", path, len(sellers))
	return nil
}

// Run generates both datasets, writes them to disk and produces the data
// dictionary.
func (g *Generator) Run() error {
	customers := g.GenerateCustomers()
	if err := g.WriteCustomersCSV(customers); err != nil {
		return fmt.Errorf("failed to write customers dataset: %w", err)
	}

	sellers := g.GenerateSellers()
	if err := g.WriteSellersCSV(sellers); err != nil {
		return fmt.Errorf("failed to write sellers dataset: %w", err)
	}

	if err := g.WriteDataDictionary(); err != nil {
		return fmt.Errorf("failed to write data dictionary: %w", err)
	}

	g.logger.Info("Dataset generation finished: %d customers, %d sellers", len(customers), len(sellers))
	return nil
}

func createFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", path, err)
	}
	return file, nil
}

package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/ngna3007/TheGioiDiDong-AnalyticsPlatform/analytics"
	"github.com/ngna3007/TheGioiDiDong-AnalyticsPlatform/etl/config"
	"github.com/ngna3007/TheGioiDiDong-AnalyticsPlatform/etl/utils"
)

func main() {
	outputDir := flag.String("out", envString("ANALYSIS_OUTPUT_DIR", "ml_analysis"), "Directory for the dashboard PNGs")
	seed := flag.Int64("seed", 42, "Random seed for the K-Means initialization")
	persist := flag.Bool("persist", false, "Replace ml_customer_segments with the new assignments")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment defaults")
	}

	etlConfig, err := config.GetConfig()
	if err != nil {
		log.Fatalf("Failed to read configuration: %v", err)
	}

	logger := utils.NewETLLogger(etlConfig.EnableDetailedLogging)
	defer logger.Sync()

	db, err := config.ConnectWarehouse(etlConfig.Warehouse)
	if err != nil {
		log.Fatalf("Failed to connect to warehouse: %v", err)
	}
	defer config.CloseWarehouse(db)
	logger.Info("Connected to the analytics warehouse")

	dataService := analytics.NewDataService(db)
	dashboards := analytics.NewDashboards(*outputDir, logger)

	// Exploratory analysis: three aggregate views, one dashboard each.
	customers, err := dataService.GetCustomerMetrics()
	if err != nil {
		log.Fatalf("Failed to load customer metrics: %v", err)
	}
	if err := dashboards.CustomerAnalysis(customers); err != nil {
		log.Fatalf("Failed to render customer dashboard: %v", err)
	}

	products, err := dataService.GetProductMetrics()
	if err != nil {
		log.Fatalf("Failed to load product metrics: %v", err)
	}
	if err := dashboards.ProductAnalysis(products); err != nil {
		log.Fatalf("Failed to render product dashboard: %v", err)
	}

	items, err := dataService.GetDeliveredOrderItems()
	if err != nil {
		log.Fatalf("Failed to load delivered order items: %v", err)
	}
	if err := dashboards.OrderPatterns(items); err != nil {
		log.Fatalf("Failed to render order pattern dashboard: %v", err)
	}

	// RFM scoring and K-Means segmentation.
	processor := analytics.NewSegmentationProcessor(dataService, *seed, logger)
	rfm, summaries, err := processor.Process(time.Now())
	if err != nil {
		log.Fatalf("Customer segmentation failed: %v", err)
	}
	if err := dashboards.SegmentationResults(rfm, summaries); err != nil {
		log.Fatalf("Failed to render segmentation dashboard: %v", err)
	}

	if *persist {
		repo := analytics.NewSegmentRepository(db, logger)
		if err := repo.ReplaceAll(rfm, time.Now()); err != nil {
			log.Fatalf("Failed to persist segment assignments: %v", err)
		}
	}

	logger.Info("Analysis finished, dashboards written to %s", *outputDir)
}

func envString(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

package main

import (
	"flag"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/ngna3007/TheGioiDiDong-AnalyticsPlatform/etl/utils"
	"github.com/ngna3007/TheGioiDiDong-AnalyticsPlatform/generator"
)

func main() {
	customers := flag.Int("customers", envInt("GEN_CUSTOMERS", 5000), "Number of customers to generate")
	sellers := flag.Int("sellers", envInt("GEN_SELLERS", 200), "Number of sellers to generate")
	dataDir := flag.String("out", envString("GEN_DATA_DIR", "data/raw"), "Output directory for the CSV files")
	seed := flag.Int64("seed", time.Now().UnixNano(), "Random seed (fixed seed gives reproducible datasets)")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment defaults")
	}

	logger := utils.NewETLLogger(true)
	defer logger.Sync()

	gen := generator.NewGenerator(generator.Config{
		DataDir:      *dataDir,
		NumCustomers: *customers,
		NumSellers:   *sellers,
	}, *seed, logger)

	if err := gen.Run(); err != nil {
		log.Fatalf("Dataset generation failed: %v", err)
	}
}

func envString(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

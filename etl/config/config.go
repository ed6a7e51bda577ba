package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// DatabaseConfig holds the connection settings for the warehouse.
type DatabaseConfig struct {
	Driver   string `env:"WAREHOUSE_DRIVER" env-default:"mysql"`
	Host     string `env:"WAREHOUSE_HOST" env-default:"localhost"`
	Port     int    `env:"WAREHOUSE_PORT" env-default:"3306"`
	User     string `env:"WAREHOUSE_USER" env-default:"root"`
	Password string `env:"WAREHOUSE_PASSWORD" env-default:"tgdd2024"`
	DBName   string `env:"WAREHOUSE_DB" env-default:"ecommerce_analytics"`
}

// ETLConfig holds the configuration for the ETL pipeline.
type ETLConfig struct {
	// Warehouse connection (target star schema)
	Warehouse DatabaseConfig

	// Directory with the raw CSV inputs
	DataDir string `env:"ETL_DATA_DIR" env-default:"data/raw"`

	// Directory for processed artifacts (quality report)
	ProcessedDir string `env:"ETL_PROCESSED_DIR" env-default:"data/processed"`

	// Directory with the warehouse schema migrations
	MigrationsPath string `env:"ETL_MIGRATIONS_PATH" env-default:"migrations"`

	// Interval between scheduled ETL runs
	RunInterval time.Duration `env:"ETL_RUN_INTERVAL" env-default:"1h"`

	// Enable debug-level logging
	EnableDetailedLogging bool `env:"ETL_DETAILED_LOGGING" env-default:"true"`
}

// GetConfig reads the ETL configuration from the environment, falling back
// to the defaults above.
func GetConfig() (ETLConfig, error) {
	var cfg ETLConfig
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to read ETL configuration: %w", err)
	}
	return cfg, nil
}

package config

import (
	"database/sql"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratemysql "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/ngna3007/TheGioiDiDong-AnalyticsPlatform/etl/utils"
)

// RunMigrations applies any pending warehouse schema migrations from the
// given directory. Safe to call on every run; only pending migrations are
// executed.
func RunMigrations(db *sql.DB, migrationsPath string, logger *utils.ETLLogger) error {
	driver, err := migratemysql.WithInstance(db, &migratemysql.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", migrationsPath),
		"mysql", driver)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil {
			logger.Error("Failed to close migration source: %v", srcErr)
		}
		if dbErr != nil {
			logger.Error("Failed to close migration database handle: %v", dbErr)
		}
	}()

	err = m.Up()
	if err == migrate.ErrNoChange {
		logger.Info("Warehouse schema is up to date")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	version, _, _ := m.Version()
	logger.Info("Applied warehouse migrations, schema version %d", version)
	return nil
}

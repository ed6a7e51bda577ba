package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/joho/godotenv"

	"github.com/ngna3007/TheGioiDiDong-AnalyticsPlatform/etl/config"
	"github.com/ngna3007/TheGioiDiDong-AnalyticsPlatform/etl/extractors"
	"github.com/ngna3007/TheGioiDiDong-AnalyticsPlatform/etl/load"
	"github.com/ngna3007/TheGioiDiDong-AnalyticsPlatform/etl/models"
	"github.com/ngna3007/TheGioiDiDong-AnalyticsPlatform/etl/quality"
	"github.com/ngna3007/TheGioiDiDong-AnalyticsPlatform/etl/transform"
	"github.com/ngna3007/TheGioiDiDong-AnalyticsPlatform/etl/utils"
)

// Runner wires the ETL stages together and drives one pipeline execution.
type Runner struct {
	config         config.ETLConfig
	db             *sql.DB
	logger         *utils.ETLLogger
	extractor      *extractors.Extractor
	transformer    *transform.Transformer
	loadManager    *load.LoadManager
	qualityChecker *quality.Checker
	etlLogRepo     models.ETLLogRepository
}

// NewRunner reads the configuration, connects to the warehouse, applies
// pending schema migrations and wires the pipeline stages.
func NewRunner() (*Runner, error) {
	etlConfig, err := config.GetConfig()
	if err != nil {
		return nil, err
	}

	logger := utils.NewETLLogger(etlConfig.EnableDetailedLogging)
	logger.Info("Initializing ETL runner")

	db, err := config.ConnectWarehouse(etlConfig.Warehouse)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to warehouse: %w", err)
	}

	if err := config.RunMigrations(db, etlConfig.MigrationsPath, logger); err != nil {
		config.CloseWarehouse(db)
		return nil, fmt.Errorf("failed to migrate warehouse schema: %w", err)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	return &Runner{
		config:         etlConfig,
		db:             db,
		logger:         logger,
		extractor:      extractors.NewExtractor(etlConfig.DataDir, logger),
		transformer:    transform.NewTransformer(db, config.DefaultLookups(), rng, logger),
		loadManager:    load.NewLoadManager(db, logger),
		qualityChecker: quality.NewChecker(db, etlConfig.ProcessedDir, logger),
		etlLogRepo:     models.NewMySQLETLLogRepository(db),
	}, nil
}

// Close releases the warehouse connection.
func (r *Runner) Close() {
	r.logger.Info("Shutting down ETL runner")
	if err := config.CloseWarehouse(r.db); err != nil {
		r.logger.Error("Failed to close warehouse connection: %v", err)
	}
	r.logger.Sync()
}

// ExecuteETL runs one full extract → transform → load → quality-check pass.
// Every run is journaled in etl_runs; a failed stage aborts the pipeline but
// rows already committed by earlier load steps stay in place.
func (r *Runner) ExecuteETL() error {
	startTime := time.Now()
	r.logger.LogETLStart()

	logID, err := r.etlLogRepo.CreateLogEntry(startTime)
	if err != nil {
		r.logger.Error("Failed to journal ETL run: %v", err)
		return fmt.Errorf("failed to journal ETL run: %w", err)
	}

	if lastRun, err := r.etlLogRepo.GetLastSuccessfulRun(); err != nil {
		r.logger.Warn("Could not read last successful run: %v", err)
	} else if lastRun != nil {
		r.logger.Info("Last successful run finished at %v", lastRun.EndTime.Format(time.RFC3339))
	}

	// 1. Extract
	extracted, err := r.extractor.Extract()
	if err != nil {
		return r.fail(logID, fmt.Errorf("extract phase failed: %w", err))
	}

	// 2. Transform
	transformed, err := r.transformer.Transform(extracted)
	if err != nil {
		return r.fail(logID, fmt.Errorf("transform phase failed: %w", err))
	}

	// 3. Load
	result, err := r.loadManager.Load(transformed)
	if err != nil {
		return r.fail(logID, fmt.Errorf("load phase failed: %w", err))
	}

	// 4. Quality checks
	if _, err := r.qualityChecker.Run(); err != nil {
		return r.fail(logID, fmt.Errorf("quality checks failed: %w", err))
	}

	if err := r.etlLogRepo.UpdateLogEntrySuccess(logID, time.Now(),
		result.Customers, result.Products, result.Sales); err != nil {
		r.logger.Error("Failed to update ETL run journal: %v", err)
	}

	r.logger.LogETLComplete(startTime, result.Customers, result.Products, result.Sales)
	return nil
}

// fail records the run failure in the journal and returns the error.
func (r *Runner) fail(logID int, err error) error {
	r.logger.Error("%v", err)
	if updateErr := r.etlLogRepo.UpdateLogEntryFailure(logID, time.Now(), err.Error()); updateErr != nil {
		r.logger.Error("Failed to update ETL run journal: %v", updateErr)
	}
	return err
}

// StartScheduler runs the pipeline on the configured interval until the
// context is cancelled.
func (r *Runner) StartScheduler(ctx context.Context) {
	scheduler := gocron.NewScheduler(time.UTC)

	r.logger.Info("Starting ETL scheduler with interval %v", r.config.RunInterval)

	_, err := scheduler.Every(r.config.RunInterval).Do(func() {
		r.logger.Info("Scheduled ETL run starting")
		if err := r.ExecuteETL(); err != nil {
			r.logger.Error("Scheduled ETL run failed: %v", err)
		}
	})
	if err != nil {
		r.logger.Error("Failed to configure scheduler: %v", err)
		return
	}

	scheduler.StartAsync()

	<-ctx.Done()

	scheduler.Stop()
	r.logger.Info("ETL scheduler stopped")
}

func runOnce() {
	runner, err := NewRunner()
	if err != nil {
		log.Fatalf("Failed to create ETL runner: %v", err)
	}
	defer runner.Close()

	if err := runner.ExecuteETL(); err != nil {
		log.Fatalf("ETL run failed: %v", err)
	}
}

func runScheduled() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-signalCh
		log.Println("Shutdown signal received, stopping ETL runner...")
		cancel()
	}()

	runner, err := NewRunner()
	if err != nil {
		log.Fatalf("Failed to create ETL runner: %v", err)
	}
	defer runner.Close()

	runner.StartScheduler(ctx)
}

func main() {
	mode := flag.String("mode", "once", "Run mode: once or scheduled")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment defaults")
	}

	log.Println("Starting ETL runner in mode:", *mode)

	switch *mode {
	case "once":
		runOnce()
	case "scheduled":
		runScheduled()
	default:
		log.Println("Unknown run mode:", *mode)
		log.Println("Available modes: once, scheduled")
		os.Exit(1)
	}

	log.Println("ETL runner finished")
}

package utils

import (
	"fmt"
	"log"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ETLLogger is the shared logger for the pipeline programs. It writes to a
// dated log file and to the console at the same time.
type ETLLogger struct {
	sugar     *zap.SugaredLogger
	isVerbose bool
}

// NewETLLogger creates a logger writing to etl_log_<date>.log and stdout.
// When verbose is false, Debug messages are suppressed.
func NewETLLogger(verbose bool) *ETLLogger {
	currentTime := time.Now().Format("2006-01-02")
	logFileName := fmt.Sprintf("etl_log_%s.log", currentTime)

	file, err := os.OpenFile(logFileName, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		log.Fatalf("could not open or create log file: %v", err)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encoder := zapcore.NewConsoleEncoder(encoderConfig)

	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	core := zapcore.NewTee(
		zapcore.NewCore(encoder, zapcore.AddSync(file), level),
		zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), level),
	)

	return &ETLLogger{
		sugar:     zap.New(core).Sugar(),
		isVerbose: verbose,
	}
}

// NewNopLogger returns a logger that discards everything. Used in tests.
func NewNopLogger() *ETLLogger {
	return &ETLLogger{sugar: zap.NewNop().Sugar()}
}

// Info logs an informational message.
func (l *ETLLogger) Info(format string, v ...interface{}) {
	l.sugar.Infof(format, v...)
}

// Warn logs a warning message.
func (l *ETLLogger) Warn(format string, v ...interface{}) {
	l.sugar.Warnf(format, v...)
}

// Error logs an error message.
func (l *ETLLogger) Error(format string, v ...interface{}) {
	l.sugar.Errorf(format, v...)
}

// Debug logs a debug message (only when verbose mode is enabled).
func (l *ETLLogger) Debug(format string, v ...interface{}) {
	if !l.isVerbose {
		return
	}
	l.sugar.Debugf(format, v...)
}

// Sync flushes any buffered log entries.
func (l *ETLLogger) Sync() {
	_ = l.sugar.Sync()
}

// LogETLStart logs the beginning of the ETL pipeline.
func (l *ETLLogger) LogETLStart() {
	l.Info("Starting ETL pipeline")
}

// LogETLComplete logs the end of the ETL pipeline with totals.
func (l *ETLLogger) LogETLComplete(startTime time.Time, customers, products, orders int) {
	l.Info("ETL pipeline finished. Duration: %v", time.Since(startTime))
	l.Info("Processed: %d customers, %d products, %d order items", customers, products, orders)
}

// LogExtractStart logs the beginning of the extract phase.
func (l *ETLLogger) LogExtractStart() {
	l.Info("Starting Extract phase (reading flat files)")
}

// LogExtractComplete logs the end of the extract phase.
func (l *ETLLogger) LogExtractComplete(tables, rows int, duration time.Duration) {
	l.Info("Extract phase finished. Duration: %v", duration)
	l.Info("Extracted %d rows from %d tables", rows, tables)
}

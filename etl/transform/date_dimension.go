package transform

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/ngna3007/TheGioiDiDong-AnalyticsPlatform/etl/models"
	"github.com/ngna3007/TheGioiDiDong-AnalyticsPlatform/etl/utils"
)

// DateDimensionProcessor keeps dim_date covering every calendar day the
// sales facts reference.
type DateDimensionProcessor struct {
	db     *sql.DB
	logger *utils.ETLLogger
}

// NewDateDimensionProcessor creates a DateDimensionProcessor.
func NewDateDimensionProcessor(db *sql.DB, logger *utils.ETLLogger) *DateDimensionProcessor {
	return &DateDimensionProcessor{
		db:     db,
		logger: logger,
	}
}

// EnsureDateDimension inserts any missing dim_date rows between the earliest
// and latest date referenced by the facts (purchase, delivery or estimated
// delivery).
func (p *DateDimensionProcessor) EnsureDateDimension(facts []models.SalesFact) error {
	minDate, maxDate := factDateRange(facts)
	if minDate.IsZero() {
		p.logger.Debug("No dated facts, date dimension left untouched")
		return nil
	}

	existing, err := p.existingDates()
	if err != nil {
		return err
	}

	stmt, err := p.db.Prepare(`
		INSERT INTO dim_date
		(full_date, year, quarter, month, month_name, week_of_year,
		day_of_month, day_of_week, day_name, is_weekend)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare dim_date insert: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	for current := minDate; !current.After(maxDate); current = current.AddDate(0, 0, 1) {
		key := current.Format("2006-01-02")
		if existing[key] {
			continue
		}

		row := buildDateRow(current)
		_, err := stmt.Exec(
			key,
			row.Year,
			row.Quarter,
			row.Month,
			row.MonthName,
			row.WeekOfYear,
			row.DayOfMonth,
			row.DayOfWeek,
			row.DayName,
			row.IsWeekend,
		)
		if err != nil {
			return fmt.Errorf("failed to insert dim_date row %s: %w", key, err)
		}
		inserted++
	}

	if inserted > 0 {
		p.logger.Info("Extended date dimension with %d days", inserted)
	}
	return nil
}

// existingDates reads the set of dates already present in dim_date.
func (p *DateDimensionProcessor) existingDates() (map[string]bool, error) {
	rows, err := p.db.Query("SELECT full_date FROM dim_date")
	if err != nil {
		return nil, fmt.Errorf("failed to read existing dim_date rows: %w", err)
	}
	defer rows.Close()

	existing := make(map[string]bool)
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("failed to scan dim_date row: %w", err)
		}
		existing[d.Format("2006-01-02")] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate dim_date rows: %w", err)
	}

	return existing, nil
}

// factDateRange finds the earliest and latest non-zero date across the fact
// timestamps, truncated to midnight UTC.
func factDateRange(facts []models.SalesFact) (time.Time, time.Time) {
	var minDate, maxDate time.Time

	consider := func(ts time.Time) {
		if ts.IsZero() {
			return
		}
		day := time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC)
		if minDate.IsZero() || day.Before(minDate) {
			minDate = day
		}
		if maxDate.IsZero() || day.After(maxDate) {
			maxDate = day
		}
	}

	for _, f := range facts {
		consider(f.PurchaseTimestamp)
		consider(f.DeliveredCustomerDate)
		consider(f.EstimatedDeliveryDate)
	}

	return minDate, maxDate
}

var (
	monthNames = []string{"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December"}
	dayNames = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
)

// buildDateRow derives the calendar attributes of one dim_date row.
func buildDateRow(day time.Time) models.DateDimension {
	month := int(day.Month())
	dayOfWeek := int(day.Weekday()) + 1 // 1=Sunday, 7=Saturday
	_, week := day.ISOWeek()

	return models.DateDimension{
		FullDate:   day,
		Year:       day.Year(),
		Quarter:    (month-1)/3 + 1,
		Month:      month,
		MonthName:  monthNames[month-1],
		WeekOfYear: week,
		DayOfMonth: day.Day(),
		DayOfWeek:  dayOfWeek,
		DayName:    dayNames[dayOfWeek-1],
		IsWeekend:  dayOfWeek == 1 || dayOfWeek == 7,
	}
}

package reports

import (
	"time"

	"budgetbuddy/models"

	"github.com/shopspring/decimal"
)

// DatedRow is a Row plus the timestamp used for month bucketing.
type DatedRow struct {
	Row
	Date time.Time
}

// MonthRange returns the inclusive start and exclusive end of a calendar
// month in UTC, covering 28/29/30/31-day months.
func MonthRange(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

// InMonth reports whether t falls inside the given calendar month.
func InMonth(t time.Time, year int, month time.Month) bool {
	start, end := MonthRange(year, month)
	return !t.Before(start) && t.Before(end)
}

// AnnualBreakdown runs the single-month summary independently for each of the
// 12 calendar months of year, producing one row per month (zero-filled when
// no transactions exist) in chronological order, plus year totals equal to
// the sum of the 12 rows.
func AnnualBreakdown(rows []DatedRow, year int) models.AnnualReport {
	report := models.AnnualReport{
		Year:             year,
		MonthlyBreakdown: make([]models.MonthSummary, 0, 12),
	}

	var yearIncome, yearExpense decimal.Decimal
	for m := time.January; m <= time.December; m++ {
		var monthRows []Row
		for _, r := range rows {
			if InMonth(r.Date, year, m) {
				monthRows = append(monthRows, r.Row)
			}
		}
		s := Summarize(monthRows)
		report.MonthlyBreakdown = append(report.MonthlyBreakdown, models.MonthSummary{
			Month:        int(m),
			MonthName:    m.String(),
			TotalIncome:  s.TotalIncome,
			TotalExpense: s.TotalExpense,
			NetBalance:   s.Balance,
		})
		yearIncome = yearIncome.Add(decimal.NewFromFloat(s.TotalIncome))
		yearExpense = yearExpense.Add(decimal.NewFromFloat(s.TotalExpense))
	}

	report.YearTotals = models.Summary{
		TotalIncome:  yearIncome.InexactFloat64(),
		TotalExpense: yearExpense.InexactFloat64(),
		Balance:      yearIncome.Sub(yearExpense).InexactFloat64(),
	}
	return report
}

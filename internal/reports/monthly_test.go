package reports

import (
	"testing"
	"time"

	"budgetbuddy/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthRange(t *testing.T) {
	cases := []struct {
		year  int
		month time.Month
		days  int
	}{
		{2024, time.February, 29}, // leap year
		{2023, time.February, 28},
		{2024, time.April, 30},
		{2024, time.January, 31},
	}
	for _, tc := range cases {
		start, end := MonthRange(tc.year, tc.month)
		assert.Equal(t, tc.days, int(end.Sub(start).Hours()/24), "%d-%02d", tc.year, tc.month)
		assert.Equal(t, 1, start.Day())
		assert.Equal(t, 1, end.Day())
	}
}

func TestInMonth(t *testing.T) {
	assert.True(t, InMonth(time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC), 2024, time.March))
	assert.True(t, InMonth(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), 2024, time.March))
	assert.False(t, InMonth(time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), 2024, time.March))
	assert.False(t, InMonth(time.Date(2023, 3, 15, 0, 0, 0, 0, time.UTC), 2024, time.March))
}

// A year with transactions only in March yields 11 zero-filled months plus
// one populated row, and year totals equal to the March row.
func TestAnnualBreakdownSingleMonth(t *testing.T) {
	march := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	rows := []DatedRow{
		{Row: Row{Type: models.TypeIncome, Amount: 500}, Date: march},
		{Row: Row{Type: models.TypeExpense, Amount: 100}, Date: march},
	}

	report := AnnualBreakdown(rows, 2024)
	require.Len(t, report.MonthlyBreakdown, 12)

	for i, m := range report.MonthlyBreakdown {
		assert.Equal(t, i+1, m.Month)
		assert.Equal(t, time.Month(i+1).String(), m.MonthName)
		if m.Month == 3 {
			assert.Equal(t, 500.0, m.TotalIncome)
			assert.Equal(t, 100.0, m.TotalExpense)
			assert.Equal(t, 400.0, m.NetBalance)
			continue
		}
		assert.Zero(t, m.TotalIncome, "month %d", m.Month)
		assert.Zero(t, m.TotalExpense, "month %d", m.Month)
		assert.Zero(t, m.NetBalance, "month %d", m.Month)
	}

	assert.Equal(t, 500.0, report.YearTotals.TotalIncome)
	assert.Equal(t, 100.0, report.YearTotals.TotalExpense)
	assert.Equal(t, 400.0, report.YearTotals.Balance)
}

func TestAnnualBreakdownEmptyYear(t *testing.T) {
	report := AnnualBreakdown(nil, 2024)
	require.Len(t, report.MonthlyBreakdown, 12)
	assert.Zero(t, report.YearTotals.TotalIncome)
	assert.Zero(t, report.YearTotals.TotalExpense)
	assert.Zero(t, report.YearTotals.Balance)
}

func TestAnnualBreakdownExcludesOtherYears(t *testing.T) {
	rows := []DatedRow{
		{Row: Row{Type: models.TypeIncome, Amount: 100}, Date: time.Date(2023, 12, 31, 23, 0, 0, 0, time.UTC)},
		{Row: Row{Type: models.TypeIncome, Amount: 200}, Date: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
	report := AnnualBreakdown(rows, 2024)
	assert.Zero(t, report.YearTotals.TotalIncome)
}

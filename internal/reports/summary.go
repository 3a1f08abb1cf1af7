package reports

import (
	"budgetbuddy/models"

	"github.com/shopspring/decimal"
)

// Row is the projection the aggregation engine folds over: one transaction's
// polarity and amount, with the category join resolved by the caller.
type Row struct {
	CategoryID   int
	CategoryName string
	Type         string
	Amount       float64
}

// Summarize folds rows into income/expense totals and their balance.
// Amounts are sign-positive; the type carries the polarity, so no row ever
// touches both accumulators. An empty slice yields all zeros.
func Summarize(rows []Row) models.Summary {
	var income, expense decimal.Decimal
	for _, r := range rows {
		amount := decimal.NewFromFloat(r.Amount)
		switch r.Type {
		case models.TypeIncome:
			income = income.Add(amount)
		case models.TypeExpense:
			expense = expense.Add(amount)
		}
	}
	return models.Summary{
		TotalIncome:  income.InexactFloat64(),
		TotalExpense: expense.InexactFloat64(),
		Balance:      income.Sub(expense).InexactFloat64(),
	}
}

// MonthOverMonth compares two period summaries. change% is
// (current-previous)/previous*100; a zero previous reports 0 by contract
// rather than dividing. Savings is income minus expense per period.
func MonthOverMonth(current, previous models.Summary) models.MonthComparison {
	return models.MonthComparison{
		IncomeChange:  percentChange(current.TotalIncome, previous.TotalIncome),
		ExpenseChange: percentChange(current.TotalExpense, previous.TotalExpense),
		SavingsChange: percentChange(current.Balance, previous.Balance),
	}
}

func percentChange(current, previous float64) float64 {
	prev := decimal.NewFromFloat(previous)
	if prev.IsZero() {
		return 0
	}
	cur := decimal.NewFromFloat(current)
	return cur.Sub(prev).Div(prev).Mul(decimal.NewFromInt(100)).Round(2).InexactFloat64()
}

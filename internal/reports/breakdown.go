package reports

import (
	"budgetbuddy/models"

	"github.com/shopspring/decimal"
)

// UnknownCategory is the display name used when a transaction's category
// join resolves to nothing.
const UnknownCategory = "Unknown"

// CategoryBreakdown groups rows by category, accumulating income and expense
// per polarity. Every category with at least one row appears exactly once, in
// order of first appearance; categories without rows are omitted.
func CategoryBreakdown(rows []Row) []models.CategoryTotal {
	type bucket struct {
		income  decimal.Decimal
		expense decimal.Decimal
	}
	buckets := make(map[int]*bucket)
	var order []int
	names := make(map[int]string)

	for _, r := range rows {
		b, ok := buckets[r.CategoryID]
		if !ok {
			b = &bucket{}
			buckets[r.CategoryID] = b
			order = append(order, r.CategoryID)
			name := r.CategoryName
			if name == "" {
				name = UnknownCategory
			}
			names[r.CategoryID] = name
		}
		amount := decimal.NewFromFloat(r.Amount)
		switch r.Type {
		case models.TypeIncome:
			b.income = b.income.Add(amount)
		case models.TypeExpense:
			b.expense = b.expense.Add(amount)
		}
	}

	totals := make([]models.CategoryTotal, 0, len(order))
	for _, id := range order {
		totals = append(totals, models.CategoryTotal{
			CategoryID:   id,
			CategoryName: names[id],
			TotalIncome:  buckets[id].income.InexactFloat64(),
			TotalExpense: buckets[id].expense.InexactFloat64(),
		})
	}
	return totals
}

// ExpenseShares annotates each category with its whole-percent share of the
// call's total expenses. A zero expense total yields 0% everywhere.
func ExpenseShares(totals []models.CategoryTotal) []models.CategoryShare {
	var sum decimal.Decimal
	for _, t := range totals {
		sum = sum.Add(decimal.NewFromFloat(t.TotalExpense))
	}

	shares := make([]models.CategoryShare, 0, len(totals))
	for _, t := range totals {
		pct := 0
		if !sum.IsZero() {
			pct = int(decimal.NewFromFloat(t.TotalExpense).
				Div(sum).
				Mul(decimal.NewFromInt(100)).
				Round(0).
				IntPart())
		}
		shares = append(shares, models.CategoryShare{CategoryTotal: t, Percentage: pct})
	}
	return shares
}

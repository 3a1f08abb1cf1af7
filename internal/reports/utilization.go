package reports

import "github.com/shopspring/decimal"

// Utilization computes the spent-versus-allocated figures for one budget.
// Remaining may be negative (overspend, not clamped); percentage used is
// rounded to two decimals and is 0 when the allocation is not positive.
// remaining + spent == budgetAmount always holds.
func Utilization(budgetAmount, spentAmount float64) (remaining, percentageUsed float64) {
	budget := decimal.NewFromFloat(budgetAmount)
	spent := decimal.NewFromFloat(spentAmount)

	remaining = budget.Sub(spent).InexactFloat64()
	if budget.Sign() > 0 {
		percentageUsed = spent.Div(budget).Mul(decimal.NewFromInt(100)).Round(2).InexactFloat64()
	}
	return remaining, percentageUsed
}

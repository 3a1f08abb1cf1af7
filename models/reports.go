package models

// Summary is the income/expense/balance fold over a set of transactions.
type Summary struct {
	TotalIncome  float64 `json:"total_income"`
	TotalExpense float64 `json:"total_expense"`
	Balance      float64 `json:"balance"`
}

// CategoryTotal carries per-category totals for one aggregation call.
type CategoryTotal struct {
	CategoryID   int     `json:"category_id"`
	CategoryName string  `json:"category_name"`
	TotalIncome  float64 `json:"total_income"`
	TotalExpense float64 `json:"total_expense"`
}

// CategoryShare is a CategoryTotal plus its whole-percent share of the
// call's total expenses.
type CategoryShare struct {
	CategoryTotal
	Percentage int `json:"percentage"`
}

// BudgetUsage is one budget joined with its spending for the cycle month.
type BudgetUsage struct {
	BudgetID        int        `json:"budget_id"`
	CategoryID      int        `json:"category_id"`
	CategoryName    string     `json:"category_name"`
	CycleMonth      CycleMonth `json:"cycle_month"`
	BudgetAmount    float64    `json:"budget_amount"`
	SpentAmount     float64    `json:"spent_amount"`
	RemainingAmount float64    `json:"remaining_amount"`
	PercentageUsed  float64    `json:"percentage_used"`
}

// MonthSummary is one row of an annual breakdown.
type MonthSummary struct {
	Month        int     `json:"month"`
	MonthName    string  `json:"month_name"`
	TotalIncome  float64 `json:"total_income"`
	TotalExpense float64 `json:"total_expense"`
	NetBalance   float64 `json:"net_balance"`
}

// AnnualReport is the chronological 12-month breakdown plus year totals.
type AnnualReport struct {
	Year             int            `json:"year"`
	MonthlyBreakdown []MonthSummary `json:"monthly_breakdown"`
	YearTotals       Summary        `json:"year_totals"`
}

// MonthComparison reports month-over-month percentage deltas. A zero
// previous period yields 0, never a division error.
type MonthComparison struct {
	IncomeChange  float64 `json:"income_change"`
	ExpenseChange float64 `json:"expense_change"`
	SavingsChange float64 `json:"savings_change"`
}

// Pagination is the envelope's page metadata block.
type Pagination struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}
